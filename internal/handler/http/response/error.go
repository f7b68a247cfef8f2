package response

import (
	"errors"
	"net/http"

	"github.com/attendhub/attendance-backend-go/internal/domain/attendance"
	"github.com/attendhub/attendance-backend-go/internal/domain/auth"
	"github.com/attendhub/attendance-backend-go/internal/domain/overtime"
	"github.com/attendhub/attendance-backend-go/internal/domain/permission"
	"github.com/attendhub/attendance-backend-go/internal/domain/user"
	"github.com/attendhub/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrCheckInTooEarly),
		errors.Is(err, attendance.ErrOvertimeRequired),
		errors.Is(err, attendance.ErrCheckInRequired),
		errors.Is(err, attendance.ErrAlreadyCheckedOut),
		errors.Is(err, attendance.ErrCheckOutTooEarly),
		errors.Is(err, attendance.ErrBeforeOvertimeEnd),
		errors.Is(err, attendance.ErrInvalidDateFormat),
		errors.Is(err, attendance.ErrInvalidStatusFilter):
		BadRequest(w, err.Error())

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrAccessDenied):
		Forbidden(w, err.Error())
	case errors.Is(err, overtime.ErrDuplicateRequest),
		errors.Is(err, overtime.ErrPastDate),
		errors.Is(err, overtime.ErrEndBeforeStart),
		errors.Is(err, overtime.ErrDurationTooShort),
		errors.Is(err, overtime.ErrDurationMismatch),
		errors.Is(err, overtime.ErrOutsideWeekdayWindow),
		errors.Is(err, overtime.ErrAlreadyProcessed),
		errors.Is(err, overtime.ErrInvalidStatus):
		BadRequest(w, err.Error())

	// Permission domain errors
	case errors.Is(err, permission.ErrPermissionNotFound):
		NotFound(w, "Permission request not found")
	case errors.Is(err, permission.ErrAccessDenied):
		Forbidden(w, err.Error())
	case errors.Is(err, permission.ErrDuplicateRequest),
		errors.Is(err, permission.ErrAlreadyProcessed),
		errors.Is(err, permission.ErrEndBeforeStart),
		errors.Is(err, permission.ErrLeaveTooShort),
		errors.Is(err, permission.ErrOutsideTooLong):
		BadRequest(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
