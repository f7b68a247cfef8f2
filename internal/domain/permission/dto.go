package permission

import (
	"github.com/attendhub/attendance-backend-go/internal/pkg/validator"
)

var categories = []string{
	string(CategoryEarlyLeave),
	string(CategoryGoOutside),
	string(CategoryLate),
	string(CategoryPermission),
}

var shifts = []string{
	string(ShiftMorning),
	string(ShiftAfternoon),
}

type CreatePermissionRequest struct {
	PermissionDate string  `json:"permission_date"` // dd-MM-yyyy
	Category       string  `json:"category"`
	Shift          *string `json:"shift,omitempty"`
	StartTime      *string `json:"start_time,omitempty"` // HH:mm:ss
	EndTime        *string `json:"end_time,omitempty"`   // HH:mm:ss
	Reason         string  `json:"reason"`
}

// Validate enforces the per-category field requirements: EARLY_LEAVE and
// GO_OUTSIDE need a start and end time, LATE needs only a start time, and
// PERMISSION needs a shift instead of explicit times.
func (r *CreatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PermissionDate) {
		errs = append(errs, validator.ValidationError{Field: "permission_date", Message: "permission date is required"})
	} else if _, ok := validator.IsValidDate(r.PermissionDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "permission_date", Message: "permission date must be in dd-MM-yyyy format"})
	}

	if !validator.IsInSlice(r.Category, categories) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category must be one of EARLY_LEAVE, GO_OUTSIDE, LATE, PERMISSION"})
		if len(errs) > 0 {
			return errs
		}
	}

	switch Category(r.Category) {
	case CategoryEarlyLeave, CategoryGoOutside:
		errs = append(errs, r.requireTime("start_time", r.StartTime)...)
		errs = append(errs, r.requireTime("end_time", r.EndTime)...)
	case CategoryLate:
		errs = append(errs, r.requireTime("start_time", r.StartTime)...)
	case CategoryPermission:
		if r.Shift == nil || !validator.IsInSlice(*r.Shift, shifts) {
			errs = append(errs, validator.ValidationError{Field: "shift", Message: "shift must be MORNING or AFTERNOON"})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *CreatePermissionRequest) requireTime(field string, value *string) validator.ValidationErrors {
	if value == nil || validator.IsEmpty(*value) {
		return validator.ValidationErrors{{Field: field, Message: field + " is required for this category"}}
	}
	if _, ok := validator.IsValidTime(*value); !ok {
		return validator.ValidationErrors{{Field: field, Message: field + " must be in HH:mm:ss format"}}
	}
	return nil
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		return validator.ValidationErrors{
			{Field: "status", Message: "status must be APPROVED or REJECTED"},
		}
	}
	return nil
}

type PermissionResponse struct {
	PermissionID   string  `json:"permission_id"`
	UserID         string  `json:"user_id"`
	PermissionDate string  `json:"permission_date"`
	Category       string  `json:"category"`
	Shift          *string `json:"shift,omitempty"`
	StartTime      *string `json:"start_time,omitempty"`
	EndTime        *string `json:"end_time,omitempty"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
}

type ListResponse struct {
	PermissionRequests []PermissionResponse `json:"permission_requests"`
}
