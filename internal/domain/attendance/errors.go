package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrCheckInTooEarly  = errors.New("check-in is not allowed before 06:00")
	ErrOvertimeRequired = errors.New("an approved overtime request is required")

	// Checkout errors
	ErrCheckInRequired   = errors.New("you have not checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrCheckOutTooEarly  = errors.New("check-out is not allowed before 17:00")
	ErrBeforeOvertimeEnd = errors.New("check-out is not allowed before the approved overtime end time")

	// Query errors
	ErrRecordNotFound      = errors.New("attendance record not found")
	ErrInvalidDateFormat   = errors.New("invalid date format, use dd-MM-yyyy")
	ErrInvalidStatusFilter = errors.New("invalid attendance status filter")
)
