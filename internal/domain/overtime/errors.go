package overtime

import "errors"

var (
	ErrOvertimeNotFound     = errors.New("overtime request not found")
	ErrDuplicateRequest     = errors.New("an overtime request already exists for this date")
	ErrPastDate             = errors.New("overtime cannot be requested for a past date")
	ErrEndBeforeStart       = errors.New("end time must be after start time")
	ErrDurationTooShort     = errors.New("overtime duration must be at least 2 hours")
	ErrDurationMismatch     = errors.New("duration does not match the requested time range")
	ErrOutsideWeekdayWindow = errors.New("weekday overtime must fall between 18:00 and 21:00")
	ErrAlreadyProcessed     = errors.New("overtime request has already been processed")
	ErrAccessDenied         = errors.New("overtime request belongs to another user")
	ErrInvalidStatus        = errors.New("status must be APPROVED or REJECTED")
)
