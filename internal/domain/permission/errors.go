package permission

import "errors"

var (
	ErrPermissionNotFound = errors.New("permission request not found")
	ErrDuplicateRequest   = errors.New("a permission request already exists for this date")
	ErrAlreadyProcessed   = errors.New("permission request has already been processed")
	ErrAccessDenied       = errors.New("permission request belongs to another user")
	ErrEndBeforeStart     = errors.New("end time must be after start time")
	ErrLeaveTooShort      = errors.New("early leave must cover at least 2 hours")
	ErrOutsideTooLong     = errors.New("going outside must cover less than 2 hours")
)
