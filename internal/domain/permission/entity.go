package permission

import "time"

type Category string

const (
	CategoryEarlyLeave Category = "EARLY_LEAVE"
	CategoryGoOutside  Category = "GO_OUTSIDE"
	CategoryLate       Category = "LATE"
	CategoryPermission Category = "PERMISSION"
)

type Shift string

const (
	ShiftMorning   Shift = "MORNING"   // 08:00 - 12:00
	ShiftAfternoon Shift = "AFTERNOON" // 13:00 - 17:00
)

// Window returns the wall-clock span the shift covers.
func (s Shift) Window() (start, end time.Time) {
	if s == ShiftAfternoon {
		return timeOfDay(13), timeOfDay(17)
	}
	return timeOfDay(8), timeOfDay(12)
}

func timeOfDay(hour int) time.Time {
	return time.Date(0, time.January, 1, hour, 0, 0, 0, time.UTC)
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Permission struct {
	ID             string
	UserID         string
	PermissionDate time.Time
	Category       Category
	Shift          *Shift     // set only for CategoryPermission
	StartTime      *time.Time // time-of-day, derived from Shift for CategoryPermission
	EndTime        *time.Time // time-of-day, nil for CategoryLate
	Reason         string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p *Permission) IsPending() bool {
	return p.Status == StatusPending
}
