package overtime

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Overtime struct {
	ID          string
	UserID      string
	RequestDate time.Time
	StartTime   time.Time // time-of-day, date part unused
	EndTime     time.Time // time-of-day, date part unused
	Duration    float64   // hours
	IsWeekday   bool
	Objective   string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (o *Overtime) IsPending() bool {
	return o.Status == StatusPending
}

func (o *Overtime) IsApproved() bool {
	return o.Status == StatusApproved
}
