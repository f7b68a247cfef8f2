package attendance

import "time"

type CheckInStatus string

const (
	CheckInOnTime CheckInStatus = "CHECKIN"
	CheckInLate   CheckInStatus = "CHECKIN_LATE"
)

type CheckOutStatus string

const (
	CheckOutNormal     CheckOutStatus = "CHECKOUT"
	CheckOutPermission CheckOutStatus = "CHECKOUT_PERMISSION"
	CheckOutMissed     CheckOutStatus = "MISSED_CHECKOUT"
)

type DateStatus string

const (
	DateWeekday DateStatus = "WEEKDAY"
	DateWeekend DateStatus = "WEEKEND"
	// DateOvertime exists for query compatibility. The check-in path only
	// ever assigns WEEKDAY or WEEKEND; no rule assigns OVERTIME.
	DateOvertime DateStatus = "OVERTIME"
)

// Record is one attendance record per (user, calendar day).
// CheckInTime is set once at creation; CheckOutTime and CheckOutStatus are
// set once at checkout and never change afterwards.
type Record struct {
	ID             string
	UserID         string
	Date           time.Time
	CheckInTime    time.Time
	CheckOutTime   *time.Time
	CheckInStatus  CheckInStatus
	CheckOutStatus *CheckOutStatus
	DateStatus     DateStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasCheckedOut reports whether the record has a checkout recorded.
func (r *Record) HasCheckedOut() bool {
	return r.CheckOutTime != nil
}
