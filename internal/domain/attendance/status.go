package attendance

import "time"

// Time-of-day thresholds, expressed as seconds since midnight in the
// reference timezone. Check-in and checkout carry separate overtime gates:
// check-in gates at 17:00, checkout only gates at 18:00.
const (
	earliestCheckInSec = 6 * 3600    // 06:00:00
	onTimeDeadlineSec  = 8*3600 + 60 // 08:01:00
	checkInOvertimeSec = 17 * 3600   // 17:00:00
	checkOutOpensSec   = 17 * 3600   // 17:00:00
	missedCheckOutSec  = 18 * 3600   // 18:00:00
)

func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// BeforeEarliestCheckIn reports whether now is too early to check in.
func BeforeEarliestCheckIn(now time.Time) bool {
	return secondsOfDay(now) < earliestCheckInSec
}

// CheckInRequiresOvertime reports whether a check-in at now needs an
// approved overtime request.
func CheckInRequiresOvertime(now time.Time) bool {
	return secondsOfDay(now) >= checkInOvertimeSec
}

// DetermineCheckInStatus classifies a check-in: strictly before the 08:01
// deadline is on time, at or after is late.
func DetermineCheckInStatus(now time.Time) CheckInStatus {
	if secondsOfDay(now) < onTimeDeadlineSec {
		return CheckInOnTime
	}
	return CheckInLate
}

// BeforeCheckOutOpens reports whether now is too early to check out.
func BeforeCheckOutOpens(now time.Time) bool {
	return secondsOfDay(now) < checkOutOpensSec
}

// IsMissedCheckOut reports whether a checkout at now falls at or past the
// 18:00 missed-checkout threshold. Such checkouts require approved
// overtime to proceed but are still classified MISSED_CHECKOUT.
func IsMissedCheckOut(now time.Time) bool {
	return secondsOfDay(now) >= missedCheckOutSec
}

// AfterTimeOfDay reports whether now's time-of-day is at or past the
// time-of-day carried by threshold (the date parts are ignored).
func AfterTimeOfDay(now, threshold time.Time) bool {
	return secondsOfDay(now) >= secondsOfDay(threshold)
}

// DetermineDateStatus classifies a calendar day: Saturday and Sunday are
// WEEKEND, everything else WEEKDAY.
func DetermineDateStatus(date time.Time) DateStatus {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DateWeekend
	default:
		return DateWeekday
	}
}
