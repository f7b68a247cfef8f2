package attendance

import (
	"github.com/attendhub/attendance-backend-go/internal/pkg/validator"
)

// History status filters accepted by GET /api/attendance/history.
const (
	FilterPresent        = "PRESENT"
	FilterAbsent         = "ABSENT"
	FilterCheckInLate    = "CHECKIN_LATE"
	FilterMissedCheckIn  = "MISSED_CHECKIN"
	FilterMissedCheckOut = "MISSED_CHECKOUT"
)

var historyFilters = []string{
	FilterPresent,
	FilterAbsent,
	FilterCheckInLate,
	FilterMissedCheckIn,
	FilterMissedCheckOut,
}

type HistoryFilter struct {
	Status    *string
	StartDate *string // dd-MM-yyyy
	EndDate   *string // dd-MM-yyyy
}

func (f *HistoryFilter) Validate() error {
	if f.Status != nil && !validator.IsInSlice(*f.Status, historyFilters) {
		return ErrInvalidStatusFilter
	}
	return nil
}

type CheckInResponse struct {
	AttendanceID   string `json:"attendance_id"`
	UserID         string `json:"user_id"`
	AttendanceDate string `json:"attendance_date"`
	CheckInTime    string `json:"check_in_time"`
	CheckInStatus  string `json:"checkin_status"`
	Message        string `json:"message"`
}

type CheckOutResponse struct {
	AttendanceID   string `json:"attendance_id"`
	UserID         string `json:"user_id"`
	AttendanceDate string `json:"attendance_date"`
	CheckInTime    string `json:"check_in_time"`
	CheckOutTime   string `json:"check_out_time"`
	CheckInStatus  string `json:"checkin_status"`
	CheckOutStatus string `json:"checkout_status"`
	DateStatus     string `json:"date_status"`
	Message        string `json:"message"`
}

// RecordProjection is one entry in a history listing. For synthesized
// day-slots (MISSED_CHECKIN/ABSENT filters) only the date, date status and
// status fields carry values.
type RecordProjection struct {
	AttendanceID   *string `json:"attendance_id,omitempty"`
	UserID         string  `json:"user_id"`
	AttendanceDate string  `json:"attendance_date"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	CheckInStatus  *string `json:"checkin_status,omitempty"`
	CheckOutStatus *string `json:"checkout_status,omitempty"`
	DateStatus     string  `json:"date_status"`
}

type HistoryResponse struct {
	AttendanceRecords []RecordProjection `json:"attendance_records"`
}
