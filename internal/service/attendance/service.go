package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendhub/attendance-backend-go/internal/domain/attendance"
	"github.com/attendhub/attendance-backend-go/internal/domain/notification"
	"github.com/attendhub/attendance-backend-go/internal/domain/overtime"
	"github.com/attendhub/attendance-backend-go/internal/domain/permission"
	"github.com/attendhub/attendance-backend-go/internal/domain/user"
	"github.com/attendhub/attendance-backend-go/internal/pkg/clock"
	"github.com/attendhub/attendance-backend-go/internal/pkg/database"
	"github.com/attendhub/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	overtime.OvertimeRepository
	permission.PermissionRepository
	user.UserRepository
	sink   notification.Sink
	clock  clock.Clock
	logger *slog.Logger
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, userID string) (*attendance.CheckInResponse, error) {
	now := a.clock.Now()
	today := clock.DateOf(now)

	if _, err := a.UserRepository.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, attendance.ErrAlreadyCheckedIn
	}

	if attendance.BeforeEarliestCheckIn(now) {
		return nil, attendance.ErrCheckInTooEarly
	}

	if attendance.CheckInRequiresOvertime(now) {
		if _, err := a.approvedOvertime(ctx, userID, today); err != nil {
			return nil, err
		}
	}

	status := attendance.DetermineCheckInStatus(now)
	record := &attendance.Record{
		UserID:        userID,
		Date:          today,
		CheckInTime:   now,
		CheckInStatus: status,
		DateStatus:    attendance.DetermineDateStatus(today),
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("You checked in on time at %s", now.Format("15:04"))
	if status == attendance.CheckInLate {
		message = fmt.Sprintf("You checked in late at %s", now.Format("15:04"))
	}

	go a.sink.Notify(context.WithoutCancel(ctx), userID, "Check-in recorded", message, map[string]string{
		"attendance_id": created.ID,
		"type":          "checkin",
	})

	return &attendance.CheckInResponse{
		AttendanceID:   created.ID,
		UserID:         created.UserID,
		AttendanceDate: created.Date.Format(validator.DateLayout),
		CheckInTime:    created.CheckInTime.In(now.Location()).Format(validator.TimestampLayout),
		CheckInStatus:  string(created.CheckInStatus),
		Message:        message,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string) (*attendance.CheckOutResponse, error) {
	now := a.clock.Now()
	today := clock.DateOf(now)

	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, attendance.ErrCheckInRequired
	}
	if record.HasCheckedOut() {
		return nil, attendance.ErrAlreadyCheckedOut
	}

	status := attendance.CheckOutNormal

	switch {
	case attendance.BeforeCheckOutOpens(now):
		// An approved early-leave permission covering the current time
		// permits an early checkout, classified separately.
		perm, err := a.PermissionRepository.GetApprovedByUserAndDate(ctx, userID, today)
		if err != nil {
			return nil, err
		}
		if perm == nil || perm.Category != permission.CategoryEarlyLeave ||
			perm.StartTime == nil || !attendance.AfterTimeOfDay(now, *perm.StartTime) {
			return nil, attendance.ErrCheckOutTooEarly
		}
		status = attendance.CheckOutPermission
	case attendance.IsMissedCheckOut(now):
		ot, err := a.approvedOvertime(ctx, userID, today)
		if err != nil {
			return nil, err
		}
		if !attendance.AfterTimeOfDay(now, ot.EndTime) {
			return nil, attendance.ErrBeforeOvertimeEnd
		}
		// Classified MISSED even though the approved overtime permits it.
		status = attendance.CheckOutMissed
	}

	updated, err := a.AttendanceRepository.SetCheckOut(ctx, record.ID, now, status)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("You checked out at %s", now.Format("15:04"))

	go a.sink.Notify(context.WithoutCancel(ctx), userID, "Checkout recorded", message, map[string]string{
		"attendance_id": updated.ID,
		"type":          "checkout",
	})

	return &attendance.CheckOutResponse{
		AttendanceID:   updated.ID,
		UserID:         updated.UserID,
		AttendanceDate: updated.Date.Format(validator.DateLayout),
		CheckInTime:    updated.CheckInTime.In(now.Location()).Format(validator.TimestampLayout),
		CheckOutTime:   updated.CheckOutTime.In(now.Location()).Format(validator.TimestampLayout),
		CheckInStatus:  string(updated.CheckInStatus),
		CheckOutStatus: string(*updated.CheckOutStatus),
		DateStatus:     string(updated.DateStatus),
		Message:        message,
	}, nil
}

// approvedOvertime loads today's overtime request and requires it to be
// APPROVED, surfacing the current status in the error otherwise.
func (a *AttendanceServiceImpl) approvedOvertime(ctx context.Context, userID string, date time.Time) (*overtime.Overtime, error) {
	ot, err := a.OvertimeRepository.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if ot == nil {
		return nil, attendance.ErrOvertimeRequired
	}
	if !ot.IsApproved() {
		return nil, fmt.Errorf("%w: request is %s", attendance.ErrOvertimeRequired, ot.Status)
	}
	return ot, nil
}

// GetHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetHistory(ctx context.Context, userID string, filter attendance.HistoryFilter) (*attendance.HistoryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	now := a.clock.Now()
	today := clock.DateOf(now)
	loc := now.Location()

	start, end, err := a.resolveRange(now, filter)
	if err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListByUserAndDateRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	var projections []attendance.RecordProjection

	if filter.Status == nil {
		for i := range records {
			projections = append(projections, projectRecord(&records[i], loc))
		}
		return &attendance.HistoryResponse{AttendanceRecords: projections}, nil
	}

	switch *filter.Status {
	case attendance.FilterPresent:
		for i := range records {
			r := &records[i]
			if r.HasCheckedOut() && r.CheckInStatus == attendance.CheckInOnTime {
				projections = append(projections, projectRecord(r, loc))
			}
		}
	case attendance.FilterCheckInLate:
		for i := range records {
			if records[i].CheckInStatus == attendance.CheckInLate {
				projections = append(projections, projectRecord(&records[i], loc))
			}
		}
	case attendance.FilterMissedCheckOut:
		for i := range records {
			if !records[i].HasCheckedOut() {
				projections = append(projections, projectRecord(&records[i], loc))
			}
		}
	case attendance.FilterMissedCheckIn:
		projections = synthesizeDaySlots(userID, records, start, end, today, false)
	case attendance.FilterAbsent:
		projections = synthesizeDaySlots(userID, records, start, end, today, true)
	}

	return &attendance.HistoryResponse{AttendanceRecords: projections}, nil
}

// GetByDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetByDate(ctx context.Context, userID string, date *string) (*attendance.HistoryResponse, error) {
	now := a.clock.Now()
	loc := now.Location()
	target := clock.DateOf(now)

	if date != nil {
		parsed, err := time.ParseInLocation(validator.DateLayout, *date, loc)
		if err != nil {
			return nil, attendance.ErrInvalidDateFormat
		}
		target = parsed
	}

	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, userID, target)
	if err != nil {
		return nil, err
	}

	resp := &attendance.HistoryResponse{AttendanceRecords: []attendance.RecordProjection{}}
	if record != nil {
		resp.AttendanceRecords = append(resp.AttendanceRecords, projectRecord(record, loc))
	}

	return resp, nil
}

// resolveRange parses the optional filter dates, defaulting to the first
// through last day of the current month.
func (a *AttendanceServiceImpl) resolveRange(now time.Time, filter attendance.HistoryFilter) (time.Time, time.Time, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)

	if filter.StartDate != nil {
		parsed, err := time.ParseInLocation(validator.DateLayout, *filter.StartDate, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, attendance.ErrInvalidDateFormat
		}
		start = parsed
	}
	if filter.EndDate != nil {
		parsed, err := time.ParseInLocation(validator.DateLayout, *filter.EndDate, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, attendance.ErrInvalidDateFormat
		}
		end = parsed
	}

	return start, end, nil
}

// projectRecord renders a stored record for responses. Instants come
// back from the store in an arbitrary zone and are presented in loc.
func projectRecord(r *attendance.Record, loc *time.Location) attendance.RecordProjection {
	checkIn := r.CheckInTime.In(loc).Format(validator.TimestampLayout)
	checkInStatus := string(r.CheckInStatus)

	p := attendance.RecordProjection{
		AttendanceID:   &r.ID,
		UserID:         r.UserID,
		AttendanceDate: r.Date.Format(validator.DateLayout),
		CheckInTime:    &checkIn,
		CheckInStatus:  &checkInStatus,
		DateStatus:     string(r.DateStatus),
	}

	if r.CheckOutTime != nil {
		checkOut := r.CheckOutTime.In(loc).Format(validator.TimestampLayout)
		p.CheckOutTime = &checkOut
	}
	if r.CheckOutStatus != nil {
		checkOutStatus := string(*r.CheckOutStatus)
		p.CheckOutStatus = &checkOutStatus
	}

	return p
}

// synthesizeDaySlots walks the requested range up to today and emits one
// empty projection per day with no stored record. weekdaysOnly restricts
// the result to WEEKDAY days (the ABSENT filter excludes weekends).
func synthesizeDaySlots(userID string, records []attendance.Record, start, end, today time.Time, weekdaysOnly bool) []attendance.RecordProjection {
	recorded := make(map[string]struct{}, len(records))
	for i := range records {
		recorded[records[i].Date.Format(validator.DateLayout)] = struct{}{}
	}

	if end.After(today) {
		end = today
	}

	var slots []attendance.RecordProjection
	for day := end; !day.Before(start); day = day.AddDate(0, 0, -1) {
		dateStatus := attendance.DetermineDateStatus(day)
		if weekdaysOnly && dateStatus != attendance.DateWeekday {
			continue
		}
		key := day.Format(validator.DateLayout)
		if _, ok := recorded[key]; ok {
			continue
		}
		slots = append(slots, attendance.RecordProjection{
			UserID:         userID,
			AttendanceDate: key,
			DateStatus:     string(dateStatus),
		})
	}

	return slots
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	overtimeRepo overtime.OvertimeRepository,
	permissionRepo permission.PermissionRepository,
	userRepo user.UserRepository,
	sink notification.Sink,
	clk clock.Clock,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		OvertimeRepository:   overtimeRepo,
		PermissionRepository: permissionRepo,
		UserRepository:       userRepo,
		sink:                 sink,
		clock:                clk,
		logger:               logger,
	}
}
