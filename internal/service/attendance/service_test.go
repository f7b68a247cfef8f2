package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/attendhub/attendance-backend-go/internal/domain/attendance"
	"github.com/attendhub/attendance-backend-go/internal/domain/overtime"
	"github.com/attendhub/attendance-backend-go/internal/domain/permission"
	"github.com/attendhub/attendance-backend-go/internal/domain/user"
	"github.com/attendhub/attendance-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jakarta = time.FixedZone("WIB", 7*3600)

const testUserID = "11111111-1111-1111-1111-111111111111"

// tuesday returns a fixed weekday timestamp (2025-06-10 was a Tuesday).
func tuesday(hour, min, sec int) time.Time {
	return time.Date(2025, 6, 10, hour, min, sec, 0, jakarta)
}

type fakeAttendanceRepo struct {
	records map[string]*attendance.Record // keyed by user and date
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Record)}
}

func (f *fakeAttendanceRepo) key(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record *attendance.Record) (*attendance.Record, error) {
	k := f.key(record.UserID, record.Date)
	if _, ok := f.records[k]; ok {
		return nil, attendance.ErrAlreadyCheckedIn
	}
	rec := *record
	rec.ID = f.key("id", record.Date)
	f.records[k] = &rec
	return &rec, nil
}

func (f *fakeAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (*attendance.Record, error) {
	rec, ok := f.records[f.key(userID, date)]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeAttendanceRepo) ListByUserAndDateRange(_ context.Context, userID string, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.UserID != userID {
			continue
		}
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		out = append(out, *rec)
	}
	// date descending
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Date.After(out[i].Date) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(_ context.Context, attendanceID string, checkOutTime time.Time, status attendance.CheckOutStatus) (*attendance.Record, error) {
	for _, rec := range f.records {
		if rec.ID == attendanceID {
			rec.CheckOutTime = &checkOutTime
			rec.CheckOutStatus = &status
			copied := *rec
			return &copied, nil
		}
	}
	return nil, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) ListMissingCheckOut(_ context.Context, date time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Date.Equal(date) && rec.CheckOutTime == nil {
			out = append(out, *rec)
		}
	}
	return out, nil
}

type fakeOvertimeRepo struct {
	byDate map[string]*overtime.Overtime
}

func newFakeOvertimeRepo() *fakeOvertimeRepo {
	return &fakeOvertimeRepo{byDate: make(map[string]*overtime.Overtime)}
}

func (f *fakeOvertimeRepo) put(userID string, date time.Time, status overtime.Status, end time.Time) {
	f.byDate[userID+"|"+date.Format("2006-01-02")] = &overtime.Overtime{
		ID:          "ot-1",
		UserID:      userID,
		RequestDate: date,
		EndTime:     end,
		Status:      status,
	}
}

func (f *fakeOvertimeRepo) Create(_ context.Context, o *overtime.Overtime) (*overtime.Overtime, error) {
	return o, nil
}

func (f *fakeOvertimeRepo) GetByID(_ context.Context, _ string) (*overtime.Overtime, error) {
	return nil, overtime.ErrOvertimeNotFound
}

func (f *fakeOvertimeRepo) GetByUserAndDate(_ context.Context, userID string, date time.Time) (*overtime.Overtime, error) {
	o, ok := f.byDate[userID+"|"+date.Format("2006-01-02")]
	if !ok {
		return nil, nil
	}
	return o, nil
}

func (f *fakeOvertimeRepo) ListByUser(_ context.Context, _ string) ([]overtime.Overtime, error) {
	return nil, nil
}

func (f *fakeOvertimeRepo) Update(_ context.Context, o *overtime.Overtime) (*overtime.Overtime, error) {
	return o, nil
}

func (f *fakeOvertimeRepo) UpdateStatus(_ context.Context, _ string, _ overtime.Status) (*overtime.Overtime, error) {
	return nil, overtime.ErrOvertimeNotFound
}

type fakePermissionRepo struct {
	approved *permission.Permission
}

func (f *fakePermissionRepo) Create(_ context.Context, p *permission.Permission) (*permission.Permission, error) {
	return p, nil
}

func (f *fakePermissionRepo) GetByID(_ context.Context, _ string) (*permission.Permission, error) {
	return nil, permission.ErrPermissionNotFound
}

func (f *fakePermissionRepo) GetApprovedByUserAndDate(_ context.Context, _ string, _ time.Time) (*permission.Permission, error) {
	return f.approved, nil
}

func (f *fakePermissionRepo) ListByUser(_ context.Context, _ string) ([]permission.Permission, error) {
	return nil, nil
}

func (f *fakePermissionRepo) UpdateStatus(_ context.Context, _ string, _ permission.Status) (*permission.Permission, error) {
	return nil, permission.ErrPermissionNotFound
}

type fakeUserRepo struct {
	known map[string]bool
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	if !f.known[id] {
		return nil, user.ErrUserNotFound
	}
	return &user.User{ID: id, Status: user.StatusActive}, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListActive(_ context.Context) ([]user.User, error) {
	return nil, nil
}

type noopSink struct{}

func (noopSink) Notify(_ context.Context, _, _, _ string, _ map[string]string) {}

type engineFixture struct {
	svc         attendance.AttendanceService
	attendances *fakeAttendanceRepo
	overtimes   *fakeOvertimeRepo
	permissions *fakePermissionRepo
}

func newEngine(now time.Time) *engineFixture {
	f := &engineFixture{
		attendances: newFakeAttendanceRepo(),
		overtimes:   newFakeOvertimeRepo(),
		permissions: &fakePermissionRepo{},
	}
	f.svc = NewAttendanceService(
		nil,
		f.attendances,
		f.overtimes,
		f.permissions,
		&fakeUserRepo{known: map[string]bool{testUserID: true}},
		noopSink{},
		clock.Static{T: now},
		nil,
	)
	return f
}

func TestCheckInOnTime(t *testing.T) {
	f := newEngine(tuesday(7, 45, 0))

	resp, err := f.svc.CheckIn(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, "CHECKIN", resp.CheckInStatus)
	assert.Equal(t, "10-06-2025", resp.AttendanceDate)
	assert.Equal(t, "2025-06-10T07:45:00", resp.CheckInTime)
	assert.Contains(t, resp.Message, "on time")
}

func TestCheckInLateAtDeadline(t *testing.T) {
	f := newEngine(tuesday(8, 1, 0))

	resp, err := f.svc.CheckIn(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, "CHECKIN_LATE", resp.CheckInStatus)
	assert.Contains(t, resp.Message, "late")
}

func TestCheckInOnTimeLastSecond(t *testing.T) {
	f := newEngine(tuesday(8, 0, 59))

	resp, err := f.svc.CheckIn(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, "CHECKIN", resp.CheckInStatus)
}

func TestCheckInTooEarly(t *testing.T) {
	f := newEngine(tuesday(5, 59, 59))

	_, err := f.svc.CheckIn(context.Background(), testUserID)
	assert.ErrorIs(t, err, attendance.ErrCheckInTooEarly)
}

func TestCheckInUnknownUser(t *testing.T) {
	f := newEngine(tuesday(9, 0, 0))

	_, err := f.svc.CheckIn(context.Background(), "22222222-2222-2222-2222-222222222222")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	f := newEngine(tuesday(7, 45, 0))

	_, err := f.svc.CheckIn(context.Background(), testUserID)
	require.NoError(t, err)

	_, err = f.svc.CheckIn(context.Background(), testUserID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInAfterOvertimeGate(t *testing.T) {
	now := tuesday(17, 0, 0)
	today := clock.DateOf(now)

	t.Run("no overtime request", func(t *testing.T) {
		f := newEngine(now)
		_, err := f.svc.CheckIn(context.Background(), testUserID)
		assert.ErrorIs(t, err, attendance.ErrOvertimeRequired)
	})

	t.Run("pending overtime request", func(t *testing.T) {
		f := newEngine(now)
		f.overtimes.put(testUserID, today, overtime.StatusPending, tuesday(21, 0, 0))
		_, err := f.svc.CheckIn(context.Background(), testUserID)
		assert.ErrorIs(t, err, attendance.ErrOvertimeRequired)
		assert.Contains(t, err.Error(), "PENDING")
	})

	t.Run("approved overtime request", func(t *testing.T) {
		f := newEngine(now)
		f.overtimes.put(testUserID, today, overtime.StatusApproved, tuesday(21, 0, 0))
		resp, err := f.svc.CheckIn(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Equal(t, "CHECKIN_LATE", resp.CheckInStatus)
	})
}

func TestCheckInWeekendDateStatus(t *testing.T) {
	saturday := time.Date(2025, 6, 14, 9, 0, 0, 0, jakarta)
	f := newEngine(saturday)

	_, err := f.svc.CheckIn(context.Background(), testUserID)
	require.NoError(t, err)

	rec, err := f.attendances.GetByUserAndDate(context.Background(), testUserID, clock.DateOf(saturday))
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.DateWeekend, rec.DateStatus)
}

func checkInAt(t *testing.T, f *engineFixture, now time.Time) {
	t.Helper()
	rec := &attendance.Record{
		UserID:        testUserID,
		Date:          clock.DateOf(now),
		CheckInTime:   now,
		CheckInStatus: attendance.DetermineCheckInStatus(now),
		DateStatus:    attendance.DetermineDateStatus(now),
	}
	_, err := f.attendances.Create(context.Background(), rec)
	require.NoError(t, err)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	f := newEngine(tuesday(17, 30, 0))

	_, err := f.svc.CheckOut(context.Background(), testUserID)
	assert.ErrorIs(t, err, attendance.ErrCheckInRequired)
}

func TestCheckOutTooEarly(t *testing.T) {
	f := newEngine(tuesday(16, 59, 59))
	checkInAt(t, f, tuesday(7, 45, 0))

	_, err := f.svc.CheckOut(context.Background(), testUserID)
	assert.ErrorIs(t, err, attendance.ErrCheckOutTooEarly)
}

func TestCheckOutNormalWindow(t *testing.T) {
	// 17:30 is past the checkout opening but before the missed threshold,
	// so no overtime approval is needed.
	f := newEngine(tuesday(17, 30, 0))
	checkInAt(t, f, tuesday(7, 45, 0))

	resp, err := f.svc.CheckOut(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, "CHECKOUT", resp.CheckOutStatus)
	assert.Equal(t, "WEEKDAY", resp.DateStatus)
	assert.Equal(t, "2025-06-10T17:30:00", resp.CheckOutTime)
}

func TestCheckOutTwice(t *testing.T) {
	f := newEngine(tuesday(17, 30, 0))
	checkInAt(t, f, tuesday(7, 45, 0))

	_, err := f.svc.CheckOut(context.Background(), testUserID)
	require.NoError(t, err)

	_, err = f.svc.CheckOut(context.Background(), testUserID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOutMissedThreshold(t *testing.T) {
	today := clock.DateOf(tuesday(0, 0, 0))

	t.Run("without overtime", func(t *testing.T) {
		f := newEngine(tuesday(18, 5, 0))
		checkInAt(t, f, tuesday(7, 45, 0))

		_, err := f.svc.CheckOut(context.Background(), testUserID)
		assert.ErrorIs(t, err, attendance.ErrOvertimeRequired)
	})

	t.Run("before overtime end", func(t *testing.T) {
		f := newEngine(tuesday(18, 5, 0))
		checkInAt(t, f, tuesday(7, 45, 0))
		f.overtimes.put(testUserID, today, overtime.StatusApproved, tuesday(21, 0, 0))

		_, err := f.svc.CheckOut(context.Background(), testUserID)
		assert.ErrorIs(t, err, attendance.ErrBeforeOvertimeEnd)
	})

	t.Run("after overtime end is still missed", func(t *testing.T) {
		f := newEngine(tuesday(21, 10, 0))
		checkInAt(t, f, tuesday(7, 45, 0))
		f.overtimes.put(testUserID, today, overtime.StatusApproved, tuesday(21, 0, 0))

		resp, err := f.svc.CheckOut(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Equal(t, "MISSED_CHECKOUT", resp.CheckOutStatus)
	})
}

func TestCheckOutOvertimeEndComparesWallClock(t *testing.T) {
	today := clock.DateOf(tuesday(0, 0, 0))
	// End times come back from storage pinned to a fixed date in UTC.
	// The gate must read the wall clock, not the instant.
	end := time.Date(0, 1, 1, 21, 0, 0, 0, time.UTC)

	t.Run("before end", func(t *testing.T) {
		f := newEngine(tuesday(18, 5, 0))
		checkInAt(t, f, tuesday(7, 45, 0))
		f.overtimes.put(testUserID, today, overtime.StatusApproved, end)

		_, err := f.svc.CheckOut(context.Background(), testUserID)
		assert.ErrorIs(t, err, attendance.ErrBeforeOvertimeEnd)
	})

	t.Run("after end", func(t *testing.T) {
		f := newEngine(tuesday(21, 10, 0))
		checkInAt(t, f, tuesday(7, 45, 0))
		f.overtimes.put(testUserID, today, overtime.StatusApproved, end)

		resp, err := f.svc.CheckOut(context.Background(), testUserID)
		require.NoError(t, err)
		assert.Equal(t, "MISSED_CHECKOUT", resp.CheckOutStatus)
	})
}

func TestCheckOutEarlyLeavePermission(t *testing.T) {
	f := newEngine(tuesday(15, 0, 0))
	checkInAt(t, f, tuesday(7, 45, 0))

	start := tuesday(14, 30, 0)
	f.permissions.approved = &permission.Permission{
		UserID:    testUserID,
		Category:  permission.CategoryEarlyLeave,
		StartTime: &start,
		Status:    permission.StatusApproved,
	}

	resp, err := f.svc.CheckOut(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, "CHECKOUT_PERMISSION", resp.CheckOutStatus)
}

func TestGetHistoryDefaultsToCurrentMonth(t *testing.T) {
	f := newEngine(tuesday(10, 0, 0))
	checkInAt(t, f, tuesday(7, 45, 0))
	checkInAt(t, f, time.Date(2025, 5, 30, 7, 45, 0, 0, jakarta)) // previous month

	resp, err := f.svc.GetHistory(context.Background(), testUserID, attendance.HistoryFilter{})
	require.NoError(t, err)

	require.Len(t, resp.AttendanceRecords, 1)
	assert.Equal(t, "10-06-2025", resp.AttendanceRecords[0].AttendanceDate)
}

func TestGetHistoryExplicitRangeDescending(t *testing.T) {
	f := newEngine(tuesday(10, 0, 0))
	checkInAt(t, f, time.Date(2025, 6, 2, 7, 45, 0, 0, jakarta))
	checkInAt(t, f, time.Date(2025, 6, 3, 8, 30, 0, 0, jakarta))
	checkInAt(t, f, time.Date(2025, 6, 4, 7, 45, 0, 0, jakarta))

	start, end := "02-06-2025", "04-06-2025"
	resp, err := f.svc.GetHistory(context.Background(), testUserID, attendance.HistoryFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)

	require.Len(t, resp.AttendanceRecords, 3)
	assert.Equal(t, "04-06-2025", resp.AttendanceRecords[0].AttendanceDate)
	assert.Equal(t, "02-06-2025", resp.AttendanceRecords[2].AttendanceDate)
}

func TestGetHistoryInvalidDate(t *testing.T) {
	f := newEngine(tuesday(10, 0, 0))

	bad := "2025-06-02"
	_, err := f.svc.GetHistory(context.Background(), testUserID, attendance.HistoryFilter{StartDate: &bad})
	assert.ErrorIs(t, err, attendance.ErrInvalidDateFormat)
}

func TestGetHistoryInvalidStatusFilter(t *testing.T) {
	f := newEngine(tuesday(10, 0, 0))

	bad := "SOMETHING"
	_, err := f.svc.GetHistory(context.Background(), testUserID, attendance.HistoryFilter{Status: &bad})
	assert.ErrorIs(t, err, attendance.ErrInvalidStatusFilter)
}

func TestGetHistoryLateFilter(t *testing.T) {
	f := newEngine(tuesday(10, 0, 0))
	checkInAt(t, f, time.Date(2025, 6, 2, 7, 45, 0, 0, jakarta))
	checkInAt(t, f, time.Date(2025, 6, 3, 8, 30, 0, 0, jakarta))

	status := attendance.FilterCheckInLate
	resp, err := f.svc.GetHistory(context.Background(), testUserID, attendance.HistoryFilter{Status: &status})
	require.NoError(t, err)

	require.Len(t, resp.AttendanceRecords, 1)
	assert.Equal(t, "03-06-2025", resp.AttendanceRecords[0].AttendanceDate)
}

func TestGetHistoryAbsentFilterSynthesizesWeekdays(t *testing.T) {
	// Range Mon 02-06 through Fri 06-06, with records on Mon and Wed.
	// Absent days are Tue, Thu, Fri; the weekend days never appear.
	f := newEngine(time.Date(2025, 6, 8, 10, 0, 0, 0, jakarta))
	checkInAt(t, f, time.Date(2025, 6, 2, 7, 45, 0, 0, jakarta))
	checkInAt(t, f, time.Date(2025, 6, 4, 7, 45, 0, 0, jakarta))

	status := attendance.FilterAbsent
	start, end := "02-06-2025", "08-06-2025"
	resp, err := f.svc.GetHistory(context.Background(), testUserID, attendance.HistoryFilter{
		Status:    &status,
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)

	var dates []string
	for _, rec := range resp.AttendanceRecords {
		dates = append(dates, rec.AttendanceDate)
		assert.Equal(t, "WEEKDAY", rec.DateStatus)
		assert.Nil(t, rec.CheckInTime)
	}
	assert.Equal(t, []string{"06-06-2025", "05-06-2025", "03-06-2025"}, dates)
}

func TestGetHistoryMissedCheckInIncludesWeekends(t *testing.T) {
	f := newEngine(time.Date(2025, 6, 8, 10, 0, 0, 0, jakarta))
	checkInAt(t, f, time.Date(2025, 6, 6, 7, 45, 0, 0, jakarta))

	status := attendance.FilterMissedCheckIn
	start, end := "06-06-2025", "08-06-2025"
	resp, err := f.svc.GetHistory(context.Background(), testUserID, attendance.HistoryFilter{
		Status:    &status,
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)

	var dates []string
	for _, rec := range resp.AttendanceRecords {
		dates = append(dates, rec.AttendanceDate)
	}
	assert.Equal(t, []string{"08-06-2025", "07-06-2025"}, dates)
}

func TestGetHistoryPresentFilter(t *testing.T) {
	f := newEngine(tuesday(19, 0, 0))

	// On-time check-in with checkout qualifies as present.
	checkInAt(t, f, time.Date(2025, 6, 2, 7, 45, 0, 0, jakarta))
	rec, err := f.attendances.GetByUserAndDate(context.Background(), testUserID, time.Date(2025, 6, 2, 0, 0, 0, 0, jakarta))
	require.NoError(t, err)
	out := time.Date(2025, 6, 2, 17, 30, 0, 0, jakarta)
	_, err = f.attendances.SetCheckOut(context.Background(), rec.ID, out, attendance.CheckOutNormal)
	require.NoError(t, err)

	// Late check-in with checkout does not.
	checkInAt(t, f, time.Date(2025, 6, 3, 8, 30, 0, 0, jakarta))

	status := attendance.FilterPresent
	resp, err := f.svc.GetHistory(context.Background(), testUserID, attendance.HistoryFilter{Status: &status})
	require.NoError(t, err)

	require.Len(t, resp.AttendanceRecords, 1)
	assert.Equal(t, "02-06-2025", resp.AttendanceRecords[0].AttendanceDate)
}

func TestGetHistoryMissedCheckOutFilter(t *testing.T) {
	f := newEngine(tuesday(19, 0, 0))

	// Checked in and out on the 2nd, still open on the 3rd.
	checkInAt(t, f, time.Date(2025, 6, 2, 7, 45, 0, 0, jakarta))
	rec, err := f.attendances.GetByUserAndDate(context.Background(), testUserID, time.Date(2025, 6, 2, 0, 0, 0, 0, jakarta))
	require.NoError(t, err)
	out := time.Date(2025, 6, 2, 17, 30, 0, 0, jakarta)
	_, err = f.attendances.SetCheckOut(context.Background(), rec.ID, out, attendance.CheckOutNormal)
	require.NoError(t, err)

	checkInAt(t, f, time.Date(2025, 6, 3, 7, 45, 0, 0, jakarta))

	status := attendance.FilterMissedCheckOut
	resp, err := f.svc.GetHistory(context.Background(), testUserID, attendance.HistoryFilter{Status: &status})
	require.NoError(t, err)

	require.Len(t, resp.AttendanceRecords, 1)
	assert.Equal(t, "03-06-2025", resp.AttendanceRecords[0].AttendanceDate)
	assert.Nil(t, resp.AttendanceRecords[0].CheckOutTime)
}

func TestGetByDate(t *testing.T) {
	f := newEngine(tuesday(10, 0, 0))
	checkInAt(t, f, tuesday(7, 45, 0))

	t.Run("defaults to today", func(t *testing.T) {
		resp, err := f.svc.GetByDate(context.Background(), testUserID, nil)
		require.NoError(t, err)
		require.Len(t, resp.AttendanceRecords, 1)
		assert.Equal(t, "10-06-2025", resp.AttendanceRecords[0].AttendanceDate)
		assert.Equal(t, "2025-06-10T07:45:00", *resp.AttendanceRecords[0].CheckInTime)
	})

	t.Run("empty for a day without a record", func(t *testing.T) {
		date := "09-06-2025"
		resp, err := f.svc.GetByDate(context.Background(), testUserID, &date)
		require.NoError(t, err)
		assert.Empty(t, resp.AttendanceRecords)
	})

	t.Run("malformed date", func(t *testing.T) {
		date := "2025/06/10"
		_, err := f.svc.GetByDate(context.Background(), testUserID, &date)
		assert.ErrorIs(t, err, attendance.ErrInvalidDateFormat)
	})
}

func TestGetByDateNormalizesStoredZone(t *testing.T) {
	f := newEngine(tuesday(10, 0, 0))
	checkInAt(t, f, tuesday(7, 45, 0))

	// Re-express the stored instant in UTC, as a store in another zone
	// would. The response still shows the reference-zone wall clock.
	k := f.attendances.key(testUserID, clock.DateOf(tuesday(0, 0, 0)))
	rec := f.attendances.records[k]
	rec.CheckInTime = rec.CheckInTime.In(time.UTC)

	resp, err := f.svc.GetByDate(context.Background(), testUserID, nil)
	require.NoError(t, err)
	require.Len(t, resp.AttendanceRecords, 1)
	assert.Equal(t, "2025-06-10T07:45:00", *resp.AttendanceRecords[0].CheckInTime)
}
