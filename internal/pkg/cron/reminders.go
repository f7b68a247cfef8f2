package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/attendhub/attendance-backend-go/internal/domain/attendance"
	"github.com/attendhub/attendance-backend-go/internal/domain/notification"
	"github.com/attendhub/attendance-backend-go/internal/domain/user"
	"github.com/attendhub/attendance-backend-go/internal/pkg/clock"
)

// ReminderJobs sends the scheduled attendance reminders: a check-in
// reminder shortly before the on-time deadline, a checkout reminder
// shortly before the checkout window opens, and a missed-checkout alert
// at the missed threshold. Reminders fire on weekdays only.
type ReminderJobs struct {
	users       user.UserRepository
	attendances attendance.AttendanceRepository
	sink        notification.Sink
	clock       clock.Clock
	logger      *slog.Logger

	mu      sync.Mutex
	lastRun map[string]string // job name -> date last fired
}

func NewReminderJobs(
	users user.UserRepository,
	attendances attendance.AttendanceRepository,
	sink notification.Sink,
	clk clock.Clock,
	logger *slog.Logger,
) *ReminderJobs {
	return &ReminderJobs{
		users:       users,
		attendances: attendances,
		sink:        sink,
		clock:       clk,
		logger:      logger,
		lastRun:     make(map[string]string),
	}
}

// Jobs returns the scheduler jobs. The tick interval is short so each
// reminder fires within a minute of its scheduled time; the due guard
// keeps it to once per day.
func (r *ReminderJobs) Jobs() []Job {
	return []Job{
		{Name: "checkin-reminder", Interval: 30 * time.Second, Fn: r.CheckInReminder},
		{Name: "checkout-reminder", Interval: 30 * time.Second, Fn: r.CheckOutReminder},
		{Name: "missed-checkout-alert", Interval: 30 * time.Second, Fn: r.MissedCheckOutAlert},
	}
}

// due reports whether the named job should fire now: weekday, at or past
// hh:mm, and not already completed today.
func (r *ReminderJobs) due(name string, hour, min int) bool {
	now := r.clock.Now()

	wd := now.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	if now.Hour()*60+now.Minute() < hour*60+min {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRun[name] != now.Format("2006-01-02")
}

// markDone records that the named job completed for today. A job that
// returns an error is not marked and retries on the next tick.
func (r *ReminderJobs) markDone(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastRun[name] = r.clock.Now().Format("2006-01-02")
}

// CheckInReminder notifies every active user who has not checked in yet.
// Runs at 07:58.
func (r *ReminderJobs) CheckInReminder(ctx context.Context) error {
	if !r.due("checkin-reminder", 7, 58) {
		return nil
	}

	today := clock.DateOf(r.clock.Now())

	users, err := r.users.ListActive(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		rec, err := r.attendances.GetByUserAndDate(ctx, users[i].ID, today)
		if err != nil {
			r.logger.Warn("checkin reminder lookup failed", "user_id", users[i].ID, "error", err)
			continue
		}
		if rec != nil {
			continue
		}
		r.sink.Notify(ctx, users[i].ID, "Check-in reminder", "Don't forget to check in before 08:01", map[string]string{
			"type": "checkin_reminder",
		})
	}

	r.markDone("checkin-reminder")
	return nil
}

// CheckOutReminder notifies every user with an open attendance record.
// Runs at 16:58.
func (r *ReminderJobs) CheckOutReminder(ctx context.Context) error {
	if !r.due("checkout-reminder", 16, 58) {
		return nil
	}

	today := clock.DateOf(r.clock.Now())

	records, err := r.attendances.ListMissingCheckOut(ctx, today)
	if err != nil {
		return err
	}

	for i := range records {
		r.sink.Notify(ctx, records[i].UserID, "Checkout reminder", "Checkout opens at 17:00", map[string]string{
			"type": "checkout_reminder",
		})
	}

	r.markDone("checkout-reminder")
	return nil
}

// MissedCheckOutAlert notifies users who passed the missed-checkout
// threshold with their record still open. Runs at 18:00.
func (r *ReminderJobs) MissedCheckOutAlert(ctx context.Context) error {
	if !r.due("missed-checkout-alert", 18, 0) {
		return nil
	}

	today := clock.DateOf(r.clock.Now())

	records, err := r.attendances.ListMissingCheckOut(ctx, today)
	if err != nil {
		return err
	}

	for i := range records {
		r.sink.Notify(ctx, records[i].UserID, "Missed checkout", "You have not checked out yet", map[string]string{
			"type": "missed_checkout",
		})
	}

	r.markDone("missed-checkout-alert")
	return nil
}
