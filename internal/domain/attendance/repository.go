package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts a new attendance row and returns it with the
	// database-generated ID and timestamps filled in.
	Create(ctx context.Context, record *Record) (*Record, error)

	// GetByUserAndDate returns nil, nil when no record exists for the date.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Record, error)

	// ListByUserAndDateRange returns records ordered by date descending.
	ListByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]Record, error)

	// SetCheckOut records the checkout time and status on an existing row.
	SetCheckOut(ctx context.Context, attendanceID string, checkOutTime time.Time, status CheckOutStatus) (*Record, error)

	// ListMissingCheckOut returns all records for the given date that have a
	// check-in but no checkout yet, across all users.
	ListMissingCheckOut(ctx context.Context, date time.Time) ([]Record, error)
}
