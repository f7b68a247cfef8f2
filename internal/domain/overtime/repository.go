package overtime

import (
	"context"
	"time"
)

type OvertimeRepository interface {
	// Create inserts a new request. A unique violation on (user_id,
	// request_date) is returned as ErrDuplicateRequest.
	Create(ctx context.Context, o *Overtime) (*Overtime, error)

	GetByID(ctx context.Context, id string) (*Overtime, error)

	// GetByUserAndDate returns nil, nil when no request exists for the date.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Overtime, error)

	// ListByUser returns requests ordered by request date descending.
	ListByUser(ctx context.Context, userID string) ([]Overtime, error)

	Update(ctx context.Context, o *Overtime) (*Overtime, error)

	UpdateStatus(ctx context.Context, id string, status Status) (*Overtime, error)
}
