package permission

import (
	"context"
	"time"
)

type PermissionRepository interface {
	// Create inserts a new request. A unique violation on (user_id,
	// permission_date) is returned as ErrDuplicateRequest.
	Create(ctx context.Context, p *Permission) (*Permission, error)

	GetByID(ctx context.Context, id string) (*Permission, error)

	// GetApprovedByUserAndDate returns nil, nil when the user holds no
	// approved permission for the date.
	GetApprovedByUserAndDate(ctx context.Context, userID string, date time.Time) (*Permission, error)

	// ListByUser returns requests ordered by permission date descending.
	ListByUser(ctx context.Context, userID string) ([]Permission, error)

	UpdateStatus(ctx context.Context, id string, status Status) (*Permission, error)
}
