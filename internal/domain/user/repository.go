package user

import "context"

// UserRepository defines data access methods for users. Users are
// provisioned out of band; there is no create/update surface here.
type UserRepository interface {
	// GetByID retrieves a user by ID, returning ErrUserNotFound when absent
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail retrieves a user by email, returning ErrUserNotFound when absent
	GetByEmail(ctx context.Context, email string) (*User, error)

	// ListActive retrieves all users with ACTIVE status
	ListActive(ctx context.Context) ([]User, error)
}
