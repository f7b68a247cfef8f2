package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can approve overtime/permission requests
	RoleEmployee Role = "employee" // Regular employee
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	FullName     string
	Role         Role
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user can approve requests.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive checks if the account may check in and receive reminders.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
