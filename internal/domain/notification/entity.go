package notification

import "time"

// DeviceSession stores the push token for a user's most recently
// registered device. One row per user, upserted on registration.
type DeviceSession struct {
	ID          string
	UserID      string
	DeviceToken string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
