package notification

import "context"

type SessionRepository interface {
	// SaveDeviceToken upserts the device token for the user.
	SaveDeviceToken(ctx context.Context, userID, deviceToken string) (*DeviceSession, error)

	// GetTokenByUserID returns an empty string when the user has no
	// registered device.
	GetTokenByUserID(ctx context.Context, userID string) (string, error)
}
