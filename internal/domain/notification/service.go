package notification

import "context"

// Sink delivers a push notification to a user's registered device.
// Delivery is best effort: failures are logged, never surfaced to callers.
type Sink interface {
	Notify(ctx context.Context, userID, title, body string, data map[string]string)
}

type NotificationService interface {
	Sink
	RegisterDevice(ctx context.Context, userID string, req *RegisterDeviceRequest) (*RegisterDeviceResponse, error)
}
