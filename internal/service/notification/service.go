package notification

import (
	"context"
	"log/slog"

	"github.com/attendhub/attendance-backend-go/internal/domain/notification"
	"github.com/attendhub/attendance-backend-go/internal/pkg/database"
	"github.com/attendhub/attendance-backend-go/internal/pkg/push"
)

type NotificationServiceImpl struct {
	db *database.DB
	notification.SessionRepository
	pushClient *push.Client // nil when push delivery is not configured
	logger     *slog.Logger
}

// RegisterDevice implements notification.NotificationService.
func (s *NotificationServiceImpl) RegisterDevice(ctx context.Context, userID string, req *notification.RegisterDeviceRequest) (*notification.RegisterDeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	session, err := s.SessionRepository.SaveDeviceToken(ctx, userID, req.DeviceToken)
	if err != nil {
		return nil, err
	}

	return &notification.RegisterDeviceResponse{
		UserID:      session.UserID,
		DeviceToken: session.DeviceToken,
	}, nil
}

// Notify implements notification.Sink. Delivery failures are logged and
// swallowed; a missing device registration is not an error.
func (s *NotificationServiceImpl) Notify(ctx context.Context, userID, title, body string, data map[string]string) {
	if s.pushClient == nil {
		return
	}

	token, err := s.SessionRepository.GetTokenByUserID(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to load device token", "user_id", userID, "error", err)
		return
	}
	if token == "" {
		return
	}

	if err := s.pushClient.Send(ctx, token, title, body, data); err != nil {
		s.logger.Warn("push delivery failed", "user_id", userID, "error", err)
	}
}

func NewNotificationService(
	db *database.DB,
	sessionRepo notification.SessionRepository,
	pushClient *push.Client,
	logger *slog.Logger,
) notification.NotificationService {
	return &NotificationServiceImpl{
		db:                db,
		SessionRepository: sessionRepo,
		pushClient:        pushClient,
		logger:            logger,
	}
}
