package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendhub/attendance-backend-go/internal/domain/notification"
	"github.com/attendhub/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) notification.SessionRepository {
	return &sessionRepository{db: db}
}

// SaveDeviceToken implements notification.SessionRepository.
func (r *sessionRepository) SaveDeviceToken(ctx context.Context, userID, deviceToken string) (*notification.DeviceSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_sessions (user_id, device_token)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET device_token = EXCLUDED.device_token, updated_at = NOW()
		RETURNING id, user_id, device_token, created_at, updated_at
	`

	var s notification.DeviceSession
	err := q.QueryRow(ctx, query, userID, deviceToken).Scan(
		&s.ID, &s.UserID, &s.DeviceToken, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save device token: %w", err)
	}

	return &s, nil
}

// GetTokenByUserID implements notification.SessionRepository.
func (r *sessionRepository) GetTokenByUserID(ctx context.Context, userID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT device_token FROM user_sessions WHERE user_id = $1`

	var token string
	err := q.QueryRow(ctx, query, userID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get device token: %w", err)
	}

	return token, nil
}
