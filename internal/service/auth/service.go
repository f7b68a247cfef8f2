package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/attendhub/attendance-backend-go/internal/domain/auth"
	"github.com/attendhub/attendance-backend-go/internal/domain/user"
	"github.com/attendhub/attendance-backend-go/internal/pkg/database"
	"github.com/attendhub/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwtService jwt.Service
	logger     *slog.Logger
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, auth.ErrUserInactive
	}

	if u.PasswordHash == nil {
		return nil, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Unix(expiresAt, 0).UTC().Format(time.RFC3339),
		UserID:       u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         string(u.Role),
	}, nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req *auth.RefreshRequest) (*auth.RefreshResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, auth.ErrInvalidRefreshToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, auth.ErrUserInactive
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   time.Unix(expiresAt, 0).UTC().Format(time.RFC3339),
	}, nil
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	jwtService jwt.Service,
	logger *slog.Logger,
) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepo,
		jwtService:     jwtService,
		logger:         logger,
	}
}
