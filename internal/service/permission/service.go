package permission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendhub/attendance-backend-go/internal/domain/notification"
	"github.com/attendhub/attendance-backend-go/internal/domain/permission"
	"github.com/attendhub/attendance-backend-go/internal/pkg/clock"
	"github.com/attendhub/attendance-backend-go/internal/pkg/database"
	"github.com/attendhub/attendance-backend-go/internal/pkg/validator"
)

// Category duration bounds in hours: early leave covers at least two
// hours of the day, going outside strictly less.
const categoryBoundaryHours = 2.0

type PermissionServiceImpl struct {
	db *database.DB
	permission.PermissionRepository
	sink   notification.Sink
	clock  clock.Clock
	logger *slog.Logger
}

// Create implements permission.PermissionService.
func (s *PermissionServiceImpl) Create(ctx context.Context, userID string, req *permission.CreatePermissionRequest) (*permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	loc := s.clock.Now().Location()

	date, err := time.ParseInLocation(validator.DateLayout, req.PermissionDate, loc)
	if err != nil {
		return nil, fmt.Errorf("parse permission date: %w", err)
	}

	p := &permission.Permission{
		UserID:         userID,
		PermissionDate: date,
		Category:       permission.Category(req.Category),
		Reason:         req.Reason,
		Status:         permission.StatusPending,
	}

	if req.Shift != nil {
		shift := permission.Shift(*req.Shift)
		p.Shift = &shift
	}
	if p.Category == permission.CategoryPermission && p.Shift != nil {
		start, end := p.Shift.Window()
		p.StartTime = &start
		p.EndTime = &end
	}

	if req.StartTime != nil {
		start, err := time.Parse(validator.TimeLayout, *req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parse start time: %w", err)
		}
		p.StartTime = &start
	}
	if req.EndTime != nil {
		end, err := time.Parse(validator.TimeLayout, *req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parse end time: %w", err)
		}
		p.EndTime = &end
	}

	if err := checkCategoryBounds(p); err != nil {
		return nil, err
	}

	created, err := s.PermissionRepository.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	return projectPermission(created), nil
}

// checkCategoryBounds enforces the time-span rules per category:
// EARLY_LEAVE spans at least 2 hours, GO_OUTSIDE strictly less.
func checkCategoryBounds(p *permission.Permission) error {
	if p.StartTime == nil || p.EndTime == nil {
		return nil
	}
	if !p.EndTime.After(*p.StartTime) {
		return permission.ErrEndBeforeStart
	}

	span := p.EndTime.Sub(*p.StartTime).Hours()
	switch p.Category {
	case permission.CategoryEarlyLeave:
		if span < categoryBoundaryHours {
			return permission.ErrLeaveTooShort
		}
	case permission.CategoryGoOutside:
		if span >= categoryBoundaryHours {
			return permission.ErrOutsideTooLong
		}
	}

	return nil
}

// GetMine implements permission.PermissionService.
func (s *PermissionServiceImpl) GetMine(ctx context.Context, userID string) (*permission.ListResponse, error) {
	requests, err := s.PermissionRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &permission.ListResponse{PermissionRequests: []permission.PermissionResponse{}}
	for i := range requests {
		resp.PermissionRequests = append(resp.PermissionRequests, *projectPermission(&requests[i]))
	}

	return resp, nil
}

// GetByID implements permission.PermissionService.
func (s *PermissionServiceImpl) GetByID(ctx context.Context, userID, permissionID string, isAdmin bool) (*permission.PermissionResponse, error) {
	p, err := s.PermissionRepository.GetByID(ctx, permissionID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && p.UserID != userID {
		return nil, permission.ErrAccessDenied
	}

	return projectPermission(p), nil
}

// SetStatus implements permission.PermissionService.
func (s *PermissionServiceImpl) SetStatus(ctx context.Context, permissionID string, req *permission.SetStatusRequest) (*permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PermissionRepository.GetByID(ctx, permissionID)
	if err != nil {
		return nil, err
	}
	if !p.IsPending() {
		return nil, permission.ErrAlreadyProcessed
	}

	updated, err := s.PermissionRepository.UpdateStatus(ctx, permissionID, permission.Status(req.Status))
	if err != nil {
		return nil, err
	}

	body := "Your permission request for " + updated.PermissionDate.Format(validator.DateLayout) + " was " + string(updated.Status)
	go s.sink.Notify(context.WithoutCancel(ctx), updated.UserID, "Permission request update", body, map[string]string{
		"permission_id": updated.ID,
		"type":          "permission_status",
	})

	return projectPermission(updated), nil
}

func projectPermission(p *permission.Permission) *permission.PermissionResponse {
	resp := &permission.PermissionResponse{
		PermissionID:   p.ID,
		UserID:         p.UserID,
		PermissionDate: p.PermissionDate.Format(validator.DateLayout),
		Category:       string(p.Category),
		Reason:         p.Reason,
		Status:         string(p.Status),
	}

	if p.Shift != nil {
		shift := string(*p.Shift)
		resp.Shift = &shift
	}
	if p.StartTime != nil {
		start := p.StartTime.Format(validator.TimeLayout)
		resp.StartTime = &start
	}
	if p.EndTime != nil {
		end := p.EndTime.Format(validator.TimeLayout)
		resp.EndTime = &end
	}

	return resp
}

func NewPermissionService(
	db *database.DB,
	permissionRepo permission.PermissionRepository,
	sink notification.Sink,
	clk clock.Clock,
	logger *slog.Logger,
) permission.PermissionService {
	return &PermissionServiceImpl{
		db:                   db,
		PermissionRepository: permissionRepo,
		sink:                 sink,
		clock:                clk,
		logger:               logger,
	}
}
