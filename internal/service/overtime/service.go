package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/attendhub/attendance-backend-go/internal/domain/notification"
	"github.com/attendhub/attendance-backend-go/internal/domain/overtime"
	"github.com/attendhub/attendance-backend-go/internal/pkg/clock"
	"github.com/attendhub/attendance-backend-go/internal/pkg/database"
	"github.com/attendhub/attendance-backend-go/internal/pkg/validator"
)

const (
	minDurationHours = 1.99 // spans of at least 1.99h satisfy the 2h minimum
	toleranceHours   = 0.02

	weekdayWindowStartSec = 18 * 3600 // 18:00:00
	weekdayWindowEndSec   = 21 * 3600 // 21:00:00
)

type OvertimeServiceImpl struct {
	db *database.DB
	overtime.OvertimeRepository
	sink   notification.Sink
	clock  clock.Clock
	logger *slog.Logger
}

// Request implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Request(ctx context.Context, userID string, req *overtime.RequestOvertimeRequest) (*overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	loc := now.Location()

	// Formats are guaranteed by Validate above.
	date, err := time.ParseInLocation(validator.DateLayout, req.OvertimeDate, loc)
	if err != nil {
		return nil, fmt.Errorf("parse overtime date: %w", err)
	}
	if date.Before(clock.DateOf(now)) {
		return nil, overtime.ErrPastDate
	}

	start, err := time.Parse(validator.TimeLayout, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse start time: %w", err)
	}
	end, err := time.Parse(validator.TimeLayout, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse end time: %w", err)
	}
	if !end.After(start) {
		return nil, overtime.ErrEndBeforeStart
	}

	span := end.Sub(start).Hours()
	if span < minDurationHours {
		return nil, overtime.ErrDurationTooShort
	}
	if math.Abs(span-req.Duration) > toleranceHours {
		return nil, overtime.ErrDurationMismatch
	}

	isWeekday := date.Weekday() != time.Saturday && date.Weekday() != time.Sunday
	if isWeekday && !withinWeekdayWindow(start, end) {
		return nil, overtime.ErrOutsideWeekdayWindow
	}

	created, err := s.OvertimeRepository.Create(ctx, &overtime.Overtime{
		UserID:      userID,
		RequestDate: date,
		StartTime:   start,
		EndTime:     end,
		Duration:    math.Round(span*100) / 100,
		IsWeekday:   isWeekday,
		Objective:   req.Objective,
		Status:      overtime.StatusPending,
	})
	if err != nil {
		return nil, err
	}

	return projectOvertime(created), nil
}

// GetMine implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) GetMine(ctx context.Context, userID string) (*overtime.ListResponse, error) {
	requests, err := s.OvertimeRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &overtime.ListResponse{OvertimeRequests: []overtime.OvertimeResponse{}}
	for i := range requests {
		resp.OvertimeRequests = append(resp.OvertimeRequests, *projectOvertime(&requests[i]))
	}

	return resp, nil
}

// GetByID implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) GetByID(ctx context.Context, userID, overtimeID string, isAdmin bool) (*overtime.OvertimeResponse, error) {
	o, err := s.OvertimeRepository.GetByID(ctx, overtimeID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && o.UserID != userID {
		return nil, overtime.ErrAccessDenied
	}

	return projectOvertime(o), nil
}

// Update implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Update(ctx context.Context, userID, overtimeID string, req *overtime.UpdateOvertimeRequest) (*overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o, err := s.OvertimeRepository.GetByID(ctx, overtimeID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, overtime.ErrAccessDenied
	}
	if !o.IsPending() {
		return nil, overtime.ErrAlreadyProcessed
	}

	if req.StartTime != nil {
		start, err := time.Parse(validator.TimeLayout, *req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parse start time: %w", err)
		}
		o.StartTime = start
	}
	if req.EndTime != nil {
		end, err := time.Parse(validator.TimeLayout, *req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parse end time: %w", err)
		}
		o.EndTime = end
	}
	if req.Objective != nil {
		o.Objective = *req.Objective
	}

	if !o.EndTime.After(o.StartTime) {
		return nil, overtime.ErrEndBeforeStart
	}

	span := o.EndTime.Sub(o.StartTime).Hours()
	if span < minDurationHours {
		return nil, overtime.ErrDurationTooShort
	}
	if req.Duration != nil && math.Abs(span-*req.Duration) > toleranceHours {
		return nil, overtime.ErrDurationMismatch
	}
	if o.IsWeekday && !withinWeekdayWindow(o.StartTime, o.EndTime) {
		return nil, overtime.ErrOutsideWeekdayWindow
	}
	o.Duration = math.Round(span*100) / 100

	updated, err := s.OvertimeRepository.Update(ctx, o)
	if err != nil {
		return nil, err
	}

	return projectOvertime(updated), nil
}

// SetStatus implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) SetStatus(ctx context.Context, overtimeID string, req *overtime.SetStatusRequest) (*overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o, err := s.OvertimeRepository.GetByID(ctx, overtimeID)
	if err != nil {
		return nil, err
	}
	if !o.IsPending() {
		return nil, overtime.ErrAlreadyProcessed
	}

	updated, err := s.OvertimeRepository.UpdateStatus(ctx, overtimeID, overtime.Status(req.Status))
	if err != nil {
		return nil, err
	}

	title := "Overtime request update"
	body := "Your overtime request for " + updated.RequestDate.Format(validator.DateLayout) + " was " + string(updated.Status)
	go s.sink.Notify(context.WithoutCancel(ctx), updated.UserID, title, body, map[string]string{
		"overtime_id": updated.ID,
		"type":        "overtime_status",
	})

	return projectOvertime(updated), nil
}

// withinWeekdayWindow reports whether the span falls inside the
// 18:00-21:00 window required for weekday requests.
func withinWeekdayWindow(start, end time.Time) bool {
	startSec := start.Hour()*3600 + start.Minute()*60 + start.Second()
	endSec := end.Hour()*3600 + end.Minute()*60 + end.Second()
	return startSec >= weekdayWindowStartSec && endSec <= weekdayWindowEndSec
}

func projectOvertime(o *overtime.Overtime) *overtime.OvertimeResponse {
	return &overtime.OvertimeResponse{
		OvertimeID:   o.ID,
		UserID:       o.UserID,
		OvertimeDate: o.RequestDate.Format(validator.DateLayout),
		StartTime:    o.StartTime.Format(validator.TimeLayout),
		EndTime:      o.EndTime.Format(validator.TimeLayout),
		Duration:     o.Duration,
		IsWeekday:    o.IsWeekday,
		Objective:    o.Objective,
		Status:       string(o.Status),
	}
}

func NewOvertimeService(
	db *database.DB,
	overtimeRepo overtime.OvertimeRepository,
	sink notification.Sink,
	clk clock.Clock,
	logger *slog.Logger,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		db:                 db,
		OvertimeRepository: overtimeRepo,
		sink:               sink,
		clock:              clk,
		logger:             logger,
	}
}
