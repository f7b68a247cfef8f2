package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendhub/attendance-backend-go/internal/domain/overtime"
	"github.com/attendhub/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `id, user_id, request_date, start_time, end_time, duration,
	is_weekday, objective, status, created_at, updated_at`

func scanOvertime(row pgx.Row) (*overtime.Overtime, error) {
	var o overtime.Overtime
	var start, end pgtype.Time
	err := row.Scan(
		&o.ID, &o.UserID, &o.RequestDate, &start, &end, &o.Duration,
		&o.IsWeekday, &o.Objective, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.StartTime = timeOfDay(start)
	o.EndTime = timeOfDay(end)
	return &o, nil
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, o *overtime.Overtime) (*overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime (
			user_id, request_date, start_time, end_time, duration, is_weekday, objective, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING ` + overtimeColumns

	created, err := scanOvertime(q.QueryRow(ctx, query,
		o.UserID, o.RequestDate, timeOfDayValue(o.StartTime), timeOfDayValue(o.EndTime),
		o.Duration, o.IsWeekday, o.Objective, o.Status,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, overtime.ErrDuplicateRequest
		}
		return nil, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return created, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetByID(ctx context.Context, id string) (*overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime WHERE id = $1`

	o, err := scanOvertime(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, overtime.ErrOvertimeNotFound
		}
		return nil, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return o, nil
}

// GetByUserAndDate implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime WHERE user_id = $1 AND request_date = $2`

	o, err := scanOvertime(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get overtime request by date: %w", err)
	}

	return o, nil
}

// ListByUser implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByUser(ctx context.Context, userID string) ([]overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `
		FROM overtime
		WHERE user_id = $1
		ORDER BY request_date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var result []overtime.Overtime
	for rows.Next() {
		o, err := scanOvertime(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		result = append(result, *o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime requests: %w", err)
	}

	return result, nil
}

// Update implements overtime.OvertimeRepository.
func (r *overtimeRepository) Update(ctx context.Context, o *overtime.Overtime) (*overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime
		SET start_time = $2, end_time = $3, duration = $4, objective = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + overtimeColumns

	updated, err := scanOvertime(q.QueryRow(ctx, query,
		o.ID, timeOfDayValue(o.StartTime), timeOfDayValue(o.EndTime), o.Duration, o.Objective,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, overtime.ErrOvertimeNotFound
		}
		return nil, fmt.Errorf("failed to update overtime request: %w", err)
	}

	return updated, nil
}

// UpdateStatus implements overtime.OvertimeRepository.
func (r *overtimeRepository) UpdateStatus(ctx context.Context, id string, status overtime.Status) (*overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + overtimeColumns

	updated, err := scanOvertime(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, overtime.ErrOvertimeNotFound
		}
		return nil, fmt.Errorf("failed to update overtime status: %w", err)
	}

	return updated, nil
}
