package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendhub/attendance-backend-go/internal/domain/permission"
	"github.com/attendhub/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type permissionRepository struct {
	db *database.DB
}

func NewPermissionRepository(db *database.DB) permission.PermissionRepository {
	return &permissionRepository{db: db}
}

const permissionColumns = `id, user_id, permission_date, category, shift, start_time, end_time,
	reason, status, created_at, updated_at`

func scanPermission(row pgx.Row) (*permission.Permission, error) {
	var p permission.Permission
	var start, end pgtype.Time
	err := row.Scan(
		&p.ID, &p.UserID, &p.PermissionDate, &p.Category, &p.Shift,
		&start, &end, &p.Reason, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if start.Valid {
		t := timeOfDay(start)
		p.StartTime = &t
	}
	if end.Valid {
		t := timeOfDay(end)
		p.EndTime = &t
	}
	return &p, nil
}

// Create implements permission.PermissionRepository.
func (r *permissionRepository) Create(ctx context.Context, p *permission.Permission) (*permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO permission (
			user_id, permission_date, category, shift, start_time, end_time, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING ` + permissionColumns

	created, err := scanPermission(q.QueryRow(ctx, query,
		p.UserID, p.PermissionDate, p.Category, p.Shift,
		timeOfDayPtrValue(p.StartTime), timeOfDayPtrValue(p.EndTime), p.Reason, p.Status,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, permission.ErrDuplicateRequest
		}
		return nil, fmt.Errorf("failed to create permission request: %w", err)
	}

	return created, nil
}

// GetByID implements permission.PermissionRepository.
func (r *permissionRepository) GetByID(ctx context.Context, id string) (*permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + permissionColumns + ` FROM permission WHERE id = $1`

	p, err := scanPermission(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, permission.ErrPermissionNotFound
		}
		return nil, fmt.Errorf("failed to get permission request: %w", err)
	}

	return p, nil
}

// GetApprovedByUserAndDate implements permission.PermissionRepository.
func (r *permissionRepository) GetApprovedByUserAndDate(ctx context.Context, userID string, date time.Time) (*permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + permissionColumns + `
		FROM permission
		WHERE user_id = $1 AND permission_date = $2 AND status = 'APPROVED'
	`

	p, err := scanPermission(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get approved permission: %w", err)
	}

	return p, nil
}

// ListByUser implements permission.PermissionRepository.
func (r *permissionRepository) ListByUser(ctx context.Context, userID string) ([]permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + permissionColumns + `
		FROM permission
		WHERE user_id = $1
		ORDER BY permission_date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list permission requests: %w", err)
	}
	defer rows.Close()

	var result []permission.Permission
	for rows.Next() {
		p, err := scanPermission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan permission request: %w", err)
		}
		result = append(result, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate permission requests: %w", err)
	}

	return result, nil
}

// UpdateStatus implements permission.PermissionRepository.
func (r *permissionRepository) UpdateStatus(ctx context.Context, id string, status permission.Status) (*permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE permission
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + permissionColumns

	updated, err := scanPermission(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, permission.ErrPermissionNotFound
		}
		return nil, fmt.Errorf("failed to update permission status: %w", err)
	}

	return updated, nil
}
