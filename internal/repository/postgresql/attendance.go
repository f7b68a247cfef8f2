package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendhub/attendance-backend-go/internal/domain/attendance"
	"github.com/attendhub/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, attendance_date, check_in_time, check_out_time,
	checkin_status, checkout_status, date_status, created_at, updated_at`

func scanAttendance(row pgx.Row) (*attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Date, &rec.CheckInTime, &rec.CheckOutTime,
		&rec.CheckInStatus, &rec.CheckOutStatus, &rec.DateStatus,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record *attendance.Record) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (
			user_id, attendance_date, check_in_time, checkin_status, date_status
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING ` + attendanceColumns

	rec, err := scanAttendance(q.QueryRow(ctx, query,
		record.UserID,
		record.Date,
		record.CheckInTime,
		record.CheckInStatus,
		record.DateStatus,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, attendance.ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1 AND attendance_date = $2
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// ListByUserAndDateRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUserAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE user_id = $1
		  AND attendance_date BETWEEN $2 AND $3
		ORDER BY attendance_date DESC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, attendanceID string, checkOutTime time.Time, status attendance.CheckOutStatus) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET check_out_time = $2, checkout_status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + attendanceColumns

	rec, err := scanAttendance(q.QueryRow(ctx, query, attendanceID, checkOutTime, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to set checkout: %w", err)
	}

	return rec, nil
}

// ListMissingCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListMissingCheckOut(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE attendance_date = $1
		  AND check_out_time IS NULL
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list missing checkouts: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
