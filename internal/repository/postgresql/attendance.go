package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hadirin/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirin/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sessionRepository struct {
	db *database.DB
}

const sessionColumns = `id, employee_id, clock_in, clock_out, latitude, longitude, total_hours, created_at, updated_at`

// Create implements attendance.SessionRepository.
func (r *sessionRepository) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	session.ID = uuid.NewString()
	query := `
		INSERT INTO attendance_sessions (id, employee_id, clock_in, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		session.ID,
		session.EmployeeID,
		session.ClockIn,
		session.Latitude,
		session.Longitude,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return attendance.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetOpenForUpdate implements attendance.SessionRepository.
// FOR UPDATE serializes concurrent clock events on the same employee so two
// requests cannot both observe "no open session".
func (r *sessionRepository) GetOpenForUpdate(ctx context.Context, employeeID string) (*attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
		FOR UPDATE
	`

	var s attendance.Session
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.ID, &s.EmployeeID, &s.ClockIn, &s.ClockOut, &s.Latitude, &s.Longitude,
		&s.TotalHours, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return &s, nil
}

// Close implements attendance.SessionRepository.
func (r *sessionRepository) Close(ctx context.Context, sessionID string, clockOut time.Time, totalHours float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET clock_out = $1, total_hours = $2, updated_at = $3
		WHERE id = $4 AND clock_out IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, clockOut, totalHours, time.Now(), sessionID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrSessionNotFound
		}
		return fmt.Errorf("failed to close session: %w", err)
	}

	return nil
}

// ListByEmployee implements attendance.SessionRepository.
func (r *sessionRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1
		ORDER BY clock_in ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ListClosedByEmployeeBetween implements attendance.SessionRepository.
func (r *sessionRepository) ListClosedByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND clock_out IS NOT NULL
		  AND clock_in::date BETWEEN $2 AND $3
		ORDER BY clock_in ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions for period: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ListAll implements attendance.SessionRepository.
func (r *sessionRepository) ListAll(ctx context.Context) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM attendance_sessions
		ORDER BY clock_in DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// DeleteByEmployee implements attendance.SessionRepository.
func (r *sessionRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance_sessions WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}

func scanSessions(rows pgx.Rows) ([]attendance.Session, error) {
	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.ClockIn, &s.ClockOut, &s.Latitude, &s.Longitude,
			&s.TotalHours, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepository{db: db}
}
