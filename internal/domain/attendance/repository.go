package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access methods for attendance sessions.
type SessionRepository interface {
	// Create inserts a new open session
	Create(ctx context.Context, session Session) (Session, error)

	// GetOpenForUpdate retrieves the employee's open session, locking the row
	// for the duration of the surrounding transaction. Returns nil when no
	// session is open. At most one open session per employee may exist; the
	// lock is what keeps concurrent clock events from violating that.
	GetOpenForUpdate(ctx context.Context, employeeID string) (*Session, error)

	// Close sets clock_out and total_hours on an open session
	Close(ctx context.Context, sessionID string, clockOut time.Time, totalHours float64) error

	// ListByEmployee retrieves all sessions for one employee, clock_in ascending
	ListByEmployee(ctx context.Context, employeeID string) ([]Session, error)

	// ListClosedByEmployeeBetween retrieves closed sessions whose clock_in date
	// falls within [start, end] inclusive
	ListClosedByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Session, error)

	// ListAll retrieves every session (admin view)
	ListAll(ctx context.Context) ([]Session, error)

	// DeleteByEmployee removes all sessions for an employee
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
