package attendance

import "context"

// AttendanceService defines business logic for clock events and session history
type AttendanceService interface {
	// Clock records a clock event: it opens a session when none is open, and
	// closes the open one otherwise. Geofence and eligibility checks run
	// before any state change.
	Clock(ctx context.Context, req ClockRequest) (ClockResponse, error)

	// GetEmployeeSessions retrieves one employee's sessions, oldest first
	GetEmployeeSessions(ctx context.Context, employeeID string) ([]SessionResponse, error)

	// ListSessions retrieves every session (admin)
	ListSessions(ctx context.Context) ([]SessionResponse, error)
}
