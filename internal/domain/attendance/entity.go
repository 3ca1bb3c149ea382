package attendance

import "time"

// Session is one clock-in/clock-out pair for an employee. ClockOut is nil
// while the session is open; TotalHours is computed once, at close time, and
// never recomputed.
type Session struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
	Latitude   float64
	Longitude  float64
	TotalHours *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Open reports whether the session has not been closed yet.
func (s Session) Open() bool {
	return s.ClockOut == nil
}
