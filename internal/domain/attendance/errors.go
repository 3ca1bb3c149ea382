package attendance

import "errors"

// Attendance domain errors
var (
	ErrOutOfRange      = errors.New("you are not within the allowed range to clock in or out")
	ErrSessionNotFound = errors.New("attendance session not found")
)
