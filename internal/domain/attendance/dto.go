package attendance

import (
	"github.com/hadirin/attendance-backend-go/internal/pkg/validator"
)

// Clock event outcomes
const (
	ClockStatusIn  = "clocked_in"
	ClockStatusOut = "clocked_out"
)

type ClockRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ClockResponse is tagged by Status: a clock-in carries only ClockIn, a
// clock-out carries the full pair plus TotalHours.
type ClockResponse struct {
	Status     string   `json:"status"`
	SessionID  string   `json:"session_id"`
	EmployeeID string   `json:"employee_id"`
	ClockIn    string   `json:"clock_in"`
	ClockOut   *string  `json:"clock_out,omitempty"`
	TotalHours *float64 `json:"total_hours,omitempty"`
}

type SessionResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	ClockIn    string   `json:"clock_in"`
	ClockOut   *string  `json:"clock_out,omitempty"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	TotalHours *float64 `json:"total_hours,omitempty"`
}
