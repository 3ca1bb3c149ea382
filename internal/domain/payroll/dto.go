package payroll

import (
	"github.com/hadirin/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RunPayrollRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period parses the request dates. Validate must have passed.
func (r *RunPayrollRequest) Period() (Period, error) {
	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		return Period{}, ErrInvalidPeriod
	}
	end, ok := validator.IsValidDate(r.EndDate)
	if !ok || end.Before(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Start: start, End: end}, nil
}

// ReportLine is one employee's row in a payroll run report. The period day
// counts are carried for auditability.
type ReportLine struct {
	EmployeeID        string          `json:"employee_id"`
	FullName          string          `json:"full_name"`
	Branch            string          `json:"branch"`
	TotalHours        float64         `json:"total_hours"`
	TotalDaysWorked   float64         `json:"total_days_worked"`
	Salary            decimal.Decimal `json:"salary"`
	Bonus             decimal.Decimal `json:"bonus"`
	Compensation      decimal.Decimal `json:"compensation"`
	TotalPay          decimal.Decimal `json:"total_pay"`
	AbsenceDays       float64         `json:"absence_days"`
	TotalDaysInPeriod int             `json:"total_days_in_period"`
	TotalDaysInMonth  int             `json:"total_days_in_month"`
}

type RecordResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	PeriodStart      string          `json:"period_start"`
	PeriodEnd        string          `json:"period_end"`
	TotalDaysWorked  float64         `json:"total_days_worked"`
	TotalHoursWorked float64         `json:"total_hours_worked"`
	Salary           decimal.Decimal `json:"salary"`
	Bonus            decimal.Decimal `json:"bonus"`
	Compensation     decimal.Decimal `json:"compensation"`
	TotalPay         decimal.Decimal `json:"total_pay"`
	CreatedAt        string          `json:"created_at"`
}
