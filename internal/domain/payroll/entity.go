package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one computed payroll row for one employee and one period.
// Records are append-only: repeated runs over the same period insert new rows,
// they never update or supersede earlier ones.
type Record struct {
	ID               string
	EmployeeID       string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	TotalDaysWorked  float64
	TotalHoursWorked float64
	Salary           decimal.Decimal
	Bonus            decimal.Decimal
	Compensation     decimal.Decimal
	TotalPay         decimal.Decimal
	CreatedAt        time.Time
}
