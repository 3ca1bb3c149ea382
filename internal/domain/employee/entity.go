package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeID   string
	FullName     string
	Phone        string
	Branch       string
	Status       Status
	DailyRate    *decimal.Decimal
	Bonus        *decimal.Decimal
	Compensation *decimal.Decimal
	EmployeeType *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)
