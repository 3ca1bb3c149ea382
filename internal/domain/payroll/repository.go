package payroll

import "context"

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	// CreateRecord appends a computed payroll row. Records are never updated
	// or deduplicated; overlapping runs coexist.
	CreateRecord(ctx context.Context, record Record) (Record, error)

	// ListRecords retrieves all payroll records, newest first
	ListRecords(ctx context.Context) ([]Record, error)

	// DeleteByEmployee removes an employee's payroll rows (employee deletion cascade)
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
