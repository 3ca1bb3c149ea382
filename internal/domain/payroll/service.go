package payroll

import "context"

// PayrollService defines business logic for payroll computation
type PayrollService interface {
	// Run computes pay for every employee over the requested period, persists
	// one Record per employee and returns the report. A persistence failure
	// partway aborts the run; rows already written stay written.
	Run(ctx context.Context, req RunPayrollRequest) ([]ReportLine, error)

	// ListRecords retrieves persisted payroll records (admin)
	ListRecords(ctx context.Context) ([]RecordResponse, error)
}
