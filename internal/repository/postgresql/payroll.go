package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hadirin/attendance-backend-go/internal/domain/payroll"
	"github.com/hadirin/attendance-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

// CreateRecord implements payroll.PayrollRepository.
func (r *payrollRepository) CreateRecord(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()
	query := `
		INSERT INTO payroll_records (
			id, employee_id, period_start, period_end,
			total_days_worked, total_hours_worked,
			salary, bonus, compensation, total_pay
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.PeriodStart,
		record.PeriodEnd,
		record.TotalDaysWorked,
		record.TotalHoursWorked,
		record.Salary,
		record.Bonus,
		record.Compensation,
		record.TotalPay,
	).Scan(&record.CreatedAt)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// ListRecords implements payroll.PayrollRepository.
func (r *payrollRepository) ListRecords(ctx context.Context) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, period_start, period_end,
			   total_days_worked, total_hours_worked,
			   salary, bonus, compensation, total_pay, created_at
		FROM payroll_records
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd,
			&rec.TotalDaysWorked, &rec.TotalHoursWorked,
			&rec.Salary, &rec.Bonus, &rec.Compensation, &rec.TotalPay, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// DeleteByEmployee implements payroll.PayrollRepository.
func (r *payrollRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete payroll records: %w", err)
	}
	return nil
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}
