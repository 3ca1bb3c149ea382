package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadirin/attendance-backend-go/internal/domain/payroll"
)

func TestPayrollRepository_CreateRecord(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	record := payroll.Record{
		EmployeeID:       "EMP-1",
		PeriodStart:      start,
		PeriodEnd:        end,
		TotalDaysWorked:  29,
		TotalHoursWorked: 261,
		Salary:           decimal.NewFromInt(2900),
		Bonus:            decimal.NewFromInt(50),
		Compensation:     decimal.NewFromInt(20),
		TotalPay:         decimal.NewFromInt(2970),
	}

	mock.ExpectQuery(`INSERT INTO payroll_records`).
		WithArgs(
			pgxmock.AnyArg(), "EMP-1", start, end,
			29.0, 261.0,
			record.Salary, record.Bonus, record.Compensation, record.TotalPay,
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	created, err := repo.CreateRecord(context.Background(), record)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepository_CreateRecord_InsertFails(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	mock.ExpectQuery(`INSERT INTO payroll_records`).
		WillReturnError(errors.New("relation does not exist"))

	_, err := repo.CreateRecord(context.Background(), payroll.Record{EmployeeID: "EMP-1"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepository_ListRecords(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{
		"id", "employee_id", "period_start", "period_end",
		"total_days_worked", "total_hours_worked",
		"salary", "bonus", "compensation", "total_pay", "created_at",
	}).AddRow(
		"record-1", "EMP-1", start, end,
		29.0, 261.0,
		"2900", "50", "20", "2970", createdAt,
	)

	mock.ExpectQuery(`FROM payroll_records\s+ORDER BY created_at DESC`).
		WillReturnRows(rows)

	records, err := repo.ListRecords(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "record-1", records[0].ID)
	assert.True(t, records[0].TotalPay.Equal(decimal.NewFromInt(2970)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollRepository_DeleteByEmployee(t *testing.T) {
	t.Parallel()
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	mock.ExpectExec(`DELETE FROM payroll_records WHERE employee_id = \$1`).
		WithArgs("EMP-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	err := repo.DeleteByEmployee(context.Background(), "EMP-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
