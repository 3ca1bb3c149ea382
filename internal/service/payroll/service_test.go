package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadirin/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirin/attendance-backend-go/internal/domain/employee"
	"github.com/hadirin/attendance-backend-go/internal/domain/payroll"
)

// ===== FAKES =====

type fakePayrollRepo struct {
	records   []payroll.Record
	failAfter int // fail the insert at this index, -1 disables
}

func (f *fakePayrollRepo) CreateRecord(ctx context.Context, r payroll.Record) (payroll.Record, error) {
	if f.failAfter >= 0 && len(f.records) == f.failAfter {
		return payroll.Record{}, errors.New("insert failed")
	}
	r.ID = "record"
	r.CreatedAt = time.Now()
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakePayrollRepo) ListRecords(ctx context.Context) ([]payroll.Record, error) {
	return f.records, nil
}

func (f *fakePayrollRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return nil
}

type fakeSessionRepo struct {
	byEmployee map[string][]attendance.Session
}

func (f *fakeSessionRepo) Create(ctx context.Context, s attendance.Session) (attendance.Session, error) {
	return s, nil
}

func (f *fakeSessionRepo) GetOpenForUpdate(ctx context.Context, employeeID string) (*attendance.Session, error) {
	return nil, nil
}

func (f *fakeSessionRepo) Close(ctx context.Context, sessionID string, clockOut time.Time, totalHours float64) error {
	return nil
}

func (f *fakeSessionRepo) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Session, error) {
	return f.byEmployee[employeeID], nil
}

func (f *fakeSessionRepo) ListClosedByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Session, error) {
	return f.byEmployee[employeeID], nil
}

func (f *fakeSessionRepo) ListAll(ctx context.Context) ([]attendance.Session, error) {
	return nil, nil
}

func (f *fakeSessionRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return nil
}

type fakeEmployeeRepo struct {
	list []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.list, nil
}

func (f *fakeEmployeeRepo) ListBranches(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

// ===== HELPERS =====

func paidEmployee(employeeID string, rate, bonus, comp int64) employee.Employee {
	r := decimal.NewFromInt(rate)
	b := decimal.NewFromInt(bonus)
	c := decimal.NewFromInt(comp)
	return employee.Employee{
		ID:           "id-" + employeeID,
		EmployeeID:   employeeID,
		FullName:     "Employee " + employeeID,
		Branch:       "Jakarta",
		Status:       employee.StatusApproved,
		DailyRate:    &r,
		Bonus:        &b,
		Compensation: &c,
	}
}

func closedSession(hours float64) attendance.Session {
	in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	out := in.Add(time.Duration(hours * float64(time.Hour)))
	return attendance.Session{ClockIn: in, ClockOut: &out, TotalHours: &hours}
}

func repeatSessions(hours float64, n int) []attendance.Session {
	out := make([]attendance.Session, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, closedSession(hours))
	}
	return out
}

// ===== RUN TESTS =====

func TestRun_EndOfMonthWithBonus(t *testing.T) {
	t.Parallel()
	// March 2025: 31 days. 29 full-day sessions leaves 2 absence days, so the
	// bonus survives and compensation pays out.
	payrollRepo := &fakePayrollRepo{failAfter: -1}
	sessionRepo := &fakeSessionRepo{byEmployee: map[string][]attendance.Session{
		"EMP-1": repeatSessions(9, 29),
	}}
	employeeRepo := &fakeEmployeeRepo{list: []employee.Employee{
		paidEmployee("EMP-1", 100, 50, 20),
	}}
	svc := NewPayrollService(payrollRepo, sessionRepo, employeeRepo)

	report, err := svc.Run(context.Background(), payroll.RunPayrollRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})

	require.NoError(t, err)
	require.Len(t, report, 1)
	line := report[0]
	assert.Equal(t, float64(29), line.TotalDaysWorked)
	assert.Equal(t, float64(2), line.AbsenceDays)
	assert.True(t, line.Salary.Equal(decimal.NewFromInt(2900)), "salary = %s", line.Salary)
	assert.True(t, line.Bonus.Equal(decimal.NewFromInt(50)), "bonus = %s", line.Bonus)
	assert.True(t, line.TotalPay.Equal(decimal.NewFromInt(2970)), "total = %s", line.TotalPay)
	assert.Equal(t, 31, line.TotalDaysInMonth)
	require.Len(t, payrollRepo.records, 1)
	assert.True(t, payrollRepo.records[0].TotalPay.Equal(decimal.NewFromInt(2970)))
}

func TestRun_EndOfMonthBonusForfeited(t *testing.T) {
	t.Parallel()
	// 28 worked days in a 31-day month leaves 3 absences, over the ceiling.
	// Compensation still pays; only the bonus is lost.
	payrollRepo := &fakePayrollRepo{failAfter: -1}
	sessionRepo := &fakeSessionRepo{byEmployee: map[string][]attendance.Session{
		"EMP-1": repeatSessions(9, 28),
	}}
	employeeRepo := &fakeEmployeeRepo{list: []employee.Employee{
		paidEmployee("EMP-1", 100, 50, 20),
	}}
	svc := NewPayrollService(payrollRepo, sessionRepo, employeeRepo)

	report, err := svc.Run(context.Background(), payroll.RunPayrollRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})

	require.NoError(t, err)
	line := report[0]
	assert.Equal(t, float64(3), line.AbsenceDays)
	assert.True(t, line.Bonus.IsZero())
	assert.True(t, line.TotalPay.Equal(decimal.NewFromInt(2820)), "total = %s", line.TotalPay)
}

func TestRun_MidPeriodPaysBareSalary(t *testing.T) {
	t.Parallel()
	// Ends mid-month: salary only, absence counted against the queried range.
	payrollRepo := &fakePayrollRepo{failAfter: -1}
	sessionRepo := &fakeSessionRepo{byEmployee: map[string][]attendance.Session{
		"EMP-1": repeatSessions(9, 10),
	}}
	employeeRepo := &fakeEmployeeRepo{list: []employee.Employee{
		paidEmployee("EMP-1", 100, 50, 20),
	}}
	svc := NewPayrollService(payrollRepo, sessionRepo, employeeRepo)

	report, err := svc.Run(context.Background(), payroll.RunPayrollRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-15",
	})

	require.NoError(t, err)
	line := report[0]
	assert.Equal(t, 15, line.TotalDaysInPeriod)
	assert.Equal(t, float64(5), line.AbsenceDays)
	assert.True(t, line.Bonus.IsZero())
	assert.True(t, line.TotalPay.Equal(decimal.NewFromInt(1000)), "total = %s", line.TotalPay)
	// Compensation is reported even though it is not paid mid-period
	assert.True(t, line.Compensation.Equal(decimal.NewFromInt(20)))
}

func TestRun_HalfDayCredit(t *testing.T) {
	t.Parallel()
	// Sessions between 5 and 9 hours earn half a day
	payrollRepo := &fakePayrollRepo{failAfter: -1}
	sessionRepo := &fakeSessionRepo{byEmployee: map[string][]attendance.Session{
		"EMP-1": {closedSession(6), closedSession(7.5), closedSession(9), closedSession(5)},
	}}
	employeeRepo := &fakeEmployeeRepo{list: []employee.Employee{
		paidEmployee("EMP-1", 100, 50, 20),
	}}
	svc := NewPayrollService(payrollRepo, sessionRepo, employeeRepo)

	report, err := svc.Run(context.Background(), payroll.RunPayrollRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-15",
	})

	require.NoError(t, err)
	line := report[0]
	// 0.5 + 0.5 + 1 + 0 = 2 days, 27.5 hours
	assert.Equal(t, float64(2), line.TotalDaysWorked)
	assert.Equal(t, 27.5, line.TotalHours)
	assert.True(t, line.Salary.Equal(decimal.NewFromInt(200)))
}

func TestRun_EmployeeWithNoSessionsGetsZeroRow(t *testing.T) {
	t.Parallel()
	payrollRepo := &fakePayrollRepo{failAfter: -1}
	sessionRepo := &fakeSessionRepo{byEmployee: map[string][]attendance.Session{}}
	employeeRepo := &fakeEmployeeRepo{list: []employee.Employee{
		paidEmployee("EMP-1", 100, 50, 20),
	}}
	svc := NewPayrollService(payrollRepo, sessionRepo, employeeRepo)

	report, err := svc.Run(context.Background(), payroll.RunPayrollRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})

	require.NoError(t, err)
	require.Len(t, report, 1)
	line := report[0]
	assert.Zero(t, line.TotalDaysWorked)
	assert.True(t, line.Salary.IsZero())
	assert.Equal(t, float64(31), line.AbsenceDays)
	assert.True(t, line.Bonus.IsZero())
	require.Len(t, payrollRepo.records, 1)
}

func TestRun_NilRatesTreatedAsZero(t *testing.T) {
	t.Parallel()
	payrollRepo := &fakePayrollRepo{failAfter: -1}
	sessionRepo := &fakeSessionRepo{byEmployee: map[string][]attendance.Session{
		"EMP-1": repeatSessions(9, 30),
	}}
	emp := paidEmployee("EMP-1", 0, 0, 0)
	emp.DailyRate = nil
	emp.Bonus = nil
	emp.Compensation = nil
	employeeRepo := &fakeEmployeeRepo{list: []employee.Employee{emp}}
	svc := NewPayrollService(payrollRepo, sessionRepo, employeeRepo)

	report, err := svc.Run(context.Background(), payroll.RunPayrollRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})

	require.NoError(t, err)
	assert.True(t, report[0].TotalPay.IsZero())
}

func TestRun_SecondRunAppendsRecords(t *testing.T) {
	t.Parallel()
	payrollRepo := &fakePayrollRepo{failAfter: -1}
	sessionRepo := &fakeSessionRepo{byEmployee: map[string][]attendance.Session{
		"EMP-1": repeatSessions(9, 10),
	}}
	employeeRepo := &fakeEmployeeRepo{list: []employee.Employee{
		paidEmployee("EMP-1", 100, 50, 20),
	}}
	svc := NewPayrollService(payrollRepo, sessionRepo, employeeRepo)
	req := payroll.RunPayrollRequest{StartDate: "2025-03-01", EndDate: "2025-03-15"}

	_, err := svc.Run(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Run(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, payrollRepo.records, 2)
}

func TestRun_PersistFailureAbortsRun(t *testing.T) {
	t.Parallel()
	// The second insert fails: the first row stays written, the run errors out
	payrollRepo := &fakePayrollRepo{failAfter: 1}
	sessionRepo := &fakeSessionRepo{byEmployee: map[string][]attendance.Session{}}
	employeeRepo := &fakeEmployeeRepo{list: []employee.Employee{
		paidEmployee("EMP-1", 100, 0, 0),
		paidEmployee("EMP-2", 100, 0, 0),
		paidEmployee("EMP-3", 100, 0, 0),
	}}
	svc := NewPayrollService(payrollRepo, sessionRepo, employeeRepo)

	_, err := svc.Run(context.Background(), payroll.RunPayrollRequest{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})

	assert.Error(t, err)
	assert.Len(t, payrollRepo.records, 1)
}

func TestRun_InvalidDates(t *testing.T) {
	t.Parallel()
	svc := NewPayrollService(&fakePayrollRepo{failAfter: -1}, &fakeSessionRepo{}, &fakeEmployeeRepo{})

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"garbage start", "not-a-date", "2025-03-31"},
		{"garbage end", "2025-03-01", "31/03/2025"},
		{"end before start", "2025-03-31", "2025-03-01"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Run(context.Background(), payroll.RunPayrollRequest{
				StartDate: tc.start,
				EndDate:   tc.end,
			})
			assert.Error(t, err)
		})
	}
}

func TestListRecords(t *testing.T) {
	t.Parallel()
	payrollRepo := &fakePayrollRepo{failAfter: -1, records: []payroll.Record{
		{
			ID:          "r1",
			EmployeeID:  "EMP-1",
			PeriodStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			Salary:      decimal.NewFromInt(2900),
			TotalPay:    decimal.NewFromInt(2970),
			CreatedAt:   time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewPayrollService(payrollRepo, &fakeSessionRepo{}, &fakeEmployeeRepo{})

	got, err := svc.ListRecords(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-03-01", got[0].PeriodStart)
	assert.Equal(t, "2025-03-31", got[0].PeriodEnd)
	assert.Equal(t, "2025-04-01 09:00:00", got[0].CreatedAt)
}
