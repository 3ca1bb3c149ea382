package payroll

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/hadirin/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirin/attendance-backend-go/internal/domain/employee"
	"github.com/hadirin/attendance-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	attendance.SessionRepository
	employee.EmployeeRepository
}

// round2 matches the precision sessions are stored with.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// Run implements payroll.PayrollService.
func (p *PayrollServiceImpl) Run(ctx context.Context, req payroll.RunPayrollRequest) ([]payroll.ReportLine, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	period, err := req.Period()
	if err != nil {
		return nil, err
	}

	employees, err := p.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	endOfMonth := period.IsEndOfMonth()
	daysInPeriod := period.Days()
	daysInMonth := period.DaysInMonth()

	// Every employee gets a row, including those with no closed sessions in
	// the period. A write failure aborts the run; rows already written stay.
	report := make([]payroll.ReportLine, 0, len(employees))
	for _, emp := range employees {
		sessions, err := p.SessionRepository.ListClosedByEmployeeBetween(ctx, emp.EmployeeID, period.Start, period.End)
		if err != nil {
			return nil, fmt.Errorf("failed to list sessions for %s: %w", emp.EmployeeID, err)
		}

		var totalHours, totalDays float64
		for _, s := range sessions {
			if s.TotalHours == nil {
				continue
			}
			totalHours += *s.TotalHours
			totalDays += payroll.DayCredit(*s.TotalHours)
		}
		totalHours = round2(totalHours)

		result := payroll.Compute(payroll.ComputeInput{
			DailyRate:       decimalOrZero(emp.DailyRate),
			BonusAmount:     decimalOrZero(emp.Bonus),
			Compensation:    decimalOrZero(emp.Compensation),
			TotalDaysWorked: totalDays,
			EndOfMonth:      endOfMonth,
			DaysInPeriod:    daysInPeriod,
			DaysInMonth:     daysInMonth,
		})

		if _, err := p.PayrollRepository.CreateRecord(ctx, payroll.Record{
			EmployeeID:       emp.EmployeeID,
			PeriodStart:      period.Start,
			PeriodEnd:        period.End,
			TotalDaysWorked:  totalDays,
			TotalHoursWorked: totalHours,
			Salary:           result.Salary,
			Bonus:            result.Bonus,
			Compensation:     result.Compensation,
			TotalPay:         result.TotalPay,
		}); err != nil {
			return nil, fmt.Errorf("failed to persist payroll record for %s: %w", emp.EmployeeID, err)
		}

		report = append(report, payroll.ReportLine{
			EmployeeID:        emp.EmployeeID,
			FullName:          emp.FullName,
			Branch:            emp.Branch,
			TotalHours:        totalHours,
			TotalDaysWorked:   totalDays,
			Salary:            result.Salary,
			Bonus:             result.Bonus,
			Compensation:      result.Compensation,
			TotalPay:          result.TotalPay,
			AbsenceDays:       result.AbsenceDays,
			TotalDaysInPeriod: daysInPeriod,
			TotalDaysInMonth:  daysInMonth,
		})
	}

	return report, nil
}

// ListRecords implements payroll.PayrollService.
func (p *PayrollServiceImpl) ListRecords(ctx context.Context) ([]payroll.RecordResponse, error) {
	records, err := p.PayrollRepository.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, payroll.RecordResponse{
			ID:               r.ID,
			EmployeeID:       r.EmployeeID,
			PeriodStart:      r.PeriodStart.Format("2006-01-02"),
			PeriodEnd:        r.PeriodEnd.Format("2006-01-02"),
			TotalDaysWorked:  r.TotalDaysWorked,
			TotalHoursWorked: r.TotalHoursWorked,
			Salary:           r.Salary,
			Bonus:            r.Bonus,
			Compensation:     r.Compensation,
			TotalPay:         r.TotalPay,
			CreatedAt:        r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return responses, nil
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	sessionRepo attendance.SessionRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:  payrollRepo,
		SessionRepository:  sessionRepo,
		EmployeeRepository: employeeRepo,
	}
}
