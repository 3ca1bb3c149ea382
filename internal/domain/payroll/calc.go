package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Day-credit thresholds, in session hours.
const (
	halfDayHours = 5
	fullDayHours = 9
)

// MaxAbsenceForBonus is the absence ceiling for bonus eligibility on an
// end-of-month run. Bonus is all-or-nothing, never pro-rated.
const MaxAbsenceForBonus = 2

// DayCredit converts one session's hours into a fractional days-worked credit.
// A session of five hours or less earns nothing, even though it exists.
func DayCredit(hours float64) float64 {
	switch {
	case hours >= fullDayHours:
		return 1
	case hours > halfDayHours:
		return 0.5
	default:
		return 0
	}
}

// Period is an inclusive calendar date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days in the period, inclusive of both
// endpoints.
func (p Period) Days() int {
	start := dateOnly(p.Start)
	end := dateOnly(p.End)
	return int(end.Sub(start).Hours()/24) + 1
}

// DaysInMonth returns the number of days in the month of the period's end date.
func (p Period) DaysInMonth() int {
	// Day zero of the next month is the last day of this one.
	return time.Date(p.End.Year(), p.End.Month()+1, 0, 0, 0, 0, 0, p.End.Location()).Day()
}

// IsEndOfMonth reports whether the period ends on the last calendar day of its
// month. Only such a close-out run evaluates bonus eligibility.
func (p Period) IsEndOfMonth() bool {
	return p.End.Day() == p.DaysInMonth()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeInput carries one employee's payroll figures plus their aggregated
// attendance over the period. Nil monetary fields have already been
// normalized to zero by the caller.
type ComputeInput struct {
	DailyRate       decimal.Decimal
	BonusAmount     decimal.Decimal
	Compensation    decimal.Decimal
	TotalDaysWorked float64
	EndOfMonth      bool
	DaysInPeriod    int
	DaysInMonth     int
}

// PeriodResult is the computed pay for one employee over one period.
type PeriodResult struct {
	Salary       decimal.Decimal
	Bonus        decimal.Decimal
	Compensation decimal.Decimal
	TotalPay     decimal.Decimal
	AbsenceDays  float64
}

// Compute applies the period pay rules. An end-of-month run evaluates absence
// against the whole month and pays bonus and compensation; a mid-period run
// evaluates absence against the queried range only and pays bare salary.
// Compensation is still reported on mid-period runs even though it is excluded
// from TotalPay; that asymmetry is observed product behavior, kept as is.
func Compute(in ComputeInput) PeriodResult {
	salary := in.DailyRate.Mul(decimal.NewFromFloat(in.TotalDaysWorked))

	var absenceDays float64
	bonus := decimal.Zero
	if in.EndOfMonth {
		absenceDays = float64(in.DaysInMonth) - in.TotalDaysWorked
		if absenceDays <= MaxAbsenceForBonus {
			bonus = in.BonusAmount
		}
	} else {
		absenceDays = float64(in.DaysInPeriod) - in.TotalDaysWorked
	}

	totalPay := salary
	if in.EndOfMonth {
		totalPay = salary.Add(bonus).Add(in.Compensation)
	}

	return PeriodResult{
		Salary:       salary,
		Bonus:        bonus,
		Compensation: in.Compensation,
		TotalPay:     totalPay,
		AbsenceDays:  absenceDays,
	}
}
