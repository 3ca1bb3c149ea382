package employee

import (
	"github.com/hadirin/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Branch     string `json:"branch"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}
	if validator.IsEmpty(r.Branch) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch",
			Message: "branch is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRequest carries the full employee profile; every field is required on
// update, matching the admin form.
type UpdateRequest struct {
	ID           string           `json:"-"`
	FullName     string           `json:"full_name"`
	Phone        string           `json:"phone"`
	Branch       string           `json:"branch"`
	Status       string           `json:"status"`
	DailyRate    *decimal.Decimal `json:"daily_rate"`
	Bonus        *decimal.Decimal `json:"bonus"`
	Compensation *decimal.Decimal `json:"compensation"`
	EmployeeType string           `json:"employee_type"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	}
	if validator.IsEmpty(r.Branch) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch",
			Message: "branch is required",
		})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'pending', 'approved' or 'rejected'",
		})
	}
	if r.DailyRate == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: "daily_rate is required",
		})
	} else if r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: "daily_rate must be non-negative",
		})
	}
	if r.Bonus == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus",
			Message: "bonus is required",
		})
	} else if r.Bonus.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus",
			Message: "bonus must be non-negative",
		})
	}
	if r.Compensation == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "compensation",
			Message: "compensation is required",
		})
	} else if r.Compensation.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "compensation",
			Message: "compensation must be non-negative",
		})
	}
	if validator.IsEmpty(r.EmployeeType) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_type",
			Message: "employee_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	FullName     string           `json:"full_name"`
	Phone        string           `json:"phone"`
	Branch       string           `json:"branch"`
	Status       string           `json:"status"`
	DailyRate    *decimal.Decimal `json:"daily_rate,omitempty"`
	Bonus        *decimal.Decimal `json:"bonus,omitempty"`
	Compensation *decimal.Decimal `json:"compensation,omitempty"`
	EmployeeType *string          `json:"employee_type,omitempty"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}
