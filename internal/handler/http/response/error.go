package response

import (
	"errors"
	"net/http"

	"github.com/hadirin/attendance-backend-go/internal/domain/admin"
	"github.com/hadirin/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirin/attendance-backend-go/internal/domain/employee"
	"github.com/hadirin/attendance-backend-go/internal/domain/payroll"
	"github.com/hadirin/attendance-backend-go/internal/domain/store"
	"github.com/hadirin/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAlreadyRegistered):
		Conflict(w, "Employee ID already registered")
	case errors.Is(err, employee.ErrNotRegistered):
		Forbidden(w, "Employee is not registered")
	case errors.Is(err, employee.ErrNotApproved):
		Forbidden(w, "Employee is not approved")

	// Store domain errors
	case errors.Is(err, store.ErrNoStoreForBranch):
		NotFound(w, "No store found for employee branch")
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrOutOfRange):
		Forbidden(w, "Location is outside the allowed clock range")
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Session not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Admin domain errors
	case errors.Is(err, admin.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, admin.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, admin.ErrUsernameTaken):
		Conflict(w, "Username already exists")
	case errors.Is(err, admin.ErrAdminNotFound):
		NotFound(w, "Admin not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
