package employee

import "context"

// EmployeeService defines business logic for employee directory operations
type EmployeeService interface {
	// Register creates a pending employee awaiting admin approval
	Register(ctx context.Context, req RegisterRequest) (EmployeeResponse, error)

	// Get retrieves one employee by external id
	Get(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// List retrieves all employees
	List(ctx context.Context) ([]EmployeeResponse, error)

	// ListBranches retrieves distinct branch names
	ListBranches(ctx context.Context) ([]string, error)

	// Update replaces an employee's profile and payroll figures (admin)
	Update(ctx context.Context, req UpdateRequest) (EmployeeResponse, error)

	// Delete removes an employee together with their sessions and payroll rows (admin)
	Delete(ctx context.Context, id string) error
}
