package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create inserts a new employee with status pending
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByEmployeeID retrieves an employee by the caller-supplied external id
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// GetByID retrieves an employee by internal id
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees
	List(ctx context.Context) ([]Employee, error)

	// ListBranches retrieves the distinct branch names in use
	ListBranches(ctx context.Context) ([]string, error)

	// Update replaces the mutable employee fields
	Update(ctx context.Context, req UpdateRequest) error

	// Delete removes an employee row; related rows are removed by the service
	Delete(ctx context.Context, id string) error
}
