package employee

import (
	"context"
	"fmt"

	"github.com/hadirin/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirin/attendance-backend-go/internal/domain/employee"
	"github.com/hadirin/attendance-backend-go/internal/domain/payroll"
	"github.com/hadirin/attendance-backend-go/internal/pkg/database"
	"github.com/hadirin/attendance-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	attendance.SessionRepository
	payroll.PayrollRepository
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeID:   emp.EmployeeID,
		FullName:     emp.FullName,
		Phone:        emp.Phone,
		Branch:       emp.Branch,
		Status:       string(emp.Status),
		DailyRate:    emp.DailyRate,
		Bonus:        emp.Bonus,
		Compensation: emp.Compensation,
		EmployeeType: emp.EmployeeType,
		CreatedAt:    emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Register implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := e.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Branch:     req.Branch,
		Status:     employee.StatusPending,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

// ListBranches implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListBranches(ctx context.Context) ([]string, error) {
	branches, err := e.EmployeeRepository.ListBranches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := e.EmployeeRepository.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}
	return toResponse(updated), nil
}

// Delete implements employee.EmployeeService. Sessions and payroll rows go
// with the employee in one transaction.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return e.runTx(ctx, func(txCtx context.Context) error {
		if err := e.SessionRepository.DeleteByEmployee(txCtx, emp.EmployeeID); err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		if err := e.PayrollRepository.DeleteByEmployee(txCtx, emp.EmployeeID); err != nil {
			return fmt.Errorf("failed to delete payroll records: %w", err)
		}
		if err := e.EmployeeRepository.Delete(txCtx, emp.ID); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		return nil
	})
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	sessionRepo attendance.SessionRepository,
	payrollRepo payroll.PayrollRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		SessionRepository:  sessionRepo,
		PayrollRepository:  payrollRepo,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}
