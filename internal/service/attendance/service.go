package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hadirin/attendance-backend-go/internal/domain/attendance"
	"github.com/hadirin/attendance-backend-go/internal/domain/employee"
	"github.com/hadirin/attendance-backend-go/internal/domain/store"
	"github.com/hadirin/attendance-backend-go/internal/pkg/database"
	"github.com/hadirin/attendance-backend-go/internal/pkg/geo"
	"github.com/hadirin/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	attendance.SessionRepository
	employee.EmployeeRepository
	store.StoreRepository
	radiusDegrees float64
	now           func() time.Time
	runTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

// timeToString formats a timestamp for API responses.
func timeToString(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := timeToString(*t)
	return &formatted
}

// roundHours rounds a duration in hours to 2 decimal places. The result is
// stored with the session and never recomputed.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// Clock implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Clock(ctx context.Context, req attendance.ClockRequest) (attendance.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.ClockResponse{}, employee.ErrNotRegistered
		}
		return attendance.ClockResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}
	if emp.Status != employee.StatusApproved {
		return attendance.ClockResponse{}, employee.ErrNotApproved
	}

	branchStore, err := a.StoreRepository.GetByName(ctx, emp.Branch)
	if err != nil {
		if errors.Is(err, store.ErrStoreNotFound) {
			return attendance.ClockResponse{}, store.ErrNoStoreForBranch
		}
		return attendance.ClockResponse{}, fmt.Errorf("failed to resolve store for branch %q: %w", emp.Branch, err)
	}

	if !geo.WithinRadius(branchStore.Latitude, branchStore.Longitude, req.Latitude, req.Longitude, a.radiusDegrees) {
		return attendance.ClockResponse{}, attendance.ErrOutOfRange
	}

	now := a.now()

	// The open-session check and the subsequent write run in one transaction
	// with the open row locked, so racing clock events for the same employee
	// cannot both insert a clock-in.
	var resp attendance.ClockResponse
	err = a.runTx(ctx, func(txCtx context.Context) error {
		open, err := a.SessionRepository.GetOpenForUpdate(txCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to look up open session: %w", err)
		}

		if open == nil {
			session, err := a.SessionRepository.Create(txCtx, attendance.Session{
				EmployeeID: req.EmployeeID,
				ClockIn:    now,
				Latitude:   req.Latitude,
				Longitude:  req.Longitude,
			})
			if err != nil {
				return fmt.Errorf("failed to create session: %w", err)
			}

			resp = attendance.ClockResponse{
				Status:     attendance.ClockStatusIn,
				SessionID:  session.ID,
				EmployeeID: session.EmployeeID,
				ClockIn:    timeToString(session.ClockIn),
			}
			return nil
		}

		totalHours := roundHours(now.Sub(open.ClockIn))
		if err := a.SessionRepository.Close(txCtx, open.ID, now, totalHours); err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}

		clockOut := timeToString(now)
		resp = attendance.ClockResponse{
			Status:     attendance.ClockStatusOut,
			SessionID:  open.ID,
			EmployeeID: open.EmployeeID,
			ClockIn:    timeToString(open.ClockIn),
			ClockOut:   &clockOut,
			TotalHours: &totalHours,
		}
		return nil
	})
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	return resp, nil
}

// GetEmployeeSessions implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetEmployeeSessions(ctx context.Context, employeeID string) ([]attendance.SessionResponse, error) {
	if _, err := a.EmployeeRepository.GetByEmployeeID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}

	sessions, err := a.SessionRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return mapSessions(sessions), nil
}

// ListSessions implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListSessions(ctx context.Context) ([]attendance.SessionResponse, error) {
	sessions, err := a.SessionRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return mapSessions(sessions), nil
}

func mapSessions(sessions []attendance.Session) []attendance.SessionResponse {
	responses := make([]attendance.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		responses = append(responses, attendance.SessionResponse{
			ID:         s.ID,
			EmployeeID: s.EmployeeID,
			ClockIn:    timeToString(s.ClockIn),
			ClockOut:   timePtrToString(s.ClockOut),
			Latitude:   s.Latitude,
			Longitude:  s.Longitude,
			TotalHours: s.TotalHours,
		})
	}
	return responses
}

func NewAttendanceService(
	db *database.DB,
	sessionRepo attendance.SessionRepository,
	employeeRepo employee.EmployeeRepository,
	storeRepo store.StoreRepository,
	radiusDegrees float64,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		SessionRepository:  sessionRepo,
		EmployeeRepository: employeeRepo,
		StoreRepository:    storeRepo,
		radiusDegrees:      radiusDegrees,
		now:                time.Now,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}
