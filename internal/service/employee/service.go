package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type service struct {
	employees   employee.Repository
	departments employee.DepartmentRepository
	positions   employee.PositionRepository
	histories   employee.HistoryRepository
	tx          database.Transactor
	clk         clock.Clock
}

func NewEmployeeService(
	employees employee.Repository,
	departments employee.DepartmentRepository,
	positions employee.PositionRepository,
	histories employee.HistoryRepository,
	tx database.Transactor,
	clk clock.Clock,
) employee.Service {
	return &service{
		employees:   employees,
		departments: departments,
		positions:   positions,
		histories:   histories,
		tx:          tx,
		clk:         clk,
	}
}

func (s *service) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *service) GetHistories(ctx context.Context, employeeID string) (*employee.Histories, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	contracts, err := s.histories.ListContracts(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contract history: %w", err)
	}
	salaries, err := s.histories.ListSalaries(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary history: %w", err)
	}
	jobs, err := s.histories.ListJobs(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job history: %w", err)
	}

	return &employee.Histories{
		Contracts: contracts,
		Salaries:  salaries,
		Jobs:      jobs,
	}, nil
}

// ChangeAssignment moves the employee to a new department and position.
// The open job-history row closes one day before the new row starts,
// and the employee record is updated in the same transaction.
func (s *service) ChangeAssignment(ctx context.Context, employeeID string, req *employee.ChangeAssignmentRequest) (*employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.departments.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}
	if _, err := s.positions.GetByID(ctx, req.PositionID); err != nil {
		return nil, err
	}

	effectiveFrom, _ := time.Parse(time.DateOnly, req.EffectiveFrom)
	effectiveFrom = clock.DateOf(effectiveFrom)
	now := s.clk.Now()

	row := &employee.JobHistory{
		ID:           uuid.NewString(),
		EmployeeID:   employeeID,
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		StartDate:    effectiveFrom,
		Notes:        req.Notes,
		CreatedAt:    now,
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.histories.CloseCurrentJob(ctx, employeeID, effectiveFrom.AddDate(0, 0, -1)); err != nil {
			return fmt.Errorf("failed to close current job history: %w", err)
		}
		if err := s.histories.AppendJob(ctx, row); err != nil {
			return fmt.Errorf("failed to append job history: %w", err)
		}

		emp.DepartmentID = req.DepartmentID
		emp.PositionID = req.PositionID
		emp.UpdatedAt = now
		if err := s.employees.Update(ctx, emp); err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Employee assignment changed",
		"employee_id", employeeID,
		"department_id", req.DepartmentID,
		"position_id", req.PositionID,
		"effective_from", req.EffectiveFrom)
	return emp, nil
}

func (s *service) ChangeSalary(ctx context.Context, employeeID string, req *employee.ChangeSalaryRequest) (*employee.SalaryHistory, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	effectiveFrom, _ := time.Parse(time.DateOnly, req.EffectiveFrom)
	effectiveFrom = clock.DateOf(effectiveFrom)

	row := &employee.SalaryHistory{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Amount:     req.Amount,
		StartDate:  effectiveFrom,
		Reason:     req.Reason,
		CreatedAt:  s.clk.Now(),
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.histories.CloseCurrentSalary(ctx, employeeID, effectiveFrom.AddDate(0, 0, -1)); err != nil {
			return fmt.Errorf("failed to close current salary history: %w", err)
		}
		if err := s.histories.AppendSalary(ctx, row); err != nil {
			return fmt.Errorf("failed to append salary history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Employee salary changed", "employee_id", employeeID, "effective_from", req.EffectiveFrom)
	return row, nil
}
