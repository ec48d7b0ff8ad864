package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/approval"
	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
)

type overtimeService struct {
	requests  approval.OvertimeRepository
	employees employee.Repository
	clk       clock.Clock
}

func NewOvertimeService(requests approval.OvertimeRepository, employees employee.Repository, clk clock.Clock) approval.OvertimeService {
	return &overtimeService{requests: requests, employees: employees, clk: clk}
}

func (s *overtimeService) Submit(ctx context.Context, employeeID string, req *approval.CreateOvertimeRequest) (*approval.OvertimeRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !emp.IsActive() {
		return nil, employee.ErrEmployeeInactive
	}

	date, _ := time.Parse(time.DateOnly, req.Date)
	date = clock.DateOf(date)

	if _, err := s.requests.GetActiveByEmployeeAndDate(ctx, employeeID, date); err == nil {
		return nil, approval.ErrDuplicateRequest
	} else if !errors.Is(err, approval.ErrRequestNotFound) {
		return nil, fmt.Errorf("failed to check existing overtime request: %w", err)
	}

	now := s.clk.Now()
	request := &approval.OvertimeRequest{
		ID:             uuid.NewString(),
		EmployeeID:     employeeID,
		Date:           date,
		EstimatedHours: req.EstimatedHours,
		Reason:         req.Reason,
		Trail:          approval.NewTrail(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create overtime request: %w", err)
	}

	slog.Info("overtime request submitted",
		"request_id", request.ID,
		"employee_id", employeeID,
		"date", req.Date,
		"estimated_hours", req.EstimatedHours.String(),
	)
	return request, nil
}

func (s *overtimeService) decide(ctx context.Context, requestID, actorID string, transition func(t *approval.Trail) error) (*approval.OvertimeRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.EmployeeID == actorID {
		return nil, approval.ErrSelfApproval
	}

	expected := request.Status
	if err := transition(&request.Trail); err != nil {
		return nil, err
	}
	request.UpdatedAt = s.clk.Now()

	if err := s.requests.UpdateStatus(ctx, request, expected); err != nil {
		return nil, fmt.Errorf("failed to update overtime request status: %w", err)
	}

	slog.Info("overtime request transitioned", "request_id", requestID, "actor_id", actorID, "status", request.Status)
	return request, nil
}

func (s *overtimeService) ApproveBySupervisor(ctx context.Context, requestID, actorID string, note *string) (*approval.OvertimeRequest, error) {
	return s.decide(ctx, requestID, actorID, func(t *approval.Trail) error {
		return t.ApproveBySupervisor(actorID, note, s.clk.Now())
	})
}

func (s *overtimeService) RejectBySupervisor(ctx context.Context, requestID, actorID string, note *string) (*approval.OvertimeRequest, error) {
	return s.decide(ctx, requestID, actorID, func(t *approval.Trail) error {
		return t.RejectBySupervisor(actorID, note, s.clk.Now())
	})
}

func (s *overtimeService) ApproveByHR(ctx context.Context, requestID, actorID string, note *string) (*approval.OvertimeRequest, error) {
	return s.decide(ctx, requestID, actorID, func(t *approval.Trail) error {
		return t.ApproveByHR(actorID, note, s.clk.Now())
	})
}

func (s *overtimeService) RejectByHR(ctx context.Context, requestID, actorID string, note *string) (*approval.OvertimeRequest, error) {
	return s.decide(ctx, requestID, actorID, func(t *approval.Trail) error {
		return t.RejectByHR(actorID, note, s.clk.Now())
	})
}

// RecordActualDuration stores the worked minutes once the approved
// overtime actually happened.
func (s *overtimeService) RecordActualDuration(ctx context.Context, requestID string, req *approval.ActualDurationRequest) (*approval.OvertimeRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != approval.StatusApproved {
		return nil, approval.ErrNotApproved
	}

	if err := s.requests.UpdateActualDuration(ctx, requestID, req.ActualMinutes); err != nil {
		return nil, fmt.Errorf("failed to record actual overtime duration: %w", err)
	}
	request.ActualMinutes = &req.ActualMinutes
	return request, nil
}

func (s *overtimeService) ListByEmployee(ctx context.Context, employeeID string) ([]*approval.OvertimeRequest, error) {
	return s.requests.ListByEmployee(ctx, employeeID)
}
