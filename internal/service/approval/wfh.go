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

type wfhService struct {
	requests  approval.WFHRepository
	employees employee.Repository
	clk       clock.Clock
}

func NewWFHService(requests approval.WFHRepository, employees employee.Repository, clk clock.Clock) approval.WFHService {
	return &wfhService{requests: requests, employees: employees, clk: clk}
}

func (s *wfhService) Submit(ctx context.Context, employeeID string, req *approval.CreateWFHRequest) (*approval.WFHRequest, error) {
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
		return nil, fmt.Errorf("failed to check existing WFH request: %w", err)
	}

	now := s.clk.Now()
	request := &approval.WFHRequest{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		Reason:     req.Reason,
		Trail:      approval.NewTrail(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create WFH request: %w", err)
	}

	slog.Info("WFH request submitted", "request_id", request.ID, "employee_id", employeeID, "date", req.Date)
	return request, nil
}

// decide applies one trail transition and persists it conditionally on
// the status the transition started from.
func (s *wfhService) decide(ctx context.Context, requestID, actorID string, transition func(t *approval.Trail) error) (*approval.WFHRequest, error) {
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
		return nil, fmt.Errorf("failed to update WFH request status: %w", err)
	}

	slog.Info("WFH request transitioned", "request_id", requestID, "actor_id", actorID, "status", request.Status)
	return request, nil
}

func (s *wfhService) ApproveBySupervisor(ctx context.Context, requestID, actorID string, note *string) (*approval.WFHRequest, error) {
	return s.decide(ctx, requestID, actorID, func(t *approval.Trail) error {
		return t.ApproveBySupervisor(actorID, note, s.clk.Now())
	})
}

func (s *wfhService) RejectBySupervisor(ctx context.Context, requestID, actorID string, note *string) (*approval.WFHRequest, error) {
	return s.decide(ctx, requestID, actorID, func(t *approval.Trail) error {
		return t.RejectBySupervisor(actorID, note, s.clk.Now())
	})
}

func (s *wfhService) ApproveByHR(ctx context.Context, requestID, actorID string, note *string) (*approval.WFHRequest, error) {
	return s.decide(ctx, requestID, actorID, func(t *approval.Trail) error {
		return t.ApproveByHR(actorID, note, s.clk.Now())
	})
}

func (s *wfhService) RejectByHR(ctx context.Context, requestID, actorID string, note *string) (*approval.WFHRequest, error) {
	return s.decide(ctx, requestID, actorID, func(t *approval.Trail) error {
		return t.RejectByHR(actorID, note, s.clk.Now())
	})
}

func (s *wfhService) HasApprovedForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	request, err := s.requests.GetActiveByEmployeeAndDate(ctx, employeeID, clock.DateOf(date))
	if err != nil {
		if errors.Is(err, approval.ErrRequestNotFound) {
			return false, nil
		}
		return false, err
	}
	return request.Status == approval.StatusApproved, nil
}

func (s *wfhService) ListByEmployee(ctx context.Context, employeeID string) ([]*approval.WFHRequest, error) {
	return s.requests.ListByEmployee(ctx, employeeID)
}
