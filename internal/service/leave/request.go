package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/approval"
	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/domain/holiday"
	"github.com/akademika/hris-backend-go/internal/domain/leave"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type requestService struct {
	requests  leave.RequestRepository
	engine    leave.BalanceEngine
	chain     approval.ChainResolver
	employees employee.Repository
	oracle    holiday.Oracle
	tx        database.Transactor
	clk       clock.Clock
}

func NewRequestService(
	requests leave.RequestRepository,
	engine leave.BalanceEngine,
	chain approval.ChainResolver,
	employees employee.Repository,
	oracle holiday.Oracle,
	tx database.Transactor,
	clk clock.Clock,
) leave.RequestService {
	return &requestService{
		requests:  requests,
		engine:    engine,
		chain:     chain,
		employees: employees,
		oracle:    oracle,
		tx:        tx,
		clk:       clk,
	}
}

func (s *requestService) Submit(ctx context.Context, employeeID string, req *leave.CreateLeaveRequest) (*leave.Request, error) {
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

	start, _ := time.Parse(time.DateOnly, req.StartDate)
	end, _ := time.Parse(time.DateOnly, req.EndDate)
	start = clock.DateOf(start)
	end = clock.DateOf(end)

	overlapping, err := s.requests.HasOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if overlapping {
		return nil, leave.ErrOverlappingRequest
	}

	totalDays, err := s.countLeaveDays(ctx, start, end)
	if err != nil {
		return nil, err
	}

	leaveType := leave.Type(req.Type)
	if leaveType.DeductsFromBalance() {
		balance, err := s.engine.EnsureYear(ctx, employeeID, start.Year())
		if err != nil {
			return nil, err
		}
		if balance.Balance < totalDays {
			return nil, leave.ErrInsufficientBalance
		}
	}

	chain, err := s.chain.ResolveChain(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	request := &leave.Request{
		ID:                uuid.NewString(),
		EmployeeID:        employeeID,
		Type:              leaveType,
		StartDate:         start,
		EndDate:           end,
		TotalDays:         totalDays,
		Reason:            req.Reason,
		Status:            leave.RequestStatusPending,
		CurrentApproverID: &chain[0],
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("leave request submitted",
		"request_id", request.ID,
		"employee_id", employeeID,
		"type", req.Type,
		"days", totalDays,
		"current_approver", chain[0],
	)
	return request, nil
}

// countLeaveDays counts the calendar days in the range, skipping
// active holidays so collective leave and national holidays do not
// consume balance.
func (s *requestService) countLeaveDays(ctx context.Context, start, end time.Time) (int, error) {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		h, err := s.oracle.IsHoliday(ctx, d)
		if err != nil {
			return 0, fmt.Errorf("failed to check holiday: %w", err)
		}
		if h == nil {
			days++
		}
	}
	if days == 0 {
		days = 1
	}
	return days, nil
}

// Approve advances the approval chain by one step. Only the request's
// current approver may act. Approval by the last chain member finalizes
// the request and, for deducting types, consumes balance in the same
// transaction.
func (s *requestService) Approve(ctx context.Context, requestID, actorID string) (*leave.Request, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != leave.RequestStatusPending {
		return nil, leave.ErrInvalidTransition
	}
	if request.CurrentApproverID == nil || *request.CurrentApproverID != actorID {
		return nil, approval.ErrNotCurrentApprover
	}

	chain, err := s.chain.ResolveChain(ctx, request.EmployeeID)
	if err != nil {
		return nil, err
	}

	next := nextApprover(chain, actorID)
	now := s.clk.Now()

	if next != nil {
		request.CurrentApproverID = next
		request.UpdatedAt = now
		if err := s.requests.UpdateStatus(ctx, request, leave.RequestStatusPending); err != nil {
			return nil, fmt.Errorf("failed to advance approval chain: %w", err)
		}
		slog.Info("leave request advanced", "request_id", requestID, "next_approver", *next)
		return request, nil
	}

	request.Status = leave.RequestStatusApproved
	request.CurrentApproverID = nil
	request.ApprovedBy = &actorID
	request.ApprovedAt = &now
	request.UpdatedAt = now

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.requests.UpdateStatus(txCtx, request, leave.RequestStatusPending); err != nil {
			return fmt.Errorf("failed to finalize leave request: %w", err)
		}
		if request.Type.DeductsFromBalance() {
			if _, err := s.engine.Deduct(txCtx, request.EmployeeID, request.StartDate.Year(), request.TotalDays); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("leave request approved", "request_id", requestID, "approved_by", actorID, "days", request.TotalDays)
	return request, nil
}

// nextApprover returns the chain entry after the actor, or nil when the
// actor is the last (or is no longer part of the chain).
func nextApprover(chain []string, actorID string) *string {
	for i, id := range chain {
		if id == actorID && i+1 < len(chain) {
			return &chain[i+1]
		}
	}
	return nil
}

// Reject short-circuits the chain: any chain member may reject a
// pending request outright.
func (s *requestService) Reject(ctx context.Context, requestID, actorID string, reason string) (*leave.Request, error) {
	rejectReq := &leave.RejectLeaveRequest{Reason: reason}
	if err := rejectReq.Validate(); err != nil {
		return nil, err
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != leave.RequestStatusPending {
		return nil, leave.ErrInvalidTransition
	}

	chain, err := s.chain.ResolveChain(ctx, request.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !contains(chain, actorID) {
		return nil, approval.ErrNotCurrentApprover
	}

	now := s.clk.Now()
	request.Status = leave.RequestStatusRejected
	request.CurrentApproverID = nil
	request.RejectedBy = &actorID
	request.RejectionReason = &reason
	request.UpdatedAt = now

	if err := s.requests.UpdateStatus(ctx, request, leave.RequestStatusPending); err != nil {
		return nil, fmt.Errorf("failed to reject leave request: %w", err)
	}

	slog.Info("leave request rejected", "request_id", requestID, "rejected_by", actorID)
	return request, nil
}

func contains(chain []string, id string) bool {
	for _, entry := range chain {
		if entry == id {
			return true
		}
	}
	return false
}

// Cancel withdraws the employee's own request. A pending request is
// simply closed; an approved deducting request gets its days back in
// the same transaction.
func (s *requestService) Cancel(ctx context.Context, requestID, employeeID string) error {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.EmployeeID != employeeID {
		return leave.ErrRequestNotFound
	}

	switch request.Status {
	case leave.RequestStatusPending:
		request.Status = leave.RequestStatusCancelled
		request.CurrentApproverID = nil
		request.UpdatedAt = s.clk.Now()
		if err := s.requests.UpdateStatus(ctx, request, leave.RequestStatusPending); err != nil {
			return fmt.Errorf("failed to cancel leave request: %w", err)
		}
		if err := s.requests.SoftDelete(ctx, requestID); err != nil {
			return fmt.Errorf("failed to delete cancelled request: %w", err)
		}
	case leave.RequestStatusApproved:
		request.Status = leave.RequestStatusCancelled
		request.UpdatedAt = s.clk.Now()
		err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
			if err := s.requests.UpdateStatus(txCtx, request, leave.RequestStatusApproved); err != nil {
				return fmt.Errorf("failed to cancel approved request: %w", err)
			}
			if request.Type.DeductsFromBalance() {
				if _, err := s.engine.Reimburse(txCtx, request.EmployeeID, request.StartDate.Year(), request.TotalDays); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	default:
		return leave.ErrInvalidTransition
	}

	slog.Info("leave request cancelled", "request_id", requestID, "employee_id", employeeID)
	return nil
}

func (s *requestService) GetByID(ctx context.Context, id string) (*leave.Request, error) {
	return s.requests.GetByID(ctx, id)
}

func (s *requestService) ListByEmployee(ctx context.Context, employeeID string) ([]*leave.Request, error) {
	return s.requests.ListByEmployee(ctx, employeeID)
}

func (s *requestService) ListByApprover(ctx context.Context, approverID string) ([]*leave.Request, error) {
	return s.requests.ListByApprover(ctx, approverID)
}
