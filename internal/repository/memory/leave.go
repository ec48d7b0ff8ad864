package memory

import (
	"context"
	"sync"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/leave"
)

type LeaveBalanceRepository struct {
	mu       sync.RWMutex
	balances map[string]*leave.Balance
}

func NewLeaveBalanceRepository() *LeaveBalanceRepository {
	return &LeaveBalanceRepository{balances: make(map[string]*leave.Balance)}
}

func (r *LeaveBalanceRepository) Seed(balances ...*leave.Balance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range balances {
		r.balances[b.ID] = b
	}
}

func (r *LeaveBalanceRepository) GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (*leave.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.balances {
		if b.EmployeeID == employeeID && b.Year == year {
			cp := *b
			return &cp, nil
		}
	}
	return nil, leave.ErrBalanceNotFound
}

func (r *LeaveBalanceRepository) ListExpirable(ctx context.Context, cutoff time.Time) ([]*leave.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*leave.Balance, 0)
	for _, b := range r.balances {
		if b.CarriedForward > 0 && b.CarriedForwardExpiryDate != nil && !b.CarriedForwardExpiryDate.After(cutoff) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *LeaveBalanceRepository) ListByYear(ctx context.Context, year int) ([]*leave.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*leave.Balance, 0)
	for _, b := range r.balances {
		if b.Year == year {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *LeaveBalanceRepository) Create(ctx context.Context, b *leave.Balance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.balances {
		if existing.EmployeeID == b.EmployeeID && existing.Year == b.Year {
			return leave.ErrBalanceAlreadyExists
		}
	}
	cp := *b
	r.balances[b.ID] = &cp
	return nil
}

func (r *LeaveBalanceRepository) Update(ctx context.Context, b *leave.Balance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.balances[b.ID]; !ok {
		return leave.ErrBalanceNotFound
	}
	cp := *b
	r.balances[b.ID] = &cp
	return nil
}

type LeaveRequestRepository struct {
	mu       sync.RWMutex
	requests map[string]*leave.Request
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{requests: make(map[string]*leave.Request)}
}

func (r *LeaveRequestRepository) Seed(requests ...*leave.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range requests {
		r.requests[req.ID] = req
	}
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string) (*leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok || req.DeletedAt != nil {
		return nil, leave.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *LeaveRequestRepository) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, req := range r.requests {
		if req.DeletedAt != nil || req.EmployeeID != employeeID {
			continue
		}
		if req.Status != leave.RequestStatusPending && req.Status != leave.RequestStatusApproved {
			continue
		}
		if !req.StartDate.After(end) && !req.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (r *LeaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*leave.Request, 0)
	for _, req := range r.requests {
		if req.DeletedAt == nil && req.EmployeeID == employeeID {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *LeaveRequestRepository) ListByApprover(ctx context.Context, approverID string) ([]*leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*leave.Request, 0)
	for _, req := range r.requests {
		if req.DeletedAt != nil || req.Status != leave.RequestStatusPending {
			continue
		}
		if req.CurrentApproverID != nil && *req.CurrentApproverID == approverID {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *LeaveRequestRepository) Create(ctx context.Context, req *leave.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *LeaveRequestRepository) UpdateStatus(ctx context.Context, req *leave.Request, expected leave.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.requests[req.ID]
	if !ok || existing.DeletedAt != nil {
		return leave.ErrInvalidTransition
	}
	if existing.Status != expected {
		return leave.ErrInvalidTransition
	}
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *LeaveRequestRepository) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.DeletedAt != nil {
		return leave.ErrRequestNotFound
	}
	now := time.Now()
	req.DeletedAt = &now
	return nil
}
