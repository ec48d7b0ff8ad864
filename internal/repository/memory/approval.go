package memory

import (
	"context"
	"sync"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/approval"
)

type WFHRepository struct {
	mu       sync.RWMutex
	requests map[string]*approval.WFHRequest
}

func NewWFHRepository() *WFHRepository {
	return &WFHRepository{requests: make(map[string]*approval.WFHRequest)}
}

func (r *WFHRepository) Seed(requests ...*approval.WFHRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range requests {
		r.requests[req.ID] = req
	}
}

func (r *WFHRepository) GetByID(ctx context.Context, id string) (*approval.WFHRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok || req.DeletedAt != nil {
		return nil, approval.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *WFHRepository) GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*approval.WFHRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, req := range r.requests {
		if req.DeletedAt != nil || req.EmployeeID != employeeID || !req.Date.Equal(date) {
			continue
		}
		if req.Status.IsPending() || req.Status == approval.StatusApproved {
			cp := *req
			return &cp, nil
		}
	}
	return nil, approval.ErrRequestNotFound
}

func (r *WFHRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*approval.WFHRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*approval.WFHRequest, 0)
	for _, req := range r.requests {
		if req.DeletedAt == nil && req.EmployeeID == employeeID {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *WFHRepository) ListByStatus(ctx context.Context, status approval.RequestStatus) ([]*approval.WFHRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*approval.WFHRequest, 0)
	for _, req := range r.requests {
		if req.DeletedAt == nil && req.Status == status {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *WFHRepository) Create(ctx context.Context, req *approval.WFHRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *WFHRepository) UpdateStatus(ctx context.Context, req *approval.WFHRequest, expected approval.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.requests[req.ID]
	if !ok || existing.DeletedAt != nil {
		return approval.ErrInvalidTransition
	}
	if existing.Status != expected {
		return approval.ErrInvalidTransition
	}
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

type OvertimeRepository struct {
	mu       sync.RWMutex
	requests map[string]*approval.OvertimeRequest
}

func NewOvertimeRepository() *OvertimeRepository {
	return &OvertimeRepository{requests: make(map[string]*approval.OvertimeRequest)}
}

func (r *OvertimeRepository) Seed(requests ...*approval.OvertimeRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range requests {
		r.requests[req.ID] = req
	}
}

func (r *OvertimeRepository) GetByID(ctx context.Context, id string) (*approval.OvertimeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok || req.DeletedAt != nil {
		return nil, approval.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *OvertimeRepository) GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*approval.OvertimeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, req := range r.requests {
		if req.DeletedAt != nil || req.EmployeeID != employeeID || !req.Date.Equal(date) {
			continue
		}
		if req.Status.IsPending() || req.Status == approval.StatusApproved {
			cp := *req
			return &cp, nil
		}
	}
	return nil, approval.ErrRequestNotFound
}

func (r *OvertimeRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*approval.OvertimeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*approval.OvertimeRequest, 0)
	for _, req := range r.requests {
		if req.DeletedAt == nil && req.EmployeeID == employeeID {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *OvertimeRepository) ListByStatus(ctx context.Context, status approval.RequestStatus) ([]*approval.OvertimeRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*approval.OvertimeRequest, 0)
	for _, req := range r.requests {
		if req.DeletedAt == nil && req.Status == status {
			cp := *req
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *OvertimeRepository) Create(ctx context.Context, req *approval.OvertimeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *OvertimeRepository) UpdateStatus(ctx context.Context, req *approval.OvertimeRequest, expected approval.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.requests[req.ID]
	if !ok || existing.DeletedAt != nil {
		return approval.ErrInvalidTransition
	}
	if existing.Status != expected {
		return approval.ErrInvalidTransition
	}
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *OvertimeRepository) UpdateActualDuration(ctx context.Context, id string, actualMinutes int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok || req.DeletedAt != nil {
		return approval.ErrRequestNotFound
	}
	minutes := actualMinutes
	req.ActualMinutes = &minutes
	return nil
}
