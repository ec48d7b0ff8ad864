package memory

import (
	"context"
	"sync"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/employee"
)

type PositionRepository struct {
	mu        sync.RWMutex
	positions map[string]*employee.Position
}

func NewPositionRepository() *PositionRepository {
	return &PositionRepository{positions: make(map[string]*employee.Position)}
}

func (r *PositionRepository) Seed(positions ...*employee.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range positions {
		r.positions[p.ID] = p
	}
}

func (r *PositionRepository) GetByID(ctx context.Context, id string) (*employee.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.positions[id]
	if !ok || p.DeletedAt != nil {
		return nil, employee.ErrPositionNotFound
	}
	cp := *p
	return &cp, nil
}

type HistoryRepository struct {
	mu        sync.RWMutex
	contracts []*employee.ContractHistory
	salaries  []*employee.SalaryHistory
	jobs      []*employee.JobHistory
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func (r *HistoryRepository) AppendContract(ctx context.Context, row *employee.ContractHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *row
	r.contracts = append(r.contracts, &cp)
	return nil
}

func (r *HistoryRepository) AppendSalary(ctx context.Context, row *employee.SalaryHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *row
	r.salaries = append(r.salaries, &cp)
	return nil
}

func (r *HistoryRepository) AppendJob(ctx context.Context, row *employee.JobHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *row
	r.jobs = append(r.jobs, &cp)
	return nil
}

func (r *HistoryRepository) CloseCurrentContract(ctx context.Context, employeeID string, endDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.contracts {
		if row.EmployeeID == employeeID && row.IsCurrent() {
			end := endDate
			row.EndDate = &end
		}
	}
	return nil
}

func (r *HistoryRepository) CloseCurrentSalary(ctx context.Context, employeeID string, endDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.salaries {
		if row.EmployeeID == employeeID && row.IsCurrent() {
			end := endDate
			row.EndDate = &end
		}
	}
	return nil
}

func (r *HistoryRepository) CloseCurrentJob(ctx context.Context, employeeID string, endDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.jobs {
		if row.EmployeeID == employeeID && row.IsCurrent() {
			end := endDate
			row.EndDate = &end
		}
	}
	return nil
}

func (r *HistoryRepository) ListContracts(ctx context.Context, employeeID string) ([]*employee.ContractHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*employee.ContractHistory, 0)
	for _, row := range r.contracts {
		if row.EmployeeID == employeeID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *HistoryRepository) ListSalaries(ctx context.Context, employeeID string) ([]*employee.SalaryHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*employee.SalaryHistory, 0)
	for _, row := range r.salaries {
		if row.EmployeeID == employeeID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *HistoryRepository) ListJobs(ctx context.Context, employeeID string) ([]*employee.JobHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*employee.JobHistory, 0)
	for _, row := range r.jobs {
		if row.EmployeeID == employeeID {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}
