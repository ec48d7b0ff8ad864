// Package memory holds map-backed repository implementations used by
// service tests. They honor the same sentinel-error contracts as the
// postgresql implementations, including conditional status writes.
package memory

import (
	"context"
	"sync"

	"github.com/akademika/hris-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]*employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]*employee.Employee)}
}

func (r *EmployeeRepository) Seed(emps ...*employee.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, emp := range emps {
		r.employees[emp.ID] = emp
	}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	emp, ok := r.employees[id]
	if !ok || emp.DeletedAt != nil {
		return nil, employee.ErrEmployeeNotFound
	}
	cp := *emp
	return &cp, nil
}

func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []string) ([]*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*employee.Employee, 0, len(ids))
	for _, id := range ids {
		if emp, ok := r.employees[id]; ok && emp.DeletedAt == nil {
			cp := *emp
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *EmployeeRepository) GetByAccountID(ctx context.Context, accountID string) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, emp := range r.employees {
		if emp.AccountID != nil && *emp.AccountID == accountID && emp.DeletedAt == nil {
			cp := *emp
			return &cp, nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *emp
	r.employees[emp.ID] = &cp
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	cp := *emp
	r.employees[emp.ID] = &cp
	return nil
}

type DepartmentRepository struct {
	mu          sync.RWMutex
	departments map[string]*employee.Department
}

func NewDepartmentRepository() *DepartmentRepository {
	return &DepartmentRepository{departments: make(map[string]*employee.Department)}
}

func (r *DepartmentRepository) Seed(depts ...*employee.Department) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range depts {
		r.departments[d.ID] = d
	}
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id string) (*employee.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.departments[id]
	if !ok || d.DeletedAt != nil {
		return nil, employee.ErrDepartmentNotFound
	}
	cp := *d
	return &cp, nil
}
