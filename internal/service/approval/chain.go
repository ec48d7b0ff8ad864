package approval

import (
	"context"
	"fmt"

	"github.com/akademika/hris-backend-go/internal/domain/approval"
	"github.com/akademika/hris-backend-go/internal/domain/employee"
)

type chainResolver struct {
	employees   employee.Repository
	departments employee.DepartmentRepository
}

func NewChainResolver(employees employee.Repository, departments employee.DepartmentRepository) approval.ChainResolver {
	return &chainResolver{employees: employees, departments: departments}
}

// ResolveChain orders the candidate approvers for an employee: the
// explicit backup approver first, then the employee's own department
// head, then each ancestor department's head up to the root. The
// employee never approves their own request and every id appears at
// most once. The parent walk carries a visited set so a corrupted
// department tree cannot loop forever.
func (r *chainResolver) ResolveChain(ctx context.Context, employeeID string) ([]string, error) {
	emp, err := r.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	var chain []string
	seen := make(map[string]bool)
	add := func(id *string) {
		if id == nil || *id == employeeID || seen[*id] {
			return
		}
		seen[*id] = true
		chain = append(chain, *id)
	}

	add(emp.ApproverID)

	visited := make(map[string]bool)
	deptID := emp.DepartmentID
	for deptID != "" && !visited[deptID] {
		visited[deptID] = true

		dept, err := r.departments.GetByID(ctx, deptID)
		if err != nil {
			return nil, fmt.Errorf("failed to load department %s: %w", deptID, err)
		}
		add(dept.HeadID)

		if dept.ParentID == nil {
			break
		}
		deptID = *dept.ParentID
	}

	if len(chain) == 0 {
		return nil, approval.ErrNoApproverAvailable
	}
	return chain, nil
}
