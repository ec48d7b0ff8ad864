package employee

import "context"

type Service interface {
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetHistories(ctx context.Context, employeeID string) (*Histories, error)
	// ChangeAssignment closes the open job-history row and appends a new
	// one, updating the employee's department and position atomically.
	ChangeAssignment(ctx context.Context, employeeID string, req *ChangeAssignmentRequest) (*Employee, error)
	// ChangeSalary closes the open salary-history row and appends a new
	// one.
	ChangeSalary(ctx context.Context, employeeID string, req *ChangeSalaryRequest) (*SalaryHistory, error)
}
