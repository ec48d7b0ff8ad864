package employee

import (
	"context"
	"time"
)

// Repository abstracts employee master data access. Reads exclude
// soft-deleted rows.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Employee, error)
	GetByIDs(ctx context.Context, ids []string) ([]*Employee, error)
	GetByAccountID(ctx context.Context, accountID string) (*Employee, error)
	Create(ctx context.Context, emp *Employee) error
	Update(ctx context.Context, emp *Employee) error
}

// DepartmentRepository serves the approval-chain walk.
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (*Department, error)
}

type PositionRepository interface {
	GetByID(ctx context.Context, id string) (*Position, error)
}

// HistoryRepository appends to the contract, salary, and job ledgers.
// CloseCurrent sets EndDate on the open row, if any, before a new row
// is appended.
type HistoryRepository interface {
	AppendContract(ctx context.Context, row *ContractHistory) error
	AppendSalary(ctx context.Context, row *SalaryHistory) error
	AppendJob(ctx context.Context, row *JobHistory) error
	CloseCurrentContract(ctx context.Context, employeeID string, endDate time.Time) error
	CloseCurrentSalary(ctx context.Context, employeeID string, endDate time.Time) error
	CloseCurrentJob(ctx context.Context, employeeID string, endDate time.Time) error
	ListContracts(ctx context.Context, employeeID string) ([]*ContractHistory, error)
	ListSalaries(ctx context.Context, employeeID string) ([]*SalaryHistory, error)
	ListJobs(ctx context.Context, employeeID string) ([]*JobHistory, error)
}
