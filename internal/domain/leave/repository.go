package leave

import (
	"context"
	"time"
)

// BalanceRepository stores yearly balances, unique per
// (employee, year).
type BalanceRepository interface {
	GetByEmployeeAndYear(ctx context.Context, employeeID string, year int) (*Balance, error)
	// ListExpirable returns balances still holding carried-forward days
	// whose expiry date is at or before the cutoff.
	ListExpirable(ctx context.Context, cutoff time.Time) ([]*Balance, error)
	ListByYear(ctx context.Context, year int) ([]*Balance, error)
	Create(ctx context.Context, b *Balance) error
	Update(ctx context.Context, b *Balance) error
}

// RequestRepository stores leave requests. UpdateStatus is a
// conditional write on the expected current status so racing approvers
// cannot double-advance a request.
type RequestRepository interface {
	GetByID(ctx context.Context, id string) (*Request, error)
	// HasOverlapping reports whether a pending or approved request for
	// the employee intersects [start, end].
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Request, error)
	ListByApprover(ctx context.Context, approverID string) ([]*Request, error)
	Create(ctx context.Context, req *Request) error
	UpdateStatus(ctx context.Context, req *Request, expected RequestStatus) error
	SoftDelete(ctx context.Context, id string) error
}
