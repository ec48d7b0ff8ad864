package leave

import (
	"context"
)

// BalanceEngine owns the yearly balance lifecycle.
type BalanceEngine interface {
	// EnsureYear creates the year's balance with the default quota if
	// missing, and returns it either way.
	EnsureYear(ctx context.Context, employeeID string, year int) (*Balance, error)
	Deduct(ctx context.Context, employeeID string, year int, days int) (*Balance, error)
	Reimburse(ctx context.Context, employeeID string, year int, days int) (*Balance, error)
	// RolloverToNextYear closes fromYear and opens fromYear+1: unused
	// days carry over up to half the annual quota, the remainder
	// expires, and the carried days get a six-month expiry date.
	RolloverToNextYear(ctx context.Context, employeeID string, fromYear int) (*Balance, error)
	// ExpireCarriedForward sweeps every balance whose carry-forward
	// window has closed. Safe to run repeatedly.
	ExpireCarriedForward(ctx context.Context) (int, error)
	GetBalance(ctx context.Context, employeeID string, year int) (*Balance, error)
}

// RequestService drives the chained leave approval workflow.
type RequestService interface {
	Submit(ctx context.Context, employeeID string, req *CreateLeaveRequest) (*Request, error)
	// Approve advances the chain when more approvers remain, or
	// finalizes and deducts the balance for deducting types.
	Approve(ctx context.Context, requestID, actorID string) (*Request, error)
	Reject(ctx context.Context, requestID, actorID string, reason string) (*Request, error)
	// Cancel withdraws a pending request, or reimburses the balance
	// when cancelling an approved deducting request.
	Cancel(ctx context.Context, requestID, employeeID string) error
	GetByID(ctx context.Context, id string) (*Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Request, error)
	ListByApprover(ctx context.Context, approverID string) ([]*Request, error)
}
