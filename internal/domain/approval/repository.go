package approval

import (
	"context"
	"time"
)

// WFHRepository stores work-from-home requests. UpdateStatus performs a
// conditional write: the row is only updated when its stored status
// still equals the trail's previous state, so two approvers cannot race
// the same transition.
type WFHRepository interface {
	GetByID(ctx context.Context, id string) (*WFHRequest, error)
	// GetActiveByEmployeeAndDate returns a pending or approved request
	// for the date, or ErrRequestNotFound.
	GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*WFHRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*WFHRequest, error)
	ListByStatus(ctx context.Context, status RequestStatus) ([]*WFHRequest, error)
	Create(ctx context.Context, req *WFHRequest) error
	UpdateStatus(ctx context.Context, req *WFHRequest, expected RequestStatus) error
}

type OvertimeRepository interface {
	GetByID(ctx context.Context, id string) (*OvertimeRequest, error)
	GetActiveByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*OvertimeRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*OvertimeRequest, error)
	ListByStatus(ctx context.Context, status RequestStatus) ([]*OvertimeRequest, error)
	Create(ctx context.Context, req *OvertimeRequest) error
	UpdateStatus(ctx context.Context, req *OvertimeRequest, expected RequestStatus) error
	UpdateActualDuration(ctx context.Context, id string, actualMinutes int) error
}
