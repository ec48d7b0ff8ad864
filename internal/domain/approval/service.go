package approval

import (
	"context"
	"time"
)

// ChainResolver produces the ordered, de-duplicated list of candidate
// approver ids for an employee: explicit backup approver, the
// employee's own department head, then each ancestor department head
// up to the root. The employee itself never appears in the chain.
type ChainResolver interface {
	ResolveChain(ctx context.Context, employeeID string) ([]string, error)
}

// WFHService drives the two-level WFH workflow.
type WFHService interface {
	Submit(ctx context.Context, employeeID string, req *CreateWFHRequest) (*WFHRequest, error)
	ApproveBySupervisor(ctx context.Context, requestID, actorID string, note *string) (*WFHRequest, error)
	RejectBySupervisor(ctx context.Context, requestID, actorID string, note *string) (*WFHRequest, error)
	ApproveByHR(ctx context.Context, requestID, actorID string, note *string) (*WFHRequest, error)
	RejectByHR(ctx context.Context, requestID, actorID string, note *string) (*WFHRequest, error)
	// HasApprovedForDate reports whether the employee holds an approved
	// WFH request covering the date. The attendance service consults
	// this before accepting a remote clock-in.
	HasApprovedForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*WFHRequest, error)
}

// OvertimeService drives the two-level overtime workflow.
type OvertimeService interface {
	Submit(ctx context.Context, employeeID string, req *CreateOvertimeRequest) (*OvertimeRequest, error)
	ApproveBySupervisor(ctx context.Context, requestID, actorID string, note *string) (*OvertimeRequest, error)
	RejectBySupervisor(ctx context.Context, requestID, actorID string, note *string) (*OvertimeRequest, error)
	ApproveByHR(ctx context.Context, requestID, actorID string, note *string) (*OvertimeRequest, error)
	RejectByHR(ctx context.Context, requestID, actorID string, note *string) (*OvertimeRequest, error)
	// RecordActualDuration is only valid on approved requests.
	RecordActualDuration(ctx context.Context, requestID string, req *ActualDurationRequest) (*OvertimeRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*OvertimeRequest, error)
}
