package shift

import (
	"context"
	"time"
)

// Resolver answers which working-hours rule governs an employee on a
// calendar day. Precedence: single-date override, then the active
// date-ranged setting, then OFF. An active holiday forces OFF unless
// the governing pattern overrides that holiday kind.
type Resolver interface {
	Resolve(ctx context.Context, employeeID string, date time.Time) (*ResolvedShift, error)
}

type Service interface {
	Resolver
	BulkAssign(ctx context.Context, req *BulkAssignRequest) (*BulkAssignResult, error)
	CreateOverride(ctx context.Context, req *CreateScheduleOverrideRequest) (*EmployeeShiftSchedule, error)
	GetPattern(ctx context.Context, id string) (*ShiftPattern, error)
	ListPatterns(ctx context.Context) ([]*ShiftPattern, error)
}
