package attendance

import (
	"context"
	"time"
)

type Service interface {
	// ClockIn validates the working day, snapshots the governing rule
	// and pattern, computes lateness, and creates the record.
	ClockIn(ctx context.Context, employeeID string, req *ClockInRequest) (*Record, error)
	// ClockOut recomputes duration, early leave, underwork, and
	// overtime on the existing record.
	ClockOut(ctx context.Context, employeeID string, req *ClockOutRequest) (*Record, error)
	GetToday(ctx context.Context, employeeID string) (*Record, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]*Record, error)
}
