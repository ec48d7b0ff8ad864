package attendance

import (
	"context"
	"time"
)

// Repository abstracts attendance storage. The unique (employee, date)
// row is the serialization point for clock-in and clock-out; reads
// exclude soft-deleted rows.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]*Record, error)
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, rec *Record) error
	SoftDelete(ctx context.Context, id string) error
}
