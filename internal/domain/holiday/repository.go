package holiday

import (
	"context"
	"time"
)

// Repository abstracts holiday storage. Reads exclude soft-deleted rows.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Holiday, error)
	// GetByDate returns the active holiday covering the exact date, or
	// ErrHolidayNotFound. Repeat-annually matching is the service's job;
	// this is the exact-date lookup used for uniqueness checks.
	GetByDate(ctx context.Context, date time.Time) (*Holiday, error)
	// ListActive returns all active holidays, including repeat-annually
	// rows from earlier years.
	ListActive(ctx context.Context) ([]*Holiday, error)
	ListByYear(ctx context.Context, year int) ([]*Holiday, error)
	Create(ctx context.Context, h *Holiday) error
	Update(ctx context.Context, h *Holiday) error
	SoftDelete(ctx context.Context, id string) error
}
