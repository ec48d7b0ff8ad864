package holiday

import (
	"context"
	"time"
)

// Oracle answers "is this date a non-working day, and of what kind".
// It is the leaf dependency of the shift resolver, the attendance
// calculator, and the leave-day computation.
type Oracle interface {
	// IsHoliday returns the matching active holiday for the date, or
	// (nil, nil) when the date is an ordinary working day.
	IsHoliday(ctx context.Context, date time.Time) (*Holiday, error)
}

type Service interface {
	Oracle
	Create(ctx context.Context, req *CreateHolidayRequest) (*Holiday, error)
	Update(ctx context.Context, id string, req *UpdateHolidayRequest) (*Holiday, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Holiday, error)
	ListByYear(ctx context.Context, year int) ([]*Holiday, error)
}
