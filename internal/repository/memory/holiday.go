package memory

import (
	"context"
	"sync"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/holiday"
)

type HolidayRepository struct {
	mu       sync.RWMutex
	holidays map[string]*holiday.Holiday
}

func NewHolidayRepository() *HolidayRepository {
	return &HolidayRepository{holidays: make(map[string]*holiday.Holiday)}
}

func (r *HolidayRepository) Seed(items ...*holiday.Holiday) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range items {
		r.holidays[h.ID] = h
	}
}

func (r *HolidayRepository) GetByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.holidays[id]
	if !ok || h.DeletedAt != nil {
		return nil, holiday.ErrHolidayNotFound
	}
	cp := *h
	return &cp, nil
}

func (r *HolidayRepository) GetByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, h := range r.holidays {
		if h.DeletedAt == nil && h.Date.Equal(date) {
			cp := *h
			return &cp, nil
		}
	}
	return nil, holiday.ErrHolidayNotFound
}

func (r *HolidayRepository) ListActive(ctx context.Context) ([]*holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*holiday.Holiday, 0)
	for _, h := range r.holidays {
		if h.DeletedAt == nil && h.IsActive {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *HolidayRepository) ListByYear(ctx context.Context, year int) ([]*holiday.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*holiday.Holiday, 0)
	for _, h := range r.holidays {
		if h.DeletedAt != nil {
			continue
		}
		if h.Date.Year() == year || (h.RepeatAnnually && h.Date.Year() <= year) {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *HolidayRepository) Create(ctx context.Context, h *holiday.Holiday) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.holidays {
		if existing.DeletedAt == nil && existing.Date.Equal(h.Date) {
			return holiday.ErrHolidayDateExists
		}
	}
	cp := *h
	r.holidays[h.ID] = &cp
	return nil
}

func (r *HolidayRepository) Update(ctx context.Context, h *holiday.Holiday) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.holidays[h.ID]
	if !ok || existing.DeletedAt != nil {
		return holiday.ErrHolidayNotFound
	}
	cp := *h
	r.holidays[h.ID] = &cp
	return nil
}

func (r *HolidayRepository) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.holidays[id]
	if !ok || h.DeletedAt != nil {
		return holiday.ErrHolidayNotFound
	}
	now := time.Now()
	h.DeletedAt = &now
	return nil
}
