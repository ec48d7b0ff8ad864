package holiday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/holiday"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
)

type service struct {
	repo holiday.Repository
	clk  clock.Clock
}

func NewHolidayService(repo holiday.Repository, clk clock.Clock) holiday.Service {
	return &service{repo: repo, clk: clk}
}

// IsHoliday scans active holidays for one covering the date, including
// repeat-annually rows defined in earlier years.
func (s *service) IsHoliday(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	date = clock.DateOf(date)

	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active holidays: %w", err)
	}

	for _, h := range active {
		if h.Matches(date) {
			return h, nil
		}
	}
	return nil, nil
}

func (s *service) Create(ctx context.Context, req *holiday.CreateHolidayRequest) (*holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := time.Parse(time.DateOnly, req.Date)
	date = clock.DateOf(date)

	_, err := s.repo.GetByDate(ctx, date)
	if err == nil {
		return nil, holiday.ErrHolidayDateExists
	}
	if !errors.Is(err, holiday.ErrHolidayNotFound) {
		return nil, fmt.Errorf("failed to check holiday date: %w", err)
	}

	now := s.clk.Now()
	h := &holiday.Holiday{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Date:           date,
		Type:           holiday.Type(req.Type),
		IsActive:       true,
		RepeatAnnually: req.RepeatAnnually,
		Description:    req.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to create holiday: %w", err)
	}

	slog.Info("holiday created", "holiday_id", h.ID, "date", req.Date, "type", req.Type)
	return h, nil
}

func (s *service) Update(ctx context.Context, id string, req *holiday.UpdateHolidayRequest) (*holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Date != nil {
		date, _ := time.Parse(time.DateOnly, *req.Date)
		date = clock.DateOf(date)
		if !date.Equal(h.Date) {
			if _, err := s.repo.GetByDate(ctx, date); err == nil {
				return nil, holiday.ErrHolidayDateExists
			} else if !errors.Is(err, holiday.ErrHolidayNotFound) {
				return nil, fmt.Errorf("failed to check holiday date: %w", err)
			}
			h.Date = date
		}
	}
	if req.Type != nil {
		h.Type = holiday.Type(*req.Type)
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}
	if req.RepeatAnnually != nil {
		h.RepeatAnnually = *req.RepeatAnnually
	}
	if req.Description != nil {
		h.Description = req.Description
	}
	h.UpdatedAt = s.clk.Now()

	if err := s.repo.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to update holiday: %w", err)
	}
	return h, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	slog.Info("holiday deleted", "holiday_id", id)
	return nil
}

func (s *service) GetByID(ctx context.Context, id string) (*holiday.Holiday, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByYear(ctx context.Context, year int) ([]*holiday.Holiday, error) {
	return s.repo.ListByYear(ctx, year)
}
