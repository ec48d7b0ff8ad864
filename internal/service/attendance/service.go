package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/approval"
	"github.com/akademika/hris-backend-go/internal/domain/attendance"
	"github.com/akademika/hris-backend-go/internal/domain/shift"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/akademika/hris-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type service struct {
	records  attendance.Repository
	resolver shift.Resolver
	wfh      approval.WFHService
	clk      clock.Clock
}

func NewAttendanceService(records attendance.Repository, resolver shift.Resolver, wfh approval.WFHService, clk clock.Clock) attendance.Service {
	return &service{
		records:  records,
		resolver: resolver,
		wfh:      wfh,
		clk:      clk,
	}
}

func (s *service) ClockIn(ctx context.Context, employeeID string, req *attendance.ClockInRequest) (*attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ts, _ := validator.IsValidDateTime(req.Timestamp)
	date := clock.DateOf(ts)

	existing, err := s.records.GetByEmployeeAndDate(ctx, employeeID, date)
	if err == nil && existing.ClockInAt != nil {
		return nil, attendance.ErrAlreadyClockedIn
	}
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load attendance record: %w", err)
	}

	resolved, err := s.resolver.Resolve(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve shift: %w", err)
	}
	if !resolved.IsWorkingDay {
		return nil, attendance.ErrNotWorkingDay
	}

	if err := s.rejectAfterShiftEnd(resolved.Rule, ts); err != nil {
		return nil, err
	}

	if req.IsRemote {
		if !resolved.WFHAllowed {
			return nil, attendance.ErrWFHNotAllowed
		}
		approved, err := s.wfh.HasApprovedForDate(ctx, employeeID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to check WFH approval: %w", err)
		}
		if !approved {
			return nil, attendance.ErrWFHNotApproved
		}
	}

	snap := Snapshot(resolved.Rule, resolved.Pattern)
	derived := Calculate(&snap, &ts, nil, req.IsRemote)

	now := s.clk.Now()
	rec := &attendance.Record{
		ID:              uuid.NewString(),
		EmployeeID:      employeeID,
		Date:            date,
		ClockInAt:       &ts,
		ClockInLat:      req.Latitude,
		ClockInLong:     req.Longitude,
		ClockInPhotoURL: req.PhotoURL,
		ClockInDeviceID: req.DeviceID,
		IsRemote:        req.IsRemote,
		Snapshot:        snap,
		Derived:         derived,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.records.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	slog.Info("employee clocked in",
		"employee_id", employeeID,
		"date", date.Format(time.DateOnly),
		"late", derived.IsLate,
		"late_minutes", derived.LateMinutes,
		"remote", req.IsRemote,
	)
	return rec, nil
}

// rejectAfterShiftEnd blocks a clock-in once the scheduled window has
// fully passed. Overnight shifts cannot be judged on time-of-day alone,
// so they are always admitted.
func (s *service) rejectAfterShiftEnd(rule *shift.WorkingHoursRule, ts time.Time) error {
	if rule == nil || rule.EndTime == nil || rule.IsOvernight {
		return nil
	}
	end, err := shift.MinutesOfDay(*rule.EndTime)
	if err != nil {
		return nil
	}
	if ts.Hour()*60+ts.Minute() > end {
		return attendance.ErrShiftAlreadyEnded
	}
	return nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string, req *attendance.ClockOutRequest) (*attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ts, _ := validator.IsValidDateTime(req.Timestamp)

	rec, err := s.findOpenRecord(ctx, employeeID, ts)
	if err != nil {
		return nil, err
	}
	if rec.ClockOutAt != nil {
		return nil, attendance.ErrAlreadyClockedOut
	}
	if ts.Before(*rec.ClockInAt) {
		return nil, attendance.ErrClockOutBeforeIn
	}

	rec.ClockOutAt = &ts
	rec.ClockOutLat = req.Latitude
	rec.ClockOutLong = req.Longitude
	rec.ClockOutPhotoURL = req.PhotoURL
	if req.Notes != nil {
		rec.Notes = req.Notes
	}
	rec.Derived = Calculate(&rec.Snapshot, rec.ClockInAt, rec.ClockOutAt, rec.IsRemote)
	rec.UpdatedAt = s.clk.Now()

	if err := s.records.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}

	slog.Info("employee clocked out",
		"employee_id", employeeID,
		"date", rec.Date.Format(time.DateOnly),
		"worked_minutes", rec.Derived.ActualWorkMinutes,
		"overtime_minutes", rec.Derived.OvertimeMinutes,
		"underwork_minutes", rec.Derived.UnderworkMinutes,
	)
	return rec, nil
}

// findOpenRecord locates the record the clock-out belongs to. An
// overnight shift's clock-out usually lands on the next calendar day,
// so the previous day's open record is checked as well.
func (s *service) findOpenRecord(ctx context.Context, employeeID string, ts time.Time) (*attendance.Record, error) {
	date := clock.DateOf(ts)

	rec, err := s.records.GetByEmployeeAndDate(ctx, employeeID, date)
	if err == nil && rec.ClockInAt != nil {
		return rec, nil
	}
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load attendance record: %w", err)
	}

	prev, err := s.records.GetByEmployeeAndDate(ctx, employeeID, date.AddDate(0, 0, -1))
	if err == nil && prev.IsClockedIn() && prev.Snapshot.IsOvernight {
		return prev, nil
	}
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load attendance record: %w", err)
	}

	return nil, attendance.ErrNotClockedIn
}

func (s *service) GetToday(ctx context.Context, employeeID string) (*attendance.Record, error) {
	return s.records.GetByEmployeeAndDate(ctx, employeeID, clock.DateOf(s.clk.Now()))
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]*attendance.Record, error) {
	return s.records.ListByEmployee(ctx, employeeID, clock.DateOf(from), clock.DateOf(to))
}
