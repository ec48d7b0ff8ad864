package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/domain/holiday"
	"github.com/akademika/hris-backend-go/internal/domain/shift"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type service struct {
	workingHours shift.WorkingHoursRepository
	packages     shift.PackageRepository
	patterns     shift.PatternRepository
	settings     shift.SettingRepository
	overrides    shift.OverrideRepository
	employees    employee.Repository
	oracle       holiday.Oracle
	tx           database.Transactor
	clk          clock.Clock
}

func NewShiftService(
	workingHours shift.WorkingHoursRepository,
	packages shift.PackageRepository,
	patterns shift.PatternRepository,
	settings shift.SettingRepository,
	overrides shift.OverrideRepository,
	employees employee.Repository,
	oracle holiday.Oracle,
	tx database.Transactor,
	clk clock.Clock,
) shift.Service {
	return &service{
		workingHours: workingHours,
		packages:     packages,
		patterns:     patterns,
		settings:     settings,
		overrides:    overrides,
		employees:    employees,
		oracle:       oracle,
		tx:           tx,
		clk:          clk,
	}
}

// BulkAssign applies one pattern to many employees. Employees are
// processed independently; the result partitions every id into
// succeeded, failed, or skipped, and a retroactive effective date is
// reported but not blocked.
func (s *service) BulkAssign(ctx context.Context, req *shift.BulkAssignRequest) (*shift.BulkAssignResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pattern, err := s.patterns.GetByID(ctx, req.ShiftPatternID)
	if err != nil {
		return nil, err
	}
	if !pattern.IsActive {
		return nil, shift.ErrShiftPatternInactive
	}

	effectiveFrom, _ := time.Parse(time.DateOnly, req.EffectiveFrom)
	effectiveFrom = clock.DateOf(effectiveFrom)

	result := &shift.BulkAssignResult{}
	today := clock.DateOf(s.clk.Now())
	if effectiveFrom.Before(today) {
		result.Retroactive = true
		result.RetroactiveDays = int(today.Sub(effectiveFrom).Hours() / 24)
	}

	for _, employeeID := range req.EmployeeIDs {
		s.assignOne(ctx, employeeID, pattern, effectiveFrom, req.Reason, result)
	}

	slog.Info("bulk shift assignment finished",
		"pattern_id", pattern.ID,
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
		"skipped", len(result.Skipped),
		"retroactive", result.Retroactive,
	)
	return result, nil
}

func (s *service) assignOne(ctx context.Context, employeeID string, pattern *shift.ShiftPattern, effectiveFrom time.Time, reason *string, result *shift.BulkAssignResult) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			result.Failed = append(result.Failed, shift.BulkAssignFailure{
				EmployeeID:   employeeID,
				ErrorType:    shift.FailureEmployeeNotFound,
				ErrorMessage: err.Error(),
			})
			return
		}
		result.Failed = append(result.Failed, shift.BulkAssignFailure{
			EmployeeID:   employeeID,
			ErrorType:    shift.FailureUnknown,
			ErrorMessage: err.Error(),
		})
		return
	}

	if !emp.IsActive() {
		result.Failed = append(result.Failed, shift.BulkAssignFailure{
			EmployeeID:   employeeID,
			EmployeeName: emp.FullName,
			ErrorType:    shift.FailureInactive,
			ErrorMessage: employee.ErrEmployeeInactive.Error(),
		})
		return
	}

	var previousName *string
	var previousClosedOn *time.Time

	current, err := s.settings.GetActiveOn(ctx, employeeID, effectiveFrom)
	switch {
	case err == nil:
		if current.ShiftPatternID == pattern.ID {
			result.Skipped = append(result.Skipped, shift.BulkAssignSkip{
				EmployeeID:       employeeID,
				EmployeeName:     emp.FullName,
				SkipReason:       shift.SkipSamePattern,
				CurrentShiftName: pattern.Name,
			})
			return
		}
		if !current.EffectiveFrom.Before(effectiveFrom) {
			// the open row starts on or after the new effective date;
			// closing it the day before would invert its range
			result.Failed = append(result.Failed, shift.BulkAssignFailure{
				EmployeeID:   employeeID,
				EmployeeName: emp.FullName,
				ErrorType:    shift.FailureOverlap,
				ErrorMessage: shift.ErrOverlappingShiftSetting.Error(),
			})
			return
		}
		if p, perr := s.patterns.GetByID(ctx, current.ShiftPatternID); perr == nil {
			previousName = &p.Name
		}
	case errors.Is(err, shift.ErrShiftSettingNotFound):
		// first assignment for this employee
	default:
		result.Failed = append(result.Failed, shift.BulkAssignFailure{
			EmployeeID:   employeeID,
			EmployeeName: emp.FullName,
			ErrorType:    shift.FailureUnknown,
			ErrorMessage: err.Error(),
		})
		return
	}

	now := s.clk.Now()
	setting := &shift.EmployeeShiftSetting{
		ID:             uuid.NewString(),
		EmployeeID:     employeeID,
		ShiftPatternID: pattern.ID,
		EffectiveFrom:  effectiveFrom,
		Notes:          reason,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if current != nil {
			closeOn := effectiveFrom.AddDate(0, 0, -1)
			if err := s.settings.CloseSetting(txCtx, current.ID, closeOn); err != nil {
				return fmt.Errorf("failed to close current setting: %w", err)
			}
			previousClosedOn = &closeOn
		}
		if err := s.settings.Create(txCtx, setting); err != nil {
			return fmt.Errorf("failed to create shift setting: %w", err)
		}
		return nil
	})
	if err != nil {
		errType := shift.FailureUnknown
		if errors.Is(err, shift.ErrOverlappingShiftSetting) {
			errType = shift.FailureOverlap
		}
		result.Failed = append(result.Failed, shift.BulkAssignFailure{
			EmployeeID:   employeeID,
			EmployeeName: emp.FullName,
			ErrorType:    errType,
			ErrorMessage: err.Error(),
		})
		return
	}

	result.Succeeded = append(result.Succeeded, shift.BulkAssignSuccess{
		EmployeeID:        employeeID,
		EmployeeName:      emp.FullName,
		SettingID:         setting.ID,
		PreviousShiftName: previousName,
		NewShiftName:      pattern.Name,
		EffectiveFrom:     effectiveFrom,
		PreviousClosedOn:  previousClosedOn,
	})
}

func (s *service) CreateOverride(ctx context.Context, req *shift.CreateScheduleOverrideRequest) (*shift.EmployeeShiftSchedule, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}
	if req.WorkingHoursRuleID != nil {
		if _, err := s.workingHours.GetByID(ctx, *req.WorkingHoursRuleID); err != nil {
			return nil, err
		}
	}

	date, _ := time.Parse(time.DateOnly, req.Date)
	date = clock.DateOf(date)

	if _, err := s.overrides.GetByEmployeeAndDate(ctx, req.EmployeeID, date); err == nil {
		return nil, shift.ErrScheduleOverrideExists
	} else if !errors.Is(err, shift.ErrScheduleOverrideNotFound) {
		return nil, fmt.Errorf("failed to check schedule override: %w", err)
	}

	now := s.clk.Now()
	override := &shift.EmployeeShiftSchedule{
		ID:                  uuid.NewString(),
		EmployeeID:          req.EmployeeID,
		Date:                date,
		WorkingHoursRuleID:  req.WorkingHoursRuleID,
		WFHAllowed:          req.WFHAllowed,
		OvertimeAllowed:     req.OvertimeAllowed,
		AttendanceMandatory: req.AttendanceMandatory,
		Notes:               req.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.overrides.Create(ctx, override); err != nil {
		return nil, fmt.Errorf("failed to create schedule override: %w", err)
	}

	slog.Info("schedule override created", "employee_id", req.EmployeeID, "date", req.Date)
	return override, nil
}

func (s *service) GetPattern(ctx context.Context, id string) (*shift.ShiftPattern, error) {
	return s.patterns.GetByID(ctx, id)
}

func (s *service) ListPatterns(ctx context.Context) ([]*shift.ShiftPattern, error) {
	return s.patterns.List(ctx)
}
