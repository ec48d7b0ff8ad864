package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/shift"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
)

// Resolve walks the precedence chain for one employee-day:
//
//  1. a single-date schedule override, where a nil rule id forces the
//     day off and nil flag pointers inherit the pattern's flags;
//  2. the date-ranged shift setting active on the day, resolved through
//     pattern, package, and weekday rule;
//  3. no assignment at all, which is an OFF day.
//
// An active holiday then forces OFF unless the governing pattern
// overrides that holiday kind.
func (s *service) Resolve(ctx context.Context, employeeID string, date time.Time) (*shift.ResolvedShift, error) {
	date = clock.DateOf(date)

	resolved, pattern, err := s.resolveAssignment(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}

	if !resolved.IsWorkingDay {
		return resolved, nil
	}

	h, err := s.oracle.IsHoliday(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check holiday: %w", err)
	}
	if h != nil && (pattern == nil || !pattern.OverridesHoliday(h.Type)) {
		off := shift.Off(shift.SourceHoliday)
		off.HolidayName = &h.Name
		return off, nil
	}

	return resolved, nil
}

func (s *service) resolveAssignment(ctx context.Context, employeeID string, date time.Time) (*shift.ResolvedShift, *shift.ShiftPattern, error) {
	// The pattern of the active setting supplies default flags even
	// when a schedule override wins.
	var pattern *shift.ShiftPattern
	setting, err := s.settings.GetActiveOn(ctx, employeeID, date)
	switch {
	case err == nil:
		pattern, err = s.patterns.GetByID(ctx, setting.ShiftPatternID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load shift pattern: %w", err)
		}
	case errors.Is(err, shift.ErrShiftSettingNotFound):
		// no setting; an override alone can still schedule the day
	default:
		return nil, nil, fmt.Errorf("failed to load shift setting: %w", err)
	}

	override, err := s.overrides.GetByEmployeeAndDate(ctx, employeeID, date)
	switch {
	case err == nil:
		resolved, err := s.resolveFromOverride(ctx, override, pattern)
		return resolved, pattern, err
	case errors.Is(err, shift.ErrScheduleOverrideNotFound):
		// no override, fall back to the setting
	default:
		return nil, nil, fmt.Errorf("failed to load schedule override: %w", err)
	}

	if setting == nil || pattern == nil {
		return shift.Off(shift.SourceNone), nil, nil
	}

	resolved, err := s.resolveFromSetting(ctx, pattern, date)
	return resolved, pattern, err
}

func (s *service) resolveFromOverride(ctx context.Context, override *shift.EmployeeShiftSchedule, pattern *shift.ShiftPattern) (*shift.ResolvedShift, error) {
	if override.WorkingHoursRuleID == nil {
		return shift.Off(shift.SourceScheduleOverride), nil
	}

	rule, err := s.workingHours.GetByID(ctx, *override.WorkingHoursRuleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load working hours rule: %w", err)
	}
	if rule.IsOff() {
		return shift.Off(shift.SourceScheduleOverride), nil
	}

	resolved := &shift.ResolvedShift{
		IsWorkingDay: true,
		Source:       shift.SourceScheduleOverride,
		Rule:         rule,
		Pattern:      pattern,
	}

	// Nil override flags inherit the pattern's defaults.
	if pattern != nil {
		resolved.WFHAllowed = pattern.WFHAllowed
		resolved.OvertimeAllowed = pattern.OvertimeAllowed
		resolved.AttendanceMandatory = pattern.AttendanceMandatory
	}
	if override.WFHAllowed != nil {
		resolved.WFHAllowed = *override.WFHAllowed
	}
	if override.OvertimeAllowed != nil {
		resolved.OvertimeAllowed = *override.OvertimeAllowed
	}
	if override.AttendanceMandatory != nil {
		resolved.AttendanceMandatory = *override.AttendanceMandatory
	}

	return resolved, nil
}

func (s *service) resolveFromSetting(ctx context.Context, pattern *shift.ShiftPattern, date time.Time) (*shift.ResolvedShift, error) {
	pkg, err := s.packages.GetByID(ctx, pattern.ShiftPackageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift package: %w", err)
	}

	ruleID := pkg.RuleIDFor(date.Weekday())
	if ruleID == nil {
		return shift.Off(shift.SourceShiftSetting), nil
	}

	rule, err := s.workingHours.GetByID(ctx, *ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load working hours rule: %w", err)
	}
	if rule.IsOff() {
		return shift.Off(shift.SourceShiftSetting), nil
	}

	return &shift.ResolvedShift{
		IsWorkingDay:        true,
		Source:              shift.SourceShiftSetting,
		Rule:                rule,
		Pattern:             pattern,
		WFHAllowed:          pattern.WFHAllowed,
		OvertimeAllowed:     pattern.OvertimeAllowed,
		AttendanceMandatory: pattern.AttendanceMandatory,
	}, nil
}
