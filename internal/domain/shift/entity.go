package shift

import (
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/holiday"
	"github.com/shopspring/decimal"
)

// WorkingHoursRule describes one daily working window. Times are stored
// as "HH:MM" clock strings; a nil StartTime means the rule is an OFF day.
type WorkingHoursRule struct {
	ID                  string
	Code                string
	Name                string
	StartTime           *string
	EndTime             *string
	IsOvernight         bool
	RequiredWorkMinutes int
	BreakMinutes        int
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time
}

// IsOff reports whether the rule represents a day off.
func (w *WorkingHoursRule) IsOff() bool {
	return w.StartTime == nil
}

// WorkDurationMinutes is the scheduled span between start and end,
// crossing midnight for overnight rules.
func (w *WorkingHoursRule) WorkDurationMinutes() int {
	if w.IsOff() || w.EndTime == nil {
		return 0
	}
	start, err := MinutesOfDay(*w.StartTime)
	if err != nil {
		return 0
	}
	end, err := MinutesOfDay(*w.EndTime)
	if err != nil {
		return 0
	}
	if w.IsOvernight {
		return (24*60 - start) + end
	}
	return end - start
}

// NetWorkDurationMinutes subtracts the break from the scheduled span.
func (w *WorkingHoursRule) NetWorkDurationMinutes() int {
	net := w.WorkDurationMinutes() - w.BreakMinutes
	if net < 0 {
		return 0
	}
	return net
}

// MinutesOfDay parses an "HH:MM" clock string to minutes from midnight.
func MinutesOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ShiftPackage maps each weekday to an optional working-hours rule.
// A nil rule id means the weekday is off.
type ShiftPackage struct {
	ID          string
	Name        string
	MondayID    *string
	TuesdayID   *string
	WednesdayID *string
	ThursdayID  *string
	FridayID    *string
	SaturdayID  *string
	SundayID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// RuleIDFor returns the working-hours rule id assigned to the weekday.
func (p *ShiftPackage) RuleIDFor(day time.Weekday) *string {
	switch day {
	case time.Monday:
		return p.MondayID
	case time.Tuesday:
		return p.TuesdayID
	case time.Wednesday:
		return p.WednesdayID
	case time.Thursday:
		return p.ThursdayID
	case time.Friday:
		return p.FridayID
	case time.Saturday:
		return p.SaturdayID
	case time.Sunday:
		return p.SundayID
	}
	return nil
}

// ShiftPattern bundles a package with tolerance and deduction policy.
// The four holiday-override flags let a pattern demand attendance even
// on the matching kind of holiday.
type ShiftPattern struct {
	ID                           string
	Name                         string
	ShiftPackageID               string
	LateToleranceMinutes         int
	EarlyLeaveToleranceMinutes   int
	LateDeductionPerMinute       decimal.Decimal
	LateDeductionMax             decimal.Decimal
	EarlyLeaveDeductionPerMinute decimal.Decimal
	EarlyLeaveDeductionMax       decimal.Decimal
	UnderworkDeductionPerMinute  decimal.Decimal
	UnderworkDeductionMax        decimal.Decimal
	OvertimeAllowed              bool
	WFHAllowed                   bool
	AttendanceMandatory          bool
	OverrideNationalHoliday      bool
	OverrideCompanyHoliday       bool
	OverrideCollectiveLeave      bool
	OverrideWeeklyOff            bool
	IsActive                     bool
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
	DeletedAt                    *time.Time
}

// cappedDeduction bills minutes at rate and clamps to max when a
// positive cap is configured.
func cappedDeduction(minutes int, rate, max decimal.Decimal) decimal.Decimal {
	if minutes <= 0 || rate.IsZero() {
		return decimal.Zero
	}
	amount := rate.Mul(decimal.NewFromInt(int64(minutes)))
	if max.IsPositive() && amount.GreaterThan(max) {
		amount = max
	}
	return amount.Round(2)
}

// LateDeduction bills lateness beyond the tolerance window.
func (p *ShiftPattern) LateDeduction(lateMinutes int) decimal.Decimal {
	billable := lateMinutes - p.LateToleranceMinutes
	return cappedDeduction(billable, p.LateDeductionPerMinute, p.LateDeductionMax)
}

// EarlyLeaveDeduction bills early departure beyond the tolerance window.
// The rate defaults to zero, so patterns that do not configure it never
// deduct for early leave.
func (p *ShiftPattern) EarlyLeaveDeduction(earlyMinutes int) decimal.Decimal {
	billable := earlyMinutes - p.EarlyLeaveToleranceMinutes
	return cappedDeduction(billable, p.EarlyLeaveDeductionPerMinute, p.EarlyLeaveDeductionMax)
}

// UnderworkDeduction bills the full shortfall, no tolerance applies.
func (p *ShiftPattern) UnderworkDeduction(underworkMinutes int) decimal.Decimal {
	return cappedDeduction(underworkMinutes, p.UnderworkDeductionPerMinute, p.UnderworkDeductionMax)
}

// OverridesHoliday reports whether the pattern requires attendance on
// the given holiday kind.
func (p *ShiftPattern) OverridesHoliday(kind holiday.Type) bool {
	switch kind {
	case holiday.TypeNational:
		return p.OverrideNationalHoliday
	case holiday.TypeCompany:
		return p.OverrideCompanyHoliday
	case holiday.TypeCollectiveLeave:
		return p.OverrideCollectiveLeave
	}
	return false
}

// EmployeeShiftSetting assigns a pattern to an employee over a date
// range. A nil EffectiveTo keeps the assignment open-ended.
type EmployeeShiftSetting struct {
	ID             string
	EmployeeID     string
	ShiftPatternID string
	EffectiveFrom  time.Time
	EffectiveTo    *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// ActiveOn reports whether the setting covers the date.
func (s *EmployeeShiftSetting) ActiveOn(date time.Time) bool {
	if date.Before(s.EffectiveFrom) {
		return false
	}
	if s.EffectiveTo != nil && date.After(*s.EffectiveTo) {
		return false
	}
	return true
}

// EmployeeShiftSchedule is a single-date override. A nil
// WorkingHoursRuleID forces the day off; nil flag pointers fall back to
// the governing pattern's flags.
type EmployeeShiftSchedule struct {
	ID                  string
	EmployeeID          string
	Date                time.Time
	WorkingHoursRuleID  *string
	WFHAllowed          *bool
	OvertimeAllowed     *bool
	AttendanceMandatory *bool
	Notes               *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time
}

// ResolvedShiftSource tells which precedence level produced the result.
type ResolvedShiftSource string

const (
	SourceScheduleOverride ResolvedShiftSource = "schedule_override"
	SourceShiftSetting     ResolvedShiftSource = "shift_setting"
	SourceNone             ResolvedShiftSource = "none"
	SourceHoliday          ResolvedShiftSource = "holiday"
)

// ResolvedShift is the effective working-hours decision for one
// employee-day.
type ResolvedShift struct {
	IsWorkingDay        bool
	Source              ResolvedShiftSource
	Rule                *WorkingHoursRule
	Pattern             *ShiftPattern
	WFHAllowed          bool
	OvertimeAllowed     bool
	AttendanceMandatory bool
	HolidayName         *string
}

// Off builds the OFF result for the given source.
func Off(source ResolvedShiftSource) *ResolvedShift {
	return &ResolvedShift{IsWorkingDay: false, Source: source}
}
