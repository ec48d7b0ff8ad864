package shift

import (
	"testing"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/holiday"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestWorkingHoursRuleDurations(t *testing.T) {
	day := &WorkingHoursRule{StartTime: str("09:00"), EndTime: str("17:00"), BreakMinutes: 60}
	assert.Equal(t, 480, day.WorkDurationMinutes())
	assert.Equal(t, 420, day.NetWorkDurationMinutes())

	night := &WorkingHoursRule{StartTime: str("22:00"), EndTime: str("06:00"), IsOvernight: true, BreakMinutes: 30}
	assert.Equal(t, 480, night.WorkDurationMinutes())
	assert.Equal(t, 450, night.NetWorkDurationMinutes())

	off := &WorkingHoursRule{}
	assert.True(t, off.IsOff())
	assert.Equal(t, 0, off.WorkDurationMinutes())
}

func TestMinutesOfDay(t *testing.T) {
	m, err := MinutesOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = MinutesOfDay("25:00")
	assert.Error(t, err)
}

func TestShiftPatternLateDeduction(t *testing.T) {
	p := &ShiftPattern{
		LateToleranceMinutes:   10,
		LateDeductionPerMinute: decimal.NewFromInt(1000),
		LateDeductionMax:       decimal.NewFromInt(50000),
	}

	assert.True(t, p.LateDeduction(10).IsZero(), "lateness within tolerance is free")
	assert.True(t, p.LateDeduction(30).Equal(decimal.NewFromInt(20000)))
	assert.True(t, p.LateDeduction(100).Equal(decimal.NewFromInt(50000)), "cap applies")
}

func TestShiftPatternEarlyLeaveDeductionDefaultsToZero(t *testing.T) {
	p := &ShiftPattern{EarlyLeaveToleranceMinutes: 5}
	assert.True(t, p.EarlyLeaveDeduction(60).IsZero())
}

func TestShiftPatternUnderworkDeductionNoTolerance(t *testing.T) {
	p := &ShiftPattern{
		UnderworkDeductionPerMinute: decimal.NewFromInt(500),
		UnderworkDeductionMax:       decimal.NewFromInt(100000),
	}
	assert.True(t, p.UnderworkDeduction(1).Equal(decimal.NewFromInt(500)))
	assert.True(t, p.UnderworkDeduction(300).Equal(decimal.NewFromInt(100000)))
}

func TestShiftPatternOverridesHoliday(t *testing.T) {
	p := &ShiftPattern{OverrideNationalHoliday: true, OverrideCollectiveLeave: true}

	assert.True(t, p.OverridesHoliday(holiday.TypeNational))
	assert.False(t, p.OverridesHoliday(holiday.TypeCompany))
	assert.True(t, p.OverridesHoliday(holiday.TypeCollectiveLeave))
}

func TestShiftSettingActiveOn(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	open := &EmployeeShiftSetting{EffectiveFrom: from}
	assert.True(t, open.ActiveOn(from))
	assert.True(t, open.ActiveOn(from.AddDate(2, 0, 0)))
	assert.False(t, open.ActiveOn(from.AddDate(0, 0, -1)))

	closed := &EmployeeShiftSetting{EffectiveFrom: from, EffectiveTo: &to}
	assert.True(t, closed.ActiveOn(to))
	assert.False(t, closed.ActiveOn(to.AddDate(0, 0, 1)))
}

func TestShiftPackageRuleIDFor(t *testing.T) {
	p := &ShiftPackage{MondayID: str("rule-day"), SaturdayID: nil}
	require.NotNil(t, p.RuleIDFor(time.Monday))
	assert.Equal(t, "rule-day", *p.RuleIDFor(time.Monday))
	assert.Nil(t, p.RuleIDFor(time.Saturday))
}
