package shift

import (
	"context"
	"testing"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/domain/holiday"
	"github.com/akademika/hris-backend-go/internal/domain/shift"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/akademika/hris-backend-go/internal/repository/memory"
	holidaysvc "github.com/akademika/hris-backend-go/internal/service/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }

type fixture struct {
	workingHours *memory.WorkingHoursRepository
	packages     *memory.PackageRepository
	patterns     *memory.PatternRepository
	settings     *memory.SettingRepository
	overrides    *memory.OverrideRepository
	employees    *memory.EmployeeRepository
	holidays     *memory.HolidayRepository
	svc          shift.Service
}

func newFixture(clk clock.Clock) *fixture {
	f := &fixture{
		workingHours: memory.NewWorkingHoursRepository(),
		packages:     memory.NewPackageRepository(),
		patterns:     memory.NewPatternRepository(),
		settings:     memory.NewSettingRepository(),
		overrides:    memory.NewOverrideRepository(),
		employees:    memory.NewEmployeeRepository(),
		holidays:     memory.NewHolidayRepository(),
	}
	oracle := holidaysvc.NewHolidayService(f.holidays, clk)
	f.svc = NewShiftService(
		f.workingHours, f.packages, f.patterns, f.settings, f.overrides,
		f.employees, oracle, database.NopTransactor{}, clk,
	)
	return f
}

// seedWeekdayShift assigns emp-1 an open-ended Monday-to-Friday 09:00
// to 17:00 shift effective 2025-01-01.
func (f *fixture) seedWeekdayShift() {
	dayRule := &shift.WorkingHoursRule{
		ID:                  "rule-day",
		Code:                "DAY",
		StartTime:           str("09:00"),
		EndTime:             str("17:00"),
		RequiredWorkMinutes: 420,
	}
	f.workingHours.Seed(dayRule)
	f.packages.Seed(&shift.ShiftPackage{
		ID:          "pkg-5x8",
		Name:        "Five Day Week",
		MondayID:    str("rule-day"),
		TuesdayID:   str("rule-day"),
		WednesdayID: str("rule-day"),
		ThursdayID:  str("rule-day"),
		FridayID:    str("rule-day"),
	})
	f.patterns.Seed(&shift.ShiftPattern{
		ID:             "pat-office",
		Name:           "Office",
		ShiftPackageID: "pkg-5x8",
		WFHAllowed:     true,
		IsActive:       true,
	})
	f.settings.Seed(&shift.EmployeeShiftSetting{
		ID:             "setting-1",
		EmployeeID:     "emp-1",
		ShiftPatternID: "pat-office",
		EffectiveFrom:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
}

func TestResolveFromSetting(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()

	// 2025-03-10 is a Monday.
	resolved, err := f.svc.Resolve(context.Background(), "emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, resolved.IsWorkingDay)
	assert.Equal(t, shift.SourceShiftSetting, resolved.Source)
	require.NotNil(t, resolved.Rule)
	assert.Equal(t, "rule-day", resolved.Rule.ID)
	assert.True(t, resolved.WFHAllowed)
}

func TestResolveWeekendIsOff(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()

	// 2025-03-15 is a Saturday with no rule in the package.
	resolved, err := f.svc.Resolve(context.Background(), "emp-1", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.False(t, resolved.IsWorkingDay)
	assert.Equal(t, shift.SourceShiftSetting, resolved.Source)
}

func TestResolveNoAssignment(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))

	resolved, err := f.svc.Resolve(context.Background(), "emp-unknown", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.False(t, resolved.IsWorkingDay)
	assert.Equal(t, shift.SourceNone, resolved.Source)
}

func TestResolveOverrideBeatsSetting(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()
	f.workingHours.Seed(&shift.WorkingHoursRule{
		ID:                  "rule-night",
		Code:                "NIGHT",
		StartTime:           str("22:00"),
		EndTime:             str("06:00"),
		IsOvernight:         true,
		RequiredWorkMinutes: 420,
	})
	f.overrides.Seed(&shift.EmployeeShiftSchedule{
		ID:                 "ovr-1",
		EmployeeID:         "emp-1",
		Date:               time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		WorkingHoursRuleID: str("rule-night"),
	})

	resolved, err := f.svc.Resolve(context.Background(), "emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, shift.SourceScheduleOverride, resolved.Source)
	require.NotNil(t, resolved.Rule)
	assert.Equal(t, "rule-night", resolved.Rule.ID)
	assert.True(t, resolved.WFHAllowed, "nil override flags inherit the pattern")
}

func TestResolveOverrideForcesDayOff(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()
	f.overrides.Seed(&shift.EmployeeShiftSchedule{
		ID:         "ovr-1",
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	resolved, err := f.svc.Resolve(context.Background(), "emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.False(t, resolved.IsWorkingDay)
	assert.Equal(t, shift.SourceScheduleOverride, resolved.Source)
}

func TestResolveOverrideExplicitFlagsWin(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()
	f.overrides.Seed(&shift.EmployeeShiftSchedule{
		ID:                 "ovr-1",
		EmployeeID:         "emp-1",
		Date:               time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		WorkingHoursRuleID: str("rule-day"),
		WFHAllowed:         boolPtr(false),
	})

	resolved, err := f.svc.Resolve(context.Background(), "emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, resolved.WFHAllowed)
}

func TestResolveHolidayForcesOff(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()
	f.holidays.Seed(&holiday.Holiday{
		ID:       "hol-1",
		Name:     "Nyepi",
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Type:     holiday.TypeNational,
		IsActive: true,
	})

	resolved, err := f.svc.Resolve(context.Background(), "emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.False(t, resolved.IsWorkingDay)
	assert.Equal(t, shift.SourceHoliday, resolved.Source)
	require.NotNil(t, resolved.HolidayName)
	assert.Equal(t, "Nyepi", *resolved.HolidayName)
}

func TestResolvePatternOverridesHoliday(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()

	pattern, err := f.patterns.GetByID(context.Background(), "pat-office")
	require.NoError(t, err)
	pattern.OverrideNationalHoliday = true
	require.NoError(t, f.patterns.Update(context.Background(), pattern))

	f.holidays.Seed(&holiday.Holiday{
		ID:       "hol-1",
		Name:     "Nyepi",
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Type:     holiday.TypeNational,
		IsActive: true,
	})

	resolved, err := f.svc.Resolve(context.Background(), "emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, resolved.IsWorkingDay, "the pattern demands attendance on national holidays")
	assert.Equal(t, shift.SourceShiftSetting, resolved.Source)
}

func seedEmployees(f *fixture, statuses map[string]employee.EmploymentStatus) {
	for id, status := range statuses {
		f.employees.Seed(&employee.Employee{
			ID:               id,
			DepartmentID:     "dept-1",
			PositionID:       "pos-1",
			FullName:         "Employee " + id,
			EmploymentStatus: status,
		})
	}
}

func TestBulkAssignPartitionsResults(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()
	f.patterns.Seed(&shift.ShiftPattern{
		ID:             "pat-remote",
		Name:           "Remote",
		ShiftPackageID: "pkg-5x8",
		WFHAllowed:     true,
		IsActive:       true,
	})
	seedEmployees(f, map[string]employee.EmploymentStatus{
		"emp-1": employee.EmploymentStatusActive,
		"emp-2": employee.EmploymentStatusActive,
		"emp-3": employee.EmploymentStatusTerminated,
	})

	result, err := f.svc.BulkAssign(context.Background(), &shift.BulkAssignRequest{
		EmployeeIDs:    []string{"emp-1", "emp-2", "emp-3", "emp-ghost"},
		ShiftPatternID: "pat-remote",
		EffectiveFrom:  "2025-04-01",
	})
	require.NoError(t, err)

	assert.Len(t, result.Succeeded, 2)
	assert.Len(t, result.Failed, 2)
	assert.Len(t, result.Skipped, 0)
	assert.Equal(t, 4, result.TotalProcessed())
	assert.False(t, result.Retroactive)

	types := map[string]string{}
	for _, failure := range result.Failed {
		types[failure.EmployeeID] = failure.ErrorType
	}
	assert.Equal(t, shift.FailureInactive, types["emp-3"])
	assert.Equal(t, shift.FailureEmployeeNotFound, types["emp-ghost"])

	// emp-1's previous setting closed the day before the new one starts.
	for _, success := range result.Succeeded {
		if success.EmployeeID == "emp-1" {
			require.NotNil(t, success.PreviousClosedOn)
			assert.Equal(t, "2025-03-31", success.PreviousClosedOn.Format(time.DateOnly))
			require.NotNil(t, success.PreviousShiftName)
			assert.Equal(t, "Office", *success.PreviousShiftName)
		}
	}
}

func TestBulkAssignSkipsSamePattern(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()
	seedEmployees(f, map[string]employee.EmploymentStatus{"emp-1": employee.EmploymentStatusActive})

	result, err := f.svc.BulkAssign(context.Background(), &shift.BulkAssignRequest{
		EmployeeIDs:    []string{"emp-1"},
		ShiftPatternID: "pat-office",
		EffectiveFrom:  "2025-04-01",
	})
	require.NoError(t, err)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, shift.SkipSamePattern, result.Skipped[0].SkipReason)
}

func TestBulkAssignRetroactive(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()
	f.patterns.Seed(&shift.ShiftPattern{
		ID:             "pat-remote",
		Name:           "Remote",
		ShiftPackageID: "pkg-5x8",
		IsActive:       true,
	})
	seedEmployees(f, map[string]employee.EmploymentStatus{"emp-2": employee.EmploymentStatusActive})

	result, err := f.svc.BulkAssign(context.Background(), &shift.BulkAssignRequest{
		EmployeeIDs:    []string{"emp-2"},
		ShiftPatternID: "pat-remote",
		EffectiveFrom:  "2025-03-05",
	})
	require.NoError(t, err)

	assert.True(t, result.Retroactive)
	assert.Equal(t, 5, result.RetroactiveDays)
	assert.Len(t, result.Succeeded, 1)
}

func TestBulkAssignInactivePattern(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()
	f.patterns.Seed(&shift.ShiftPattern{
		ID:             "pat-retired",
		Name:           "Retired",
		ShiftPackageID: "pkg-5x8",
		IsActive:       false,
	})

	_, err := f.svc.BulkAssign(context.Background(), &shift.BulkAssignRequest{
		EmployeeIDs:    []string{"emp-1"},
		ShiftPatternID: "pat-retired",
		EffectiveFrom:  "2025-04-01",
	})
	assert.ErrorIs(t, err, shift.ErrShiftPatternInactive)
}

func TestCreateOverrideRejectsDuplicateDate(t *testing.T) {
	f := newFixture(clock.At("2025-03-10", ""))
	f.seedWeekdayShift()
	seedEmployees(f, map[string]employee.EmploymentStatus{"emp-1": employee.EmploymentStatusActive})

	req := &shift.CreateScheduleOverrideRequest{
		EmployeeID:         "emp-1",
		Date:               "2025-03-12",
		WorkingHoursRuleID: str("rule-day"),
	}
	_, err := f.svc.CreateOverride(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.CreateOverride(context.Background(), req)
	assert.ErrorIs(t, err, shift.ErrScheduleOverrideExists)
}
