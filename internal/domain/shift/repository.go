package shift

import (
	"context"
	"time"
)

// WorkingHoursRepository reads working-hours rules. Reads exclude
// soft-deleted rows.
type WorkingHoursRepository interface {
	GetByID(ctx context.Context, id string) (*WorkingHoursRule, error)
	List(ctx context.Context) ([]*WorkingHoursRule, error)
	Create(ctx context.Context, rule *WorkingHoursRule) error
}

type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*ShiftPackage, error)
	Create(ctx context.Context, pkg *ShiftPackage) error
}

type PatternRepository interface {
	GetByID(ctx context.Context, id string) (*ShiftPattern, error)
	List(ctx context.Context) ([]*ShiftPattern, error)
	Create(ctx context.Context, pattern *ShiftPattern) error
	Update(ctx context.Context, pattern *ShiftPattern) error
}

// SettingRepository manages date-ranged pattern assignments.
type SettingRepository interface {
	// GetActiveOn returns the setting covering the date for the
	// employee, or ErrShiftSettingNotFound.
	GetActiveOn(ctx context.Context, employeeID string, date time.Time) (*EmployeeShiftSetting, error)
	// GetOpenSetting returns the employee's open-ended setting, or
	// ErrShiftSettingNotFound.
	GetOpenSetting(ctx context.Context, employeeID string) (*EmployeeShiftSetting, error)
	Create(ctx context.Context, setting *EmployeeShiftSetting) error
	// CloseSetting sets EffectiveTo on an open setting.
	CloseSetting(ctx context.Context, settingID string, effectiveTo time.Time) error
}

// OverrideRepository manages single-date schedule overrides.
type OverrideRepository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*EmployeeShiftSchedule, error)
	Create(ctx context.Context, override *EmployeeShiftSchedule) error
	SoftDelete(ctx context.Context, id string) error
}
