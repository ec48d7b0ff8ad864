package memory

import (
	"context"
	"sync"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/shift"
)

type WorkingHoursRepository struct {
	mu    sync.RWMutex
	rules map[string]*shift.WorkingHoursRule
}

func NewWorkingHoursRepository() *WorkingHoursRepository {
	return &WorkingHoursRepository{rules: make(map[string]*shift.WorkingHoursRule)}
}

func (r *WorkingHoursRepository) Seed(rules ...*shift.WorkingHoursRule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rule := range rules {
		r.rules[rule.ID] = rule
	}
}

func (r *WorkingHoursRepository) GetByID(ctx context.Context, id string) (*shift.WorkingHoursRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	if !ok || rule.DeletedAt != nil {
		return nil, shift.ErrWorkingHoursRuleNotFound
	}
	cp := *rule
	return &cp, nil
}

func (r *WorkingHoursRepository) List(ctx context.Context) ([]*shift.WorkingHoursRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*shift.WorkingHoursRule, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.DeletedAt == nil {
			cp := *rule
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *WorkingHoursRepository) Create(ctx context.Context, rule *shift.WorkingHoursRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rule
	r.rules[rule.ID] = &cp
	return nil
}

type PackageRepository struct {
	mu       sync.RWMutex
	packages map[string]*shift.ShiftPackage
}

func NewPackageRepository() *PackageRepository {
	return &PackageRepository{packages: make(map[string]*shift.ShiftPackage)}
}

func (r *PackageRepository) Seed(pkgs ...*shift.ShiftPackage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, pkg := range pkgs {
		r.packages[pkg.ID] = pkg
	}
}

func (r *PackageRepository) GetByID(ctx context.Context, id string) (*shift.ShiftPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pkg, ok := r.packages[id]
	if !ok || pkg.DeletedAt != nil {
		return nil, shift.ErrShiftPackageNotFound
	}
	cp := *pkg
	return &cp, nil
}

func (r *PackageRepository) Create(ctx context.Context, pkg *shift.ShiftPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *pkg
	r.packages[pkg.ID] = &cp
	return nil
}

type PatternRepository struct {
	mu       sync.RWMutex
	patterns map[string]*shift.ShiftPattern
}

func NewPatternRepository() *PatternRepository {
	return &PatternRepository{patterns: make(map[string]*shift.ShiftPattern)}
}

func (r *PatternRepository) Seed(patterns ...*shift.ShiftPattern) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range patterns {
		r.patterns[p.ID] = p
	}
}

func (r *PatternRepository) GetByID(ctx context.Context, id string) (*shift.ShiftPattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patterns[id]
	if !ok || p.DeletedAt != nil {
		return nil, shift.ErrShiftPatternNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *PatternRepository) List(ctx context.Context) ([]*shift.ShiftPattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*shift.ShiftPattern, 0, len(r.patterns))
	for _, p := range r.patterns {
		if p.DeletedAt == nil {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *PatternRepository) Create(ctx context.Context, pattern *shift.ShiftPattern) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *pattern
	r.patterns[pattern.ID] = &cp
	return nil
}

func (r *PatternRepository) Update(ctx context.Context, pattern *shift.ShiftPattern) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patterns[pattern.ID]; !ok {
		return shift.ErrShiftPatternNotFound
	}
	cp := *pattern
	r.patterns[pattern.ID] = &cp
	return nil
}

type SettingRepository struct {
	mu       sync.RWMutex
	settings map[string]*shift.EmployeeShiftSetting
}

func NewSettingRepository() *SettingRepository {
	return &SettingRepository{settings: make(map[string]*shift.EmployeeShiftSetting)}
}

func (r *SettingRepository) Seed(settings ...*shift.EmployeeShiftSetting) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range settings {
		r.settings[s.ID] = s
	}
}

func (r *SettingRepository) GetActiveOn(ctx context.Context, employeeID string, date time.Time) (*shift.EmployeeShiftSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best *shift.EmployeeShiftSetting
	for _, s := range r.settings {
		if s.DeletedAt != nil || s.EmployeeID != employeeID || !s.ActiveOn(date) {
			continue
		}
		if best == nil || s.EffectiveFrom.After(best.EffectiveFrom) {
			best = s
		}
	}
	if best == nil {
		return nil, shift.ErrShiftSettingNotFound
	}
	cp := *best
	return &cp, nil
}

func (r *SettingRepository) GetOpenSetting(ctx context.Context, employeeID string) (*shift.EmployeeShiftSetting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var best *shift.EmployeeShiftSetting
	for _, s := range r.settings {
		if s.DeletedAt != nil || s.EmployeeID != employeeID || s.EffectiveTo != nil {
			continue
		}
		if best == nil || s.EffectiveFrom.After(best.EffectiveFrom) {
			best = s
		}
	}
	if best == nil {
		return nil, shift.ErrShiftSettingNotFound
	}
	cp := *best
	return &cp, nil
}

func (r *SettingRepository) Create(ctx context.Context, setting *shift.EmployeeShiftSetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *setting
	r.settings[setting.ID] = &cp
	return nil
}

func (r *SettingRepository) CloseSetting(ctx context.Context, settingID string, effectiveTo time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[settingID]
	if !ok || s.DeletedAt != nil || s.EffectiveTo != nil {
		return shift.ErrShiftSettingNotFound
	}
	to := effectiveTo
	s.EffectiveTo = &to
	return nil
}

type OverrideRepository struct {
	mu        sync.RWMutex
	overrides map[string]*shift.EmployeeShiftSchedule
}

func NewOverrideRepository() *OverrideRepository {
	return &OverrideRepository{overrides: make(map[string]*shift.EmployeeShiftSchedule)}
}

func (r *OverrideRepository) Seed(overrides ...*shift.EmployeeShiftSchedule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range overrides {
		r.overrides[o.ID] = o
	}
}

func (r *OverrideRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*shift.EmployeeShiftSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.overrides {
		if o.DeletedAt == nil && o.EmployeeID == employeeID && o.Date.Equal(date) {
			cp := *o
			return &cp, nil
		}
	}
	return nil, shift.ErrScheduleOverrideNotFound
}

func (r *OverrideRepository) Create(ctx context.Context, override *shift.EmployeeShiftSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.overrides {
		if o.DeletedAt == nil && o.EmployeeID == override.EmployeeID && o.Date.Equal(override.Date) {
			return shift.ErrScheduleOverrideExists
		}
	}
	cp := *override
	r.overrides[override.ID] = &cp
	return nil
}

func (r *OverrideRepository) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.overrides[id]
	if !ok || o.DeletedAt != nil {
		return shift.ErrScheduleOverrideNotFound
	}
	now := time.Now()
	o.DeletedAt = &now
	return nil
}
