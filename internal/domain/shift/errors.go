package shift

import "errors"

var (
	ErrWorkingHoursRuleNotFound = errors.New("working hours rule not found")
	ErrShiftPackageNotFound     = errors.New("shift package not found")
	ErrShiftPatternNotFound     = errors.New("shift pattern not found")
	ErrShiftPatternInactive     = errors.New("shift pattern is inactive")
	ErrShiftSettingNotFound     = errors.New("shift setting not found")
	ErrOverlappingShiftSetting  = errors.New("employee already has a shift setting overlapping this period")
	ErrScheduleOverrideNotFound = errors.New("schedule override not found")
	ErrScheduleOverrideExists   = errors.New("a schedule override already exists for this date")
)
