package attendance

import (
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/attendance"
	"github.com/akademika/hris-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

// Snapshot copies the deduction-relevant fields of the governing rule
// and pattern into the record at clock-in, so later edits to either
// never rewrite history.
func Snapshot(rule *shift.WorkingHoursRule, pattern *shift.ShiftPattern) attendance.ShiftSnapshot {
	snap := attendance.ShiftSnapshot{
		ScheduledStart:      rule.StartTime,
		ScheduledEnd:        rule.EndTime,
		IsOvernight:         rule.IsOvernight,
		RequiredWorkMinutes: rule.RequiredWorkMinutes,
		BreakMinutes:        rule.BreakMinutes,
	}
	if pattern != nil {
		snap.LateToleranceMinutes = pattern.LateToleranceMinutes
		snap.EarlyLeaveToleranceMinutes = pattern.EarlyLeaveToleranceMinutes
		snap.LateDeductionPerMinute = pattern.LateDeductionPerMinute
		snap.LateDeductionMax = pattern.LateDeductionMax
		snap.EarlyLeaveDeductionPerMinute = pattern.EarlyLeaveDeductionPerMinute
		snap.EarlyLeaveDeductionMax = pattern.EarlyLeaveDeductionMax
		snap.UnderworkDeductionPerMinute = pattern.UnderworkDeductionPerMinute
		snap.UnderworkDeductionMax = pattern.UnderworkDeductionMax
		snap.OvertimeAllowed = pattern.OvertimeAllowed
	}
	return snap
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DurationMinutes measures the worked span on time-of-day basis. An
// overnight shift whose clock-out lands before the clock-in wraps
// across midnight.
func DurationMinutes(snap *attendance.ShiftSnapshot, clockIn, clockOut time.Time) int {
	in := minutesOfDay(clockIn)
	out := minutesOfDay(clockOut)
	if snap.IsOvernight && out < in {
		return (24*60 - in) + out
	}
	return out - in
}

// Calculate derives lateness, early leave, underwork, overtime, and
// their deductions from the raw clock events. A clock-in-only state
// yields a partial result with zero worked minutes; the clock-out pass
// recomputes everything.
func Calculate(snap *attendance.ShiftSnapshot, clockIn, clockOut *time.Time, isRemote bool) attendance.Derived {
	d := attendance.Derived{
		LateDeduction:       decimal.Zero,
		EarlyLeaveDeduction: decimal.Zero,
		UnderworkDeduction:  decimal.Zero,
		Status:              attendance.StatusAbsent,
	}
	if clockIn == nil {
		return d
	}

	if snap.ScheduledStart != nil {
		start, err := shift.MinutesOfDay(*snap.ScheduledStart)
		if err == nil {
			late := minutesOfDay(*clockIn) - start
			if late > 0 {
				d.IsLate = true
				d.LateMinutes = late
				d.LateDeduction = snap.LateDeduction(late)
			}
		}
	}

	if clockOut != nil {
		d.ActualWorkMinutes = DurationMinutes(snap, *clockIn, *clockOut)
		if d.ActualWorkMinutes < 0 {
			d.ActualWorkMinutes = 0
		}

		if snap.ScheduledEnd != nil {
			end, err := shift.MinutesOfDay(*snap.ScheduledEnd)
			if err == nil {
				early := earlyLeaveMinutes(snap, end, *clockOut)
				if early > 0 {
					d.IsEarlyLeave = true
					d.EarlyLeaveMinutes = early
					d.EarlyLeaveDeduction = snap.EarlyLeaveDeduction(early)
				}
			}
		}

		if under := snap.RequiredWorkMinutes - d.ActualWorkMinutes; under > 0 {
			d.UnderworkMinutes = under
			d.UnderworkDeduction = snap.UnderworkDeduction(under)
		}

		if snap.OvertimeAllowed {
			if over := d.ActualWorkMinutes - snap.RequiredWorkMinutes; over > 0 {
				d.IsOvertime = true
				d.OvertimeMinutes = over
			}
		}
	}

	d.Status = deriveStatus(&d, isRemote)
	return d
}

// earlyLeaveMinutes measures how far before the scheduled end the
// clock-out landed. Overnight shifts compare on the wrapped scale so a
// 17:00 departure against a 02:00 end counts the hours to midnight too.
func earlyLeaveMinutes(snap *attendance.ShiftSnapshot, endMinutes int, clockOut time.Time) int {
	out := minutesOfDay(clockOut)
	if snap.IsOvernight && out > endMinutes {
		return (24*60 - out) + endMinutes
	}
	return endMinutes - out
}

// deriveStatus ranks the day's outcome: lateness wins over early leave,
// remote days report as WFH only when otherwise clean.
func deriveStatus(d *attendance.Derived, isRemote bool) attendance.Status {
	switch {
	case d.IsLate:
		return attendance.StatusLate
	case d.IsEarlyLeave:
		return attendance.StatusEarlyLeave
	case isRemote:
		return attendance.StatusWFH
	default:
		return attendance.StatusPresent
	}
}
