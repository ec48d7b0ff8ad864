package attendance

import (
	"testing"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func str(s string) *string { return &s }

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func nextDay(hour, minute int) time.Time {
	return time.Date(2025, 3, 11, hour, minute, 0, 0, time.UTC)
}

func daySnapshot() attendance.ShiftSnapshot {
	return attendance.ShiftSnapshot{
		ScheduledStart:      str("09:00"),
		ScheduledEnd:        str("17:00"),
		RequiredWorkMinutes: 420,
	}
}

func TestDurationMinutes(t *testing.T) {
	day := daySnapshot()
	assert.Equal(t, 480, DurationMinutes(&day, at(9, 0), at(17, 0)))

	night := attendance.ShiftSnapshot{
		ScheduledStart: str("22:00"),
		ScheduledEnd:   str("06:00"),
		IsOvernight:    true,
	}
	assert.Equal(t, 480, DurationMinutes(&night, at(22, 0), nextDay(6, 0)))
	assert.Equal(t, 510, DurationMinutes(&night, at(21, 30), nextDay(6, 0)))
}

func TestCalculateOnTime(t *testing.T) {
	snap := daySnapshot()
	in := at(8, 55)
	out := at(17, 0)

	d := Calculate(&snap, &in, &out, false)

	assert.False(t, d.IsLate)
	assert.False(t, d.IsEarlyLeave)
	assert.Equal(t, 485, d.ActualWorkMinutes)
	assert.Equal(t, attendance.StatusPresent, d.Status)
	assert.True(t, d.LateDeduction.IsZero())
}

func TestCalculateLateWithCappedDeduction(t *testing.T) {
	snap := daySnapshot()
	snap.LateToleranceMinutes = 10
	snap.LateDeductionPerMinute = decimal.NewFromInt(1000)
	snap.LateDeductionMax = decimal.NewFromInt(50000)

	in := at(10, 40) // 100 minutes late
	out := at(17, 0)
	d := Calculate(&snap, &in, &out, false)

	assert.True(t, d.IsLate)
	assert.Equal(t, 100, d.LateMinutes)
	assert.True(t, d.LateDeduction.Equal(decimal.NewFromInt(50000)), "got %s", d.LateDeduction)
	assert.Equal(t, attendance.StatusLate, d.Status)
}

func TestCalculateEarlyLeave(t *testing.T) {
	snap := daySnapshot()
	in := at(9, 0)
	out := at(16, 0)

	d := Calculate(&snap, &in, &out, false)

	assert.True(t, d.IsEarlyLeave)
	assert.Equal(t, 60, d.EarlyLeaveMinutes)
	assert.True(t, d.EarlyLeaveDeduction.IsZero(), "early-leave rate defaults to zero")
	assert.Equal(t, attendance.StatusEarlyLeave, d.Status)
}

func TestCalculateLateWinsOverEarlyLeave(t *testing.T) {
	snap := daySnapshot()
	in := at(9, 30)
	out := at(16, 0)

	d := Calculate(&snap, &in, &out, false)

	assert.True(t, d.IsLate)
	assert.True(t, d.IsEarlyLeave)
	assert.Equal(t, attendance.StatusLate, d.Status)
}

func TestCalculateRemoteStatus(t *testing.T) {
	snap := daySnapshot()
	in := at(9, 0)
	out := at(17, 0)

	d := Calculate(&snap, &in, &out, true)
	assert.Equal(t, attendance.StatusWFH, d.Status)

	late := at(9, 30)
	d = Calculate(&snap, &late, &out, true)
	assert.Equal(t, attendance.StatusLate, d.Status, "a late remote day still reports late")
}

func TestCalculateUnderworkAndOvertime(t *testing.T) {
	snap := daySnapshot()
	snap.UnderworkDeductionPerMinute = decimal.NewFromInt(500)

	in := at(9, 0)
	short := at(15, 0) // 360 worked, 420 required
	d := Calculate(&snap, &in, &short, false)
	assert.Equal(t, 60, d.UnderworkMinutes)
	assert.True(t, d.UnderworkDeduction.Equal(decimal.NewFromInt(30000)))

	snap.OvertimeAllowed = true
	long := at(18, 0)
	d = Calculate(&snap, &in, &long, false)
	assert.True(t, d.IsOvertime)
	assert.Equal(t, 120, d.OvertimeMinutes)

	snap.OvertimeAllowed = false
	d = Calculate(&snap, &in, &long, false)
	assert.False(t, d.IsOvertime, "overtime is only counted when the pattern allows it")
	assert.Equal(t, 0, d.OvertimeMinutes)
}

func TestCalculateOvernightClockOutNextDay(t *testing.T) {
	snap := attendance.ShiftSnapshot{
		ScheduledStart:      str("22:00"),
		ScheduledEnd:        str("06:00"),
		IsOvernight:         true,
		RequiredWorkMinutes: 420,
	}
	in := at(22, 0)
	out := nextDay(6, 0)

	d := Calculate(&snap, &in, &out, false)

	assert.False(t, d.IsLate)
	assert.False(t, d.IsEarlyLeave)
	assert.Equal(t, 480, d.ActualWorkMinutes)
	assert.Equal(t, attendance.StatusPresent, d.Status)
}

func TestCalculateOvernightEarlyDeparture(t *testing.T) {
	snap := attendance.ShiftSnapshot{
		ScheduledStart:      str("22:00"),
		ScheduledEnd:        str("06:00"),
		IsOvernight:         true,
		RequiredWorkMinutes: 420,
	}
	in := at(22, 0)
	out := at(23, 30) // left before midnight, 6.5h before the 02:00-scale end

	d := Calculate(&snap, &in, &out, false)

	assert.True(t, d.IsEarlyLeave)
	assert.Equal(t, 390, d.EarlyLeaveMinutes)
}

func TestCalculateClockInOnly(t *testing.T) {
	snap := daySnapshot()
	in := at(9, 5)

	d := Calculate(&snap, &in, nil, false)

	assert.True(t, d.IsLate)
	assert.Equal(t, 5, d.LateMinutes)
	assert.Equal(t, 0, d.ActualWorkMinutes)
	assert.Equal(t, 0, d.UnderworkMinutes)
}

func TestCalculateNoClockIn(t *testing.T) {
	snap := daySnapshot()
	d := Calculate(&snap, nil, nil, false)
	assert.Equal(t, attendance.StatusAbsent, d.Status)
}
