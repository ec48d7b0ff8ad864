package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
	StatusLeave      Status = "leave"
	StatusSick       Status = "sick"
	StatusAbsent     Status = "absent"
	StatusWFH        Status = "wfh"
)

// ShiftSnapshot is the deduction-relevant slice of the working-hours
// rule and shift pattern, denormalized into the attendance record at
// clock-in. Records stay historically correct when rules are edited
// later.
type ShiftSnapshot struct {
	ScheduledStart               *string
	ScheduledEnd                 *string
	IsOvernight                  bool
	RequiredWorkMinutes          int
	BreakMinutes                 int
	LateToleranceMinutes         int
	EarlyLeaveToleranceMinutes   int
	LateDeductionPerMinute       decimal.Decimal
	LateDeductionMax             decimal.Decimal
	EarlyLeaveDeductionPerMinute decimal.Decimal
	EarlyLeaveDeductionMax       decimal.Decimal
	UnderworkDeductionPerMinute  decimal.Decimal
	UnderworkDeductionMax        decimal.Decimal
	OvertimeAllowed              bool
}

func capped(minutes int, rate, max decimal.Decimal) decimal.Decimal {
	if minutes <= 0 || rate.IsZero() {
		return decimal.Zero
	}
	amount := rate.Mul(decimal.NewFromInt(int64(minutes)))
	if max.IsPositive() && amount.GreaterThan(max) {
		amount = max
	}
	return amount.Round(2)
}

// LateDeduction bills lateness beyond the tolerance window at the
// snapshotted rate.
func (s *ShiftSnapshot) LateDeduction(lateMinutes int) decimal.Decimal {
	return capped(lateMinutes-s.LateToleranceMinutes, s.LateDeductionPerMinute, s.LateDeductionMax)
}

// EarlyLeaveDeduction bills early departure beyond its tolerance. The
// rate defaults to zero.
func (s *ShiftSnapshot) EarlyLeaveDeduction(earlyMinutes int) decimal.Decimal {
	return capped(earlyMinutes-s.EarlyLeaveToleranceMinutes, s.EarlyLeaveDeductionPerMinute, s.EarlyLeaveDeductionMax)
}

// UnderworkDeduction bills the full shortfall, no tolerance applies.
func (s *ShiftSnapshot) UnderworkDeduction(underworkMinutes int) decimal.Decimal {
	return capped(underworkMinutes, s.UnderworkDeductionPerMinute, s.UnderworkDeductionMax)
}

// Derived holds everything computed from the raw clock events against
// the snapshot.
type Derived struct {
	IsLate              bool
	LateMinutes         int
	LateDeduction       decimal.Decimal
	IsEarlyLeave        bool
	EarlyLeaveMinutes   int
	EarlyLeaveDeduction decimal.Decimal
	IsOvertime          bool
	OvertimeMinutes     int
	ActualWorkMinutes   int
	UnderworkMinutes    int
	UnderworkDeduction  decimal.Decimal
	Status              Status
}

// Record is one attendance row per employee-day. Created at clock-in,
// mutated once at clock-out, then immutable apart from soft delete.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time

	ClockInAt       *time.Time
	ClockInLat      *float64
	ClockInLong     *float64
	ClockInPhotoURL *string
	ClockInDeviceID *string
	IsRemote        bool

	ClockOutAt       *time.Time
	ClockOutLat      *float64
	ClockOutLong     *float64
	ClockOutPhotoURL *string

	Snapshot ShiftSnapshot
	Derived  Derived

	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsClockedIn reports whether the record has an open clock-in without
// a clock-out.
func (r *Record) IsClockedIn() bool {
	return r.ClockInAt != nil && r.ClockOutAt == nil
}
