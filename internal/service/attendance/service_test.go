package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/approval"
	"github.com/akademika/hris-backend-go/internal/domain/attendance"
	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/domain/shift"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/akademika/hris-backend-go/internal/repository/memory"
	approvalsvc "github.com/akademika/hris-backend-go/internal/service/approval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver serves canned shift resolutions keyed by date.
type stubResolver struct {
	byDate map[string]*shift.ResolvedShift
}

func (s *stubResolver) Resolve(_ context.Context, _ string, date time.Time) (*shift.ResolvedShift, error) {
	if r, ok := s.byDate[date.Format(time.DateOnly)]; ok {
		return r, nil
	}
	return shift.Off(shift.SourceNone), nil
}

func workingDay(wfhAllowed bool) *shift.ResolvedShift {
	return &shift.ResolvedShift{
		IsWorkingDay: true,
		Source:       shift.SourceShiftSetting,
		Rule: &shift.WorkingHoursRule{
			ID:                  "rule-day",
			StartTime:           str("09:00"),
			EndTime:             str("17:00"),
			RequiredWorkMinutes: 420,
		},
		WFHAllowed: wfhAllowed,
	}
}

func overnightDay() *shift.ResolvedShift {
	return &shift.ResolvedShift{
		IsWorkingDay: true,
		Source:       shift.SourceShiftSetting,
		Rule: &shift.WorkingHoursRule{
			ID:                  "rule-night",
			StartTime:           str("22:00"),
			EndTime:             str("06:00"),
			IsOvernight:         true,
			RequiredWorkMinutes: 420,
		},
	}
}

func newTestWFHService(t *testing.T, seeded ...*approval.WFHRequest) approval.WFHService {
	t.Helper()
	requests := memory.NewWFHRepository()
	requests.Seed(seeded...)

	employees := memory.NewEmployeeRepository()
	employees.Seed(&employee.Employee{
		ID:               "emp-1",
		DepartmentID:     "dept-1",
		PositionID:       "pos-1",
		FullName:         "Test Employee",
		EmploymentStatus: employee.EmploymentStatusActive,
	})
	return approvalsvc.NewWFHService(requests, employees, clock.At("2025-03-10", "08:00"))
}

func TestClockInOnWorkingDay(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{"2025-03-10": workingDay(false)}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-10", "09:05"))

	rec, err := svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{
		Timestamp: "2025-03-10T09:05:00Z",
	})
	require.NoError(t, err)

	require.NotNil(t, rec.ClockInAt)
	assert.True(t, rec.Derived.IsLate)
	assert.Equal(t, 5, rec.Derived.LateMinutes)
	assert.Equal(t, attendance.StatusLate, rec.Derived.Status)
	assert.Equal(t, 420, rec.Snapshot.RequiredWorkMinutes)
}

func TestClockInTwiceSameDay(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{"2025-03-10": workingDay(false)}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-10", "09:00"))

	_, err := svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{Timestamp: "2025-03-10T09:00:00Z"})
	require.NoError(t, err)

	_, err = svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{Timestamp: "2025-03-10T09:30:00Z"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockInOnOffDay(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-09", "09:00"))

	_, err := svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{Timestamp: "2025-03-09T09:00:00Z"})
	assert.ErrorIs(t, err, attendance.ErrNotWorkingDay)
}

func TestClockInAfterShiftEnded(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{"2025-03-10": workingDay(false)}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-10", "18:00"))

	_, err := svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{Timestamp: "2025-03-10T18:00:00Z"})
	assert.ErrorIs(t, err, attendance.ErrShiftAlreadyEnded)
}

func TestClockInRemoteRequiresApproval(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{"2025-03-10": workingDay(true)}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-10", "09:00"))

	_, err := svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{
		Timestamp: "2025-03-10T09:00:00Z",
		IsRemote:  true,
	})
	assert.ErrorIs(t, err, attendance.ErrWFHNotApproved)
}

func TestClockInRemoteNotAllowedByShift(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{"2025-03-10": workingDay(false)}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-10", "09:00"))

	_, err := svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{
		Timestamp: "2025-03-10T09:00:00Z",
		IsRemote:  true,
	})
	assert.ErrorIs(t, err, attendance.ErrWFHNotAllowed)
}

func TestClockInRemoteWithApprovedRequest(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{"2025-03-10": workingDay(true)}}

	approved := &approval.WFHRequest{
		ID:         "wfh-1",
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Trail:      approval.Trail{Status: approval.StatusApproved},
	}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t, approved), clock.At("2025-03-10", "09:00"))

	rec, err := svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{
		Timestamp: "2025-03-10T09:00:00Z",
		IsRemote:  true,
	})
	require.NoError(t, err)
	assert.True(t, rec.IsRemote)
	assert.Equal(t, attendance.StatusWFH, rec.Derived.Status)
}

func TestClockOutSameDay(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{"2025-03-10": workingDay(false)}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-10", "17:00"))

	_, err := svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{Timestamp: "2025-03-10T09:00:00Z"})
	require.NoError(t, err)

	rec, err := svc.ClockOut(context.Background(), "emp-1", &attendance.ClockOutRequest{Timestamp: "2025-03-10T17:00:00Z"})
	require.NoError(t, err)

	require.NotNil(t, rec.ClockOutAt)
	assert.Equal(t, 480, rec.Derived.ActualWorkMinutes)
	assert.Equal(t, attendance.StatusPresent, rec.Derived.Status)
}

func TestClockOutWithoutClockIn(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-10", "17:00"))

	_, err := svc.ClockOut(context.Background(), "emp-1", &attendance.ClockOutRequest{Timestamp: "2025-03-10T17:00:00Z"})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOutTwice(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{"2025-03-10": workingDay(false)}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-10", "17:00"))

	_, err := svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{Timestamp: "2025-03-10T09:00:00Z"})
	require.NoError(t, err)
	_, err = svc.ClockOut(context.Background(), "emp-1", &attendance.ClockOutRequest{Timestamp: "2025-03-10T17:00:00Z"})
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), "emp-1", &attendance.ClockOutRequest{Timestamp: "2025-03-10T17:30:00Z"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestClockOutBeforeClockIn(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{"2025-03-10": workingDay(false)}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-10", "10:00"))

	_, err := svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{Timestamp: "2025-03-10T10:00:00Z"})
	require.NoError(t, err)

	_, err = svc.ClockOut(context.Background(), "emp-1", &attendance.ClockOutRequest{Timestamp: "2025-03-10T09:00:00Z"})
	assert.ErrorIs(t, err, attendance.ErrClockOutBeforeIn)
}

func TestOvernightClockOutNextCalendarDay(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{"2025-03-10": overnightDay()}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-10", "22:00"))

	_, err := svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{Timestamp: "2025-03-10T22:00:00Z"})
	require.NoError(t, err)

	rec, err := svc.ClockOut(context.Background(), "emp-1", &attendance.ClockOutRequest{Timestamp: "2025-03-11T06:00:00Z"})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", rec.Date.Format(time.DateOnly), "the record belongs to the shift's start day")
	assert.Equal(t, 480, rec.Derived.ActualWorkMinutes)
	assert.False(t, rec.Derived.IsEarlyLeave)
}

func TestGetTodayAndList(t *testing.T) {
	records := memory.NewAttendanceRepository()
	resolver := &stubResolver{byDate: map[string]*shift.ResolvedShift{"2025-03-10": workingDay(false)}}
	svc := NewAttendanceService(records, resolver, newTestWFHService(t), clock.At("2025-03-10", "12:00"))

	_, err := svc.GetToday(context.Background(), "emp-1")
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)

	_, err = svc.ClockIn(context.Background(), "emp-1", &attendance.ClockInRequest{Timestamp: "2025-03-10T09:00:00Z"})
	require.NoError(t, err)

	rec, err := svc.GetToday(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", rec.EmployeeID)

	list, err := svc.ListByEmployee(context.Background(), "emp-1",
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
