package approval

import (
	"context"
	"testing"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/approval"
	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/akademika/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWFHFixture(t *testing.T) (approval.WFHService, *memory.WFHRepository) {
	t.Helper()
	requests := memory.NewWFHRepository()
	employees := memory.NewEmployeeRepository()
	employees.Seed(
		&employee.Employee{ID: "emp-1", DepartmentID: "eng", FullName: "Worker", EmploymentStatus: employee.EmploymentStatusActive},
		&employee.Employee{ID: "emp-gone", DepartmentID: "eng", FullName: "Former", EmploymentStatus: employee.EmploymentStatusTerminated},
	)
	return NewWFHService(requests, employees, clock.At("2025-03-07", "10:00")), requests
}

func TestWFHSubmit(t *testing.T) {
	svc, _ := newWFHFixture(t)

	req, err := svc.Submit(context.Background(), "emp-1", &approval.CreateWFHRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	assert.Equal(t, approval.StatusPendingSupervisor, req.Status)
	assert.Equal(t, "2025-03-10", req.Date.Format(time.DateOnly))
}

func TestWFHSubmitDuplicateDate(t *testing.T) {
	svc, _ := newWFHFixture(t)

	_, err := svc.Submit(context.Background(), "emp-1", &approval.CreateWFHRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "emp-1", &approval.CreateWFHRequest{Date: "2025-03-10"})
	assert.ErrorIs(t, err, approval.ErrDuplicateRequest)
}

func TestWFHSubmitAfterRejectionIsAllowed(t *testing.T) {
	svc, _ := newWFHFixture(t)

	first, err := svc.Submit(context.Background(), "emp-1", &approval.CreateWFHRequest{Date: "2025-03-10"})
	require.NoError(t, err)
	_, err = svc.RejectBySupervisor(context.Background(), first.ID, "sup-1", nil)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "emp-1", &approval.CreateWFHRequest{Date: "2025-03-10"})
	assert.NoError(t, err, "a rejected request does not block a new one for the same date")
}

func TestWFHSubmitInactiveEmployee(t *testing.T) {
	svc, _ := newWFHFixture(t)

	_, err := svc.Submit(context.Background(), "emp-gone", &approval.CreateWFHRequest{Date: "2025-03-10"})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestWFHTwoLevelApproval(t *testing.T) {
	svc, _ := newWFHFixture(t)
	ctx := context.Background()

	req, err := svc.Submit(ctx, "emp-1", &approval.CreateWFHRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	note := "looks fine"
	req, err = svc.ApproveBySupervisor(ctx, req.ID, "sup-1", &note)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusPendingHR, req.Status)

	req, err = svc.ApproveByHR(ctx, req.ID, "hr-1", nil)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, req.Status)

	approved, err := svc.HasApprovedForDate(ctx, "emp-1", time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, approved)
}

func TestWFHHRCannotActBeforeSupervisor(t *testing.T) {
	svc, _ := newWFHFixture(t)
	ctx := context.Background()

	req, err := svc.Submit(ctx, "emp-1", &approval.CreateWFHRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	_, err = svc.ApproveByHR(ctx, req.ID, "hr-1", nil)
	assert.ErrorIs(t, err, approval.ErrInvalidTransition)
}

func TestWFHSelfApproval(t *testing.T) {
	svc, _ := newWFHFixture(t)
	ctx := context.Background()

	req, err := svc.Submit(ctx, "emp-1", &approval.CreateWFHRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	_, err = svc.ApproveBySupervisor(ctx, req.ID, "emp-1", nil)
	assert.ErrorIs(t, err, approval.ErrSelfApproval)
}

func TestWFHHasApprovedForDateWhilePending(t *testing.T) {
	svc, _ := newWFHFixture(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "emp-1", &approval.CreateWFHRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	approved, err := svc.HasApprovedForDate(ctx, "emp-1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, approved)

	approved, err = svc.HasApprovedForDate(ctx, "emp-1", time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, approved, "no request at all for the date")
}

func TestWFHRejectionIsTerminal(t *testing.T) {
	svc, _ := newWFHFixture(t)
	ctx := context.Background()

	req, err := svc.Submit(ctx, "emp-1", &approval.CreateWFHRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	req, err = svc.RejectBySupervisor(ctx, req.ID, "sup-1", str("offsite day"))
	require.NoError(t, err)
	assert.Equal(t, approval.StatusRejectedBySupervisor, req.Status)

	_, err = svc.ApproveBySupervisor(ctx, req.ID, "sup-1", nil)
	assert.ErrorIs(t, err, approval.ErrInvalidTransition)
}
