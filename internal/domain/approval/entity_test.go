package approval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailHappyPath(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	note := "ok"

	trail := NewTrail()
	require.Equal(t, StatusPendingSupervisor, trail.Status)

	require.NoError(t, trail.ApproveBySupervisor("sup-1", &note, now))
	assert.Equal(t, StatusPendingHR, trail.Status)
	require.NotNil(t, trail.SupervisorID)
	assert.Equal(t, "sup-1", *trail.SupervisorID)
	require.NotNil(t, trail.SupervisorActedAt)
	assert.True(t, trail.SupervisorActedAt.Equal(now))

	later := now.Add(2 * time.Hour)
	require.NoError(t, trail.ApproveByHR("hr-1", nil, later))
	assert.Equal(t, StatusApproved, trail.Status)
	require.NotNil(t, trail.HRID)
	assert.Equal(t, "hr-1", *trail.HRID)
	assert.True(t, trail.Status.IsTerminal())
}

func TestTrailRejections(t *testing.T) {
	now := time.Now()

	trail := NewTrail()
	require.NoError(t, trail.RejectBySupervisor("sup-1", nil, now))
	assert.Equal(t, StatusRejectedBySupervisor, trail.Status)

	trail = NewTrail()
	require.NoError(t, trail.ApproveBySupervisor("sup-1", nil, now))
	require.NoError(t, trail.RejectByHR("hr-1", nil, now))
	assert.Equal(t, StatusRejectedByHR, trail.Status)
}

func TestTrailInvalidTransitions(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		from RequestStatus
		act  func(tr *Trail) error
	}{
		{"hr approve before supervisor", StatusPendingSupervisor, func(tr *Trail) error {
			return tr.ApproveByHR("hr-1", nil, now)
		}},
		{"hr reject before supervisor", StatusPendingSupervisor, func(tr *Trail) error {
			return tr.RejectByHR("hr-1", nil, now)
		}},
		{"supervisor approve twice", StatusPendingHR, func(tr *Trail) error {
			return tr.ApproveBySupervisor("sup-1", nil, now)
		}},
		{"approve terminal", StatusApproved, func(tr *Trail) error {
			return tr.ApproveByHR("hr-1", nil, now)
		}},
		{"reject terminal", StatusRejectedBySupervisor, func(tr *Trail) error {
			return tr.RejectBySupervisor("sup-1", nil, now)
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			trail := Trail{Status: c.from}
			err := c.act(&trail)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, c.from, trail.Status, "a refused transition must not mutate the trail")
		})
	}
}

func TestRequestStatusPredicates(t *testing.T) {
	assert.True(t, StatusPendingSupervisor.IsPending())
	assert.True(t, StatusPendingHR.IsPending())
	assert.False(t, StatusApproved.IsPending())

	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejectedBySupervisor.IsTerminal())
	assert.True(t, StatusRejectedByHR.IsTerminal())
	assert.False(t, StatusPendingSupervisor.IsTerminal())
}
