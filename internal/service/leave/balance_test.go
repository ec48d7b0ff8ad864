package leave

import (
	"context"
	"testing"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/leave"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/akademika/hris-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(clk clock.Clock) (leave.BalanceEngine, *memory.LeaveBalanceRepository) {
	balances := memory.NewLeaveBalanceRepository()
	return NewBalanceEngine(balances, 12, 6, clk), balances
}

func TestEnsureYearCreatesWithDefaultQuota(t *testing.T) {
	engine, _ := newEngine(clock.At("2025-01-15", ""))

	b, err := engine.EnsureYear(context.Background(), "emp-1", 2025)
	require.NoError(t, err)

	assert.Equal(t, 12, b.AnnualQuota)
	assert.Equal(t, 12, b.Balance)
	assert.Equal(t, 0, b.Used)

	// Second call returns the same balance instead of resetting it.
	_, err = engine.Deduct(context.Background(), "emp-1", 2025, 4)
	require.NoError(t, err)
	again, err := engine.EnsureYear(context.Background(), "emp-1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 8, again.Balance)
}

func TestDeductInsufficientLeavesBalanceUntouched(t *testing.T) {
	engine, _ := newEngine(clock.At("2025-01-15", ""))

	_, err := engine.Deduct(context.Background(), "emp-1", 2025, 20)
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	b, err := engine.GetBalance(context.Background(), "emp-1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 12, b.Balance)
	assert.Equal(t, 0, b.Used)
}

func TestReimburse(t *testing.T) {
	engine, _ := newEngine(clock.At("2025-01-15", ""))

	_, err := engine.Deduct(context.Background(), "emp-1", 2025, 5)
	require.NoError(t, err)

	b, err := engine.Reimburse(context.Background(), "emp-1", 2025, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, b.Balance)
	assert.Equal(t, 0, b.Used)
}

func TestRolloverCarriesUpToHalfQuota(t *testing.T) {
	engine, _ := newEngine(clock.At("2026-01-01", ""))

	_, err := engine.EnsureYear(context.Background(), "emp-1", 2025)
	require.NoError(t, err)
	_, err = engine.Deduct(context.Background(), "emp-1", 2025, 9)
	require.NoError(t, err)

	// 3 days unused, under the 6-day cap: everything carries.
	next, err := engine.RolloverToNextYear(context.Background(), "emp-1", 2025)
	require.NoError(t, err)

	assert.Equal(t, 2026, next.Year)
	assert.Equal(t, 12, next.Balance)
	assert.Equal(t, 3, next.CarriedForward)
	assert.Equal(t, 0, next.ExpiredBalance)
	require.NotNil(t, next.CarriedForwardExpiryDate)
	assert.Equal(t, "2026-07-01", next.CarriedForwardExpiryDate.Format(time.DateOnly))
}

func TestRolloverAfterPartialUseCapsCarry(t *testing.T) {
	engine, _ := newEngine(clock.At("2026-01-01", ""))

	_, err := engine.EnsureYear(context.Background(), "emp-1", 2025)
	require.NoError(t, err)
	_, err = engine.Deduct(context.Background(), "emp-1", 2025, 3)
	require.NoError(t, err)

	// 9 days remain after deduction; the cap trims the carry to 6.
	next, err := engine.RolloverToNextYear(context.Background(), "emp-1", 2025)
	require.NoError(t, err)

	assert.Equal(t, 6, next.CarriedForward)
	assert.Equal(t, 3, next.ExpiredBalance)
}

func TestRolloverExpiresSurplusOverCap(t *testing.T) {
	engine, _ := newEngine(clock.At("2026-01-01", ""))

	// Fully unused year: 12 unused, cap is 6.
	_, err := engine.EnsureYear(context.Background(), "emp-1", 2025)
	require.NoError(t, err)

	next, err := engine.RolloverToNextYear(context.Background(), "emp-1", 2025)
	require.NoError(t, err)

	assert.Equal(t, 6, next.CarriedForward)
	assert.Equal(t, 6, next.ExpiredBalance)
}

func TestRolloverTwiceFails(t *testing.T) {
	engine, _ := newEngine(clock.At("2026-01-01", ""))

	_, err := engine.EnsureYear(context.Background(), "emp-1", 2025)
	require.NoError(t, err)
	_, err = engine.RolloverToNextYear(context.Background(), "emp-1", 2025)
	require.NoError(t, err)

	_, err = engine.RolloverToNextYear(context.Background(), "emp-1", 2025)
	assert.ErrorIs(t, err, leave.ErrBalanceAlreadyExists)
}

func TestRolloverUnknownYear(t *testing.T) {
	engine, _ := newEngine(clock.At("2026-01-01", ""))

	_, err := engine.RolloverToNextYear(context.Background(), "emp-1", 2025)
	assert.ErrorIs(t, err, leave.ErrBalanceNotFound)
}

func TestExpireCarriedForwardSweep(t *testing.T) {
	expiry := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	engine, balances := newEngine(clock.At("2025-07-01", ""))
	balances.Seed(
		&leave.Balance{ID: "bal-1", EmployeeID: "emp-1", Year: 2025, AnnualQuota: 12, Balance: 12, CarriedForward: 4, CarriedForwardExpiryDate: &expiry},
		&leave.Balance{ID: "bal-2", EmployeeID: "emp-2", Year: 2025, AnnualQuota: 12, Balance: 12},
	)

	count, err := engine.ExpireCarriedForward(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	b, err := engine.GetBalance(context.Background(), "emp-1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 0, b.CarriedForward)
	assert.Equal(t, 4, b.ExpiredBalance)

	// Second sweep is a no-op.
	count, err = engine.ExpireCarriedForward(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
