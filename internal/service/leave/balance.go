package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akademika/hris-backend-go/internal/domain/leave"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
)

type balanceEngine struct {
	balances           leave.BalanceRepository
	defaultAnnualQuota int
	carryForwardMonths int
	clk                clock.Clock
}

func NewBalanceEngine(balances leave.BalanceRepository, defaultAnnualQuota, carryForwardMonths int, clk clock.Clock) leave.BalanceEngine {
	return &balanceEngine{
		balances:           balances,
		defaultAnnualQuota: defaultAnnualQuota,
		carryForwardMonths: carryForwardMonths,
		clk:                clk,
	}
}

func (e *balanceEngine) EnsureYear(ctx context.Context, employeeID string, year int) (*leave.Balance, error) {
	b, err := e.balances.GetByEmployeeAndYear(ctx, employeeID, year)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, leave.ErrBalanceNotFound) {
		return nil, fmt.Errorf("failed to load leave balance: %w", err)
	}

	now := e.clk.Now()
	b = &leave.Balance{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		Year:        year,
		AnnualQuota: e.defaultAnnualQuota,
		Balance:     e.defaultAnnualQuota,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.balances.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to initialize leave balance: %w", err)
	}

	slog.Info("leave balance initialized", "employee_id", employeeID, "year", year, "quota", b.AnnualQuota)
	return b, nil
}

func (e *balanceEngine) Deduct(ctx context.Context, employeeID string, year int, days int) (*leave.Balance, error) {
	b, err := e.EnsureYear(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	if err := b.Deduct(days); err != nil {
		return nil, err
	}
	b.UpdatedAt = e.clk.Now()

	if err := e.balances.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update leave balance: %w", err)
	}
	return b, nil
}

func (e *balanceEngine) Reimburse(ctx context.Context, employeeID string, year int, days int) (*leave.Balance, error) {
	b, err := e.balances.GetByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	b.Reimburse(days)
	b.UpdatedAt = e.clk.Now()

	if err := e.balances.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update leave balance: %w", err)
	}
	return b, nil
}

// RolloverToNextYear closes a year and opens the next one. Unused days
// carry over up to half the annual quota; the remainder lapses into
// ExpiredBalance and the carried days stay usable until the configured
// number of months into the new year.
func (e *balanceEngine) RolloverToNextYear(ctx context.Context, employeeID string, fromYear int) (*leave.Balance, error) {
	from, err := e.balances.GetByEmployeeAndYear(ctx, employeeID, fromYear)
	if err != nil {
		return nil, err
	}

	if _, err := e.balances.GetByEmployeeAndYear(ctx, employeeID, fromYear+1); err == nil {
		return nil, leave.ErrBalanceAlreadyExists
	} else if !errors.Is(err, leave.ErrBalanceNotFound) {
		return nil, fmt.Errorf("failed to check next year balance: %w", err)
	}

	// Deduct already moved used days out of Balance, so Balance is the
	// remaining grant.
	unused := from.Balance
	if unused < 0 {
		unused = 0
	}
	maxCarry := from.AnnualQuota / 2
	carry := unused
	if carry > maxCarry {
		carry = maxCarry
	}
	expired := unused - maxCarry
	if expired < 0 {
		expired = 0
	}

	now := e.clk.Now()
	expiry := now.AddDate(0, e.carryForwardMonths, 0)
	next := &leave.Balance{
		ID:                       uuid.NewString(),
		EmployeeID:               employeeID,
		Year:                     fromYear + 1,
		AnnualQuota:              from.AnnualQuota,
		Balance:                  from.AnnualQuota,
		Used:                     0,
		CarriedForward:           carry,
		CarriedForwardExpiryDate: &expiry,
		ExpiredBalance:           expired,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	if err := e.balances.Create(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to create next year balance: %w", err)
	}

	slog.Info("leave balance rolled over",
		"employee_id", employeeID,
		"from_year", fromYear,
		"carried_forward", carry,
		"expired", expired,
	)
	return next, nil
}

// ExpireCarriedForward sweeps every balance whose carry-forward window
// has closed. Running the sweep twice is harmless: a lapsed balance has
// no carried days left to move.
func (e *balanceEngine) ExpireCarriedForward(ctx context.Context) (int, error) {
	now := e.clk.Now()
	expirable, err := e.balances.ListExpirable(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to list expirable balances: %w", err)
	}

	count := 0
	for _, b := range expirable {
		if !b.ExpireCarriedForward(now) {
			continue
		}
		b.UpdatedAt = now
		if err := e.balances.Update(ctx, b); err != nil {
			return count, fmt.Errorf("failed to expire balance %s: %w", b.ID, err)
		}
		count++
	}

	if count > 0 {
		slog.Info("carried-forward leave expired", "balances", count)
	}
	return count, nil
}

func (e *balanceEngine) GetBalance(ctx context.Context, employeeID string, year int) (*leave.Balance, error) {
	return e.balances.GetByEmployeeAndYear(ctx, employeeID, year)
}
