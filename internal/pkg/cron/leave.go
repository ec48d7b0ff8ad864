package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/leave"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
)

type LeaveJobs struct {
	balanceEngine leave.BalanceEngine
	balanceRepo   leave.BalanceRepository
	clk           clock.Clock
}

func NewLeaveJobs(balanceEngine leave.BalanceEngine, balanceRepo leave.BalanceRepository, clk clock.Clock) *LeaveJobs {
	return &LeaveJobs{
		balanceEngine: balanceEngine,
		balanceRepo:   balanceRepo,
		clk:           clk,
	}
}

func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("expire_carried_forward_leave", 1*time.Hour, j.ExpireCarriedForward)
	scheduler.AddJob("rollover_leave_balances", 1*time.Hour, j.RolloverBalances)
}

// ExpireCarriedForward lapses carried-forward days whose window has
// closed. The sweep is idempotent, so the midnight gate only avoids
// redundant scans.
func (j *LeaveJobs) ExpireCarriedForward(ctx context.Context) error {
	// Only run in the 00:00-00:59 UTC window
	if j.clk.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("starting carried-forward expiry sweep")

	count, err := j.balanceEngine.ExpireCarriedForward(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire carried-forward balances: %w", err)
	}

	slog.Info("carried-forward expiry sweep finished", "expired_count", count)
	return nil
}

// RolloverBalances opens the new year's balances on January 1st. Every
// previous-year balance rolls over once; reruns skip balances whose new
// year already exists.
func (j *LeaveJobs) RolloverBalances(ctx context.Context) error {
	now := j.clk.Now().UTC()

	// Only run on January 1st in the 00:00-00:59 UTC window
	if now.Month() != time.January || now.Day() != 1 || now.Hour() != 0 {
		return nil
	}

	fromYear := now.Year() - 1
	slog.Info("starting yearly leave balance rollover", "from_year", fromYear)

	balances, err := j.balanceRepo.ListByYear(ctx, fromYear)
	if err != nil {
		return fmt.Errorf("failed to list balances for rollover: %w", err)
	}

	rolledCount := 0
	for _, b := range balances {
		if _, err := j.balanceEngine.RolloverToNextYear(ctx, b.EmployeeID, fromYear); err != nil {
			if errors.Is(err, leave.ErrBalanceAlreadyExists) {
				continue
			}
			slog.Error("failed to roll over leave balance",
				"employee_id", b.EmployeeID,
				"from_year", fromYear,
				"error", err)
			continue
		}
		rolledCount++
	}

	slog.Info("yearly leave balance rollover finished", "rolled_count", rolledCount)
	return nil
}
