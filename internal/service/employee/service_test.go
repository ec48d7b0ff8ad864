package employee

import (
	"context"
	"testing"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/pkg/clock"
	"github.com/akademika/hris-backend-go/internal/pkg/database"
	"github.com/akademika/hris-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	employees *memory.EmployeeRepository
	histories *memory.HistoryRepository
	svc       employee.Service
}

func newFixture(clk clock.Clock) *fixture {
	f := &fixture{
		employees: memory.NewEmployeeRepository(),
		histories: memory.NewHistoryRepository(),
	}

	departments := memory.NewDepartmentRepository()
	positions := memory.NewPositionRepository()
	departments.Seed(
		&employee.Department{ID: "eng", Name: "Engineering"},
		&employee.Department{ID: "qa", Name: "Quality Assurance"},
	)
	positions.Seed(
		&employee.Position{ID: "pos-jr", Name: "Junior Engineer", Level: 1},
		&employee.Position{ID: "pos-sr", Name: "Senior Engineer", Level: 3},
	)
	f.employees.Seed(&employee.Employee{
		ID:               "emp-1",
		DepartmentID:     "eng",
		PositionID:       "pos-jr",
		EmployeeCode:     "AKD-001",
		FullName:         "Worker",
		Email:            "worker@akademika.id",
		EmploymentStatus: employee.EmploymentStatusActive,
	})

	f.svc = NewEmployeeService(f.employees, departments, positions, f.histories, database.NopTransactor{}, clk)
	return f
}

func TestChangeAssignment(t *testing.T) {
	f := newFixture(clock.At("2025-03-01", "09:00"))
	ctx := context.Background()

	// Seed the open job row the change is supposed to close.
	require.NoError(t, f.histories.AppendJob(ctx, &employee.JobHistory{
		ID:           "job-1",
		EmployeeID:   "emp-1",
		DepartmentID: "eng",
		PositionID:   "pos-jr",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}))

	emp, err := f.svc.ChangeAssignment(ctx, "emp-1", &employee.ChangeAssignmentRequest{
		DepartmentID:  "qa",
		PositionID:    "pos-sr",
		EffectiveFrom: "2025-04-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "qa", emp.DepartmentID)
	assert.Equal(t, "pos-sr", emp.PositionID)

	jobs, err := f.histories.ListJobs(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	var closed, open int
	for _, row := range jobs {
		if row.IsCurrent() {
			open++
			assert.Equal(t, "qa", row.DepartmentID)
			assert.Equal(t, "2025-04-01", row.StartDate.Format(time.DateOnly))
		} else {
			closed++
			require.NotNil(t, row.EndDate)
			assert.Equal(t, "2025-03-31", row.EndDate.Format(time.DateOnly))
		}
	}
	assert.Equal(t, 1, open)
	assert.Equal(t, 1, closed)

	// The change survives a reload.
	reloaded, err := f.svc.GetByID(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "qa", reloaded.DepartmentID)
}

func TestChangeAssignmentUnknownDepartment(t *testing.T) {
	f := newFixture(clock.At("2025-03-01", "09:00"))

	_, err := f.svc.ChangeAssignment(context.Background(), "emp-1", &employee.ChangeAssignmentRequest{
		DepartmentID:  "marketing",
		PositionID:    "pos-sr",
		EffectiveFrom: "2025-04-01",
	})
	assert.ErrorIs(t, err, employee.ErrDepartmentNotFound)
}

func TestChangeSalary(t *testing.T) {
	f := newFixture(clock.At("2025-03-01", "09:00"))
	ctx := context.Background()

	row, err := f.svc.ChangeSalary(ctx, "emp-1", &employee.ChangeSalaryRequest{
		Amount:        decimal.NewFromInt(15000000),
		EffectiveFrom: "2025-04-01",
		Reason:        strPtr("annual review"),
	})
	require.NoError(t, err)
	assert.True(t, row.Amount.Equal(decimal.NewFromInt(15000000)))
	assert.True(t, row.IsCurrent())

	// A second change closes the first row.
	_, err = f.svc.ChangeSalary(ctx, "emp-1", &employee.ChangeSalaryRequest{
		Amount:        decimal.NewFromInt(17000000),
		EffectiveFrom: "2026-04-01",
	})
	require.NoError(t, err)

	salaries, err := f.histories.ListSalaries(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, salaries, 2)

	current := 0
	for _, s := range salaries {
		if s.IsCurrent() {
			current++
			assert.True(t, s.Amount.Equal(decimal.NewFromInt(17000000)))
		}
	}
	assert.Equal(t, 1, current)
}

func TestChangeSalaryUnknownEmployee(t *testing.T) {
	f := newFixture(clock.At("2025-03-01", "09:00"))

	_, err := f.svc.ChangeSalary(context.Background(), "ghost", &employee.ChangeSalaryRequest{
		Amount:        decimal.NewFromInt(1000000),
		EffectiveFrom: "2025-04-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetHistories(t *testing.T) {
	f := newFixture(clock.At("2025-03-01", "09:00"))
	ctx := context.Background()

	require.NoError(t, f.histories.AppendContract(ctx, &employee.ContractHistory{
		ID: "ct-1", EmployeeID: "emp-1", ContractType: "permanent",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}))

	histories, err := f.svc.GetHistories(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, histories.Contracts, 1)
	assert.Empty(t, histories.Salaries)
	assert.Empty(t, histories.Jobs)

	_, err = f.svc.GetHistories(ctx, "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func strPtr(s string) *string { return &s }
