package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// History rows are append-only. The current row for an employee is the
// one whose EndDate is nil; changing a contract, salary, or assignment
// closes the open row and inserts a new one.

type ContractHistory struct {
	ID           string
	EmployeeID   string
	ContractType string
	StartDate    time.Time
	EndDate      *time.Time
	Notes        *string
	CreatedAt    time.Time
}

type SalaryHistory struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time
	Reason     *string
	CreatedAt  time.Time
}

type JobHistory struct {
	ID           string
	EmployeeID   string
	DepartmentID string
	PositionID   string
	StartDate    time.Time
	EndDate      *time.Time
	Notes        *string
	CreatedAt    time.Time
}

// IsCurrent reports whether the row is the open one.
func (c *ContractHistory) IsCurrent() bool { return c.EndDate == nil }

func (s *SalaryHistory) IsCurrent() bool { return s.EndDate == nil }

func (j *JobHistory) IsCurrent() bool { return j.EndDate == nil }
