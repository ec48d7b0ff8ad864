package employee

import (
	"time"
)

type Employee struct {
	ID               string
	AccountID        *string
	DepartmentID     string
	PositionID       string
	ApproverID       *string
	EmployeeCode     string
	FullName         string
	Email            string
	PhoneNumber      *string
	HireDate         time.Time
	ResignationDate  *time.Time
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusInactive   EmploymentStatus = "inactive"
	EmploymentStatusOnLeave    EmploymentStatus = "on_leave"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// IsActive reports whether the employee can clock in, be scheduled,
// and file requests.
func (e *Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive || e.EmploymentStatus == EmploymentStatusOnLeave
}

// Department is a tree via ParentID. Root departments have no parent.
type Department struct {
	ID        string
	Name      string
	ParentID  *string
	HeadID    *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type Position struct {
	ID        string
	Name      string
	Level     int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
