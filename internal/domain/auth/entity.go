package auth

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// CanActAsHR reports whether the role may take the HR approval level.
func (r Role) CanActAsHR() bool {
	return r == RoleAdmin || r == RoleHR
}

type Account struct {
	ID           string
	EmployeeID   *string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
