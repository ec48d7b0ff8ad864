package leave

import "errors"

var (
	ErrBalanceNotFound      = errors.New("leave balance not found")
	ErrBalanceAlreadyExists = errors.New("leave balance already initialized for this year")
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrInvalidDays          = errors.New("days must be positive")
	ErrRequestNotFound      = errors.New("leave request not found")
	ErrOverlappingRequest   = errors.New("an overlapping leave request already exists")
	ErrInvalidTransition    = errors.New("operation not allowed in the current status")
	ErrInvalidDateRange     = errors.New("end date cannot be before start date")
	ErrInvalidLeaveType     = errors.New("invalid leave type")
)
