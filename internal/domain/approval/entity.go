package approval

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the shared state of every two-level request.
// Transitions are closed: supervisor acts only on PENDING_SUPERVISOR,
// HR acts only on PENDING_HR, and the three remaining states are
// terminal.
type RequestStatus string

const (
	StatusPendingSupervisor    RequestStatus = "pending_supervisor"
	StatusPendingHR            RequestStatus = "pending_hr"
	StatusApproved             RequestStatus = "approved"
	StatusRejectedBySupervisor RequestStatus = "rejected_by_supervisor"
	StatusRejectedByHR         RequestStatus = "rejected_by_hr"
)

func (s RequestStatus) IsPending() bool {
	return s == StatusPendingSupervisor || s == StatusPendingHR
}

func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejectedBySupervisor || s == StatusRejectedByHR
}

// Trail records the two approval levels. Embedded by both request
// kinds so the state machine lives in one place.
type Trail struct {
	Status            RequestStatus
	SupervisorID      *string
	SupervisorActedAt *time.Time
	SupervisorNote    *string
	HRID              *string
	HRActedAt         *time.Time
	HRNote            *string
}

func NewTrail() Trail {
	return Trail{Status: StatusPendingSupervisor}
}

func (t *Trail) stampSupervisor(actorID string, note *string, at time.Time) {
	t.SupervisorID = &actorID
	t.SupervisorActedAt = &at
	t.SupervisorNote = note
}

func (t *Trail) stampHR(actorID string, note *string, at time.Time) {
	t.HRID = &actorID
	t.HRActedAt = &at
	t.HRNote = note
}

// ApproveBySupervisor moves PENDING_SUPERVISOR to PENDING_HR.
func (t *Trail) ApproveBySupervisor(actorID string, note *string, at time.Time) error {
	if t.Status != StatusPendingSupervisor {
		return ErrInvalidTransition
	}
	t.Status = StatusPendingHR
	t.stampSupervisor(actorID, note, at)
	return nil
}

// RejectBySupervisor moves PENDING_SUPERVISOR to its terminal rejection.
func (t *Trail) RejectBySupervisor(actorID string, note *string, at time.Time) error {
	if t.Status != StatusPendingSupervisor {
		return ErrInvalidTransition
	}
	t.Status = StatusRejectedBySupervisor
	t.stampSupervisor(actorID, note, at)
	return nil
}

// ApproveByHR moves PENDING_HR to APPROVED.
func (t *Trail) ApproveByHR(actorID string, note *string, at time.Time) error {
	if t.Status != StatusPendingHR {
		return ErrInvalidTransition
	}
	t.Status = StatusApproved
	t.stampHR(actorID, note, at)
	return nil
}

// RejectByHR moves PENDING_HR to its terminal rejection.
func (t *Trail) RejectByHR(actorID string, note *string, at time.Time) error {
	if t.Status != StatusPendingHR {
		return ErrInvalidTransition
	}
	t.Status = StatusRejectedByHR
	t.stampHR(actorID, note, at)
	return nil
}

// WFHRequest asks to work from home on a single date.
type WFHRequest struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Reason     *string
	Trail
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// OvertimeRequest asks to be paid for extra hours on a single date.
// ActualMinutes is recorded after the work happened, approval gates it.
type OvertimeRequest struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	EstimatedHours decimal.Decimal
	ActualMinutes  *int
	Reason         *string
	Trail
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
