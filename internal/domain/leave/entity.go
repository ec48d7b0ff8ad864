package leave

import (
	"time"
)

type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypeMaternity Type = "maternity"
	TypeMarriage  Type = "marriage"
	TypeSpecial   Type = "special"
	TypeUnpaid    Type = "unpaid"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeAnnual, TypeSick, TypeMaternity, TypeMarriage, TypeSpecial, TypeUnpaid:
		return true
	}
	return false
}

// DeductsFromBalance reports whether an approved request of this type
// consumes the annual balance.
func (t Type) DeductsFromBalance() bool {
	return t == TypeAnnual
}

// Balance is the yearly annual-leave account for one employee.
// CarriedForward holds last year's surviving surplus until its expiry
// date; ExpiredBalance accumulates what lapsed.
type Balance struct {
	ID                       string
	EmployeeID               string
	Year                     int
	AnnualQuota              int
	Balance                  int
	Used                     int
	CarriedForward           int
	CarriedForwardExpiryDate *time.Time
	ExpiredBalance           int
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// Deduct consumes days from the current-year balance.
func (b *Balance) Deduct(days int) error {
	if days <= 0 {
		return ErrInvalidDays
	}
	if b.Balance < days {
		return ErrInsufficientBalance
	}
	b.Balance -= days
	b.Used += days
	return nil
}

// Reimburse returns days after an approved request is cancelled.
func (b *Balance) Reimburse(days int) {
	if days <= 0 {
		return
	}
	b.Balance += days
	if b.Used >= days {
		b.Used -= days
	} else {
		b.Used = 0
	}
}

// ExpireCarriedForward lapses the carried-forward surplus once its
// expiry date has passed. Idempotent; returns true when something
// actually expired.
func (b *Balance) ExpireCarriedForward(now time.Time) bool {
	if b.CarriedForward <= 0 || b.CarriedForwardExpiryDate == nil {
		return false
	}
	if now.Before(*b.CarriedForwardExpiryDate) {
		return false
	}
	b.ExpiredBalance += b.CarriedForward
	b.CarriedForward = 0
	return true
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Request walks the department approval chain via CurrentApproverID.
type Request struct {
	ID                string
	EmployeeID        string
	Type              Type
	StartDate         time.Time
	EndDate           time.Time
	TotalDays         int
	Reason            *string
	Status            RequestStatus
	CurrentApproverID *string
	ApprovedBy        *string
	ApprovedAt        *time.Time
	RejectedBy        *string
	RejectionReason   *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}
