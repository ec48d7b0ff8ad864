package leave

import (
	"time"

	"github.com/akademika/hris-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	Type      string  `json:"type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Type(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "invalid leave type"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date cannot be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "rejection reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BalanceResponse struct {
	EmployeeID               string  `json:"employee_id"`
	Year                     int     `json:"year"`
	AnnualQuota              int     `json:"annual_quota"`
	Balance                  int     `json:"balance"`
	Used                     int     `json:"used"`
	CarriedForward           int     `json:"carried_forward"`
	CarriedForwardExpiryDate *string `json:"carried_forward_expiry_date,omitempty"`
	ExpiredBalance           int     `json:"expired_balance"`
}

func NewBalanceResponse(b *Balance) *BalanceResponse {
	resp := &BalanceResponse{
		EmployeeID:     b.EmployeeID,
		Year:           b.Year,
		AnnualQuota:    b.AnnualQuota,
		Balance:        b.Balance,
		Used:           b.Used,
		CarriedForward: b.CarriedForward,
		ExpiredBalance: b.ExpiredBalance,
	}
	if b.CarriedForwardExpiryDate != nil {
		formatted := b.CarriedForwardExpiryDate.Format(time.DateOnly)
		resp.CarriedForwardExpiryDate = &formatted
	}
	return resp
}
