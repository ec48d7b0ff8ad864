package approval

import (
	"github.com/akademika/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateWFHRequest struct {
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

func (r *CreateWFHRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateOvertimeRequest struct {
	Date           string          `json:"date"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	Reason         *string         `json:"reason,omitempty"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !r.EstimatedHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "estimated_hours", Message: "estimated hours must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecisionRequest struct {
	Note *string `json:"note,omitempty"`
}

type ActualDurationRequest struct {
	ActualMinutes int `json:"actual_minutes"`
}

func (r *ActualDurationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ActualMinutes <= 0 {
		errs = append(errs, validator.ValidationError{Field: "actual_minutes", Message: "actual minutes must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
