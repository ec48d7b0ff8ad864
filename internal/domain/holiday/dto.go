package holiday

import (
	"time"

	"github.com/akademika/hris-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name           string  `json:"name"`
	Date           string  `json:"date"`
	Type           string  `json:"type"`
	RepeatAnnually bool    `json:"repeat_annually"`
	Description    *string `json:"description,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !Type(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of national, company, collective_leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateHolidayRequest struct {
	Name           *string `json:"name,omitempty"`
	Date           *string `json:"date,omitempty"`
	Type           *string `json:"type,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
	RepeatAnnually *bool   `json:"repeat_annually,omitempty"`
	Description    *string `json:"description,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}
	if r.Type != nil && !Type(*r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of national, company, collective_leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Date           string  `json:"date"`
	Type           Type    `json:"type"`
	IsActive       bool    `json:"is_active"`
	RepeatAnnually bool    `json:"repeat_annually"`
	Description    *string `json:"description,omitempty"`
}

func NewHolidayResponse(h *Holiday) *HolidayResponse {
	return &HolidayResponse{
		ID:             h.ID,
		Name:           h.Name,
		Date:           h.Date.Format(time.DateOnly),
		Type:           h.Type,
		IsActive:       h.IsActive,
		RepeatAnnually: h.RepeatAnnually,
		Description:    h.Description,
	}
}
