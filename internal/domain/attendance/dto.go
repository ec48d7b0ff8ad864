package attendance

import (
	"time"

	"github.com/akademika/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ClockInRequest struct {
	Timestamp string   `json:"timestamp"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	PhotoURL  *string  `json:"photo_url,omitempty"`
	DeviceID  *string  `json:"device_id,omitempty"`
	IsRemote  bool     `json:"is_remote"`
	Notes     *string  `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "timestamp is required"})
	} else if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "timestamp must be a valid ISO8601 datetime"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	Timestamp string   `json:"timestamp"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	PhotoURL  *string  `json:"photo_url,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "timestamp is required"})
	} else if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "timestamp must be a valid ISO8601 datetime"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID                  string           `json:"id"`
	EmployeeID          string           `json:"employee_id"`
	Date                string           `json:"date"`
	ClockInAt           *time.Time       `json:"clock_in_at,omitempty"`
	ClockOutAt          *time.Time       `json:"clock_out_at,omitempty"`
	Status              Status           `json:"status"`
	IsRemote            bool             `json:"is_remote"`
	IsLate              bool             `json:"is_late"`
	LateMinutes         int              `json:"late_minutes"`
	LateDeduction       decimal.Decimal  `json:"late_deduction"`
	IsEarlyLeave        bool             `json:"is_early_leave"`
	EarlyLeaveMinutes   int              `json:"early_leave_minutes"`
	EarlyLeaveDeduction decimal.Decimal  `json:"early_leave_deduction"`
	IsOvertime          bool             `json:"is_overtime"`
	OvertimeMinutes     int              `json:"overtime_minutes"`
	ActualWorkMinutes   int              `json:"actual_work_minutes"`
	RequiredWorkMinutes int              `json:"required_work_minutes"`
	UnderworkMinutes    int              `json:"underwork_minutes"`
	UnderworkDeduction  decimal.Decimal  `json:"underwork_deduction"`
	Notes               *string          `json:"notes,omitempty"`
}

func NewRecordResponse(rec *Record) *RecordResponse {
	return &RecordResponse{
		ID:                  rec.ID,
		EmployeeID:          rec.EmployeeID,
		Date:                rec.Date.Format(time.DateOnly),
		ClockInAt:           rec.ClockInAt,
		ClockOutAt:          rec.ClockOutAt,
		Status:              rec.Derived.Status,
		IsRemote:            rec.IsRemote,
		IsLate:              rec.Derived.IsLate,
		LateMinutes:         rec.Derived.LateMinutes,
		LateDeduction:       rec.Derived.LateDeduction,
		IsEarlyLeave:        rec.Derived.IsEarlyLeave,
		EarlyLeaveMinutes:   rec.Derived.EarlyLeaveMinutes,
		EarlyLeaveDeduction: rec.Derived.EarlyLeaveDeduction,
		IsOvertime:          rec.Derived.IsOvertime,
		OvertimeMinutes:     rec.Derived.OvertimeMinutes,
		ActualWorkMinutes:   rec.Derived.ActualWorkMinutes,
		RequiredWorkMinutes: rec.Snapshot.RequiredWorkMinutes,
		UnderworkMinutes:    rec.Derived.UnderworkMinutes,
		UnderworkDeduction:  rec.Derived.UnderworkDeduction,
		Notes:               rec.Notes,
	}
}
