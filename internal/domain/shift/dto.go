package shift

import (
	"time"

	"github.com/akademika/hris-backend-go/internal/pkg/validator"
)

type BulkAssignRequest struct {
	EmployeeIDs    []string `json:"employee_ids"`
	ShiftPatternID string   `json:"shift_pattern_id"`
	EffectiveFrom  string   `json:"effective_from"`
	Reason         *string  `json:"reason,omitempty"`
}

func (r *BulkAssignRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}
	if validator.IsEmpty(r.ShiftPatternID) {
		errs = append(errs, validator.ValidationError{Field: "shift_pattern_id", Message: "shift pattern is required"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "effective_from must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bulk assignment failure classification.
const (
	FailureEmployeeNotFound = "EMPLOYEE_NOT_FOUND"
	FailureInactive         = "INACTIVE"
	FailureOverlap          = "OVERLAP"
	FailureUnknown          = "UNKNOWN"

	SkipSamePattern = "SAME_PATTERN"
)

type BulkAssignSuccess struct {
	EmployeeID        string     `json:"employee_id"`
	EmployeeName      string     `json:"employee_name"`
	SettingID         string     `json:"setting_id"`
	PreviousShiftName *string    `json:"previous_shift_name,omitempty"`
	NewShiftName      string     `json:"new_shift_name"`
	EffectiveFrom     time.Time  `json:"effective_from"`
	PreviousClosedOn  *time.Time `json:"previous_closed_on,omitempty"`
}

type BulkAssignFailure struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

type BulkAssignSkip struct {
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name"`
	SkipReason       string `json:"skip_reason"`
	CurrentShiftName string `json:"current_shift_name"`
}

// BulkAssignResult partitions a bulk assignment. The operation never
// aborts on the first error; every employee lands in exactly one list.
type BulkAssignResult struct {
	Succeeded       []BulkAssignSuccess `json:"succeeded"`
	Failed          []BulkAssignFailure `json:"failed"`
	Skipped         []BulkAssignSkip    `json:"skipped"`
	Retroactive     bool                `json:"retroactive"`
	RetroactiveDays int                 `json:"retroactive_days"`
}

func (r *BulkAssignResult) TotalProcessed() int {
	return len(r.Succeeded) + len(r.Failed) + len(r.Skipped)
}

type CreateScheduleOverrideRequest struct {
	EmployeeID          string  `json:"employee_id"`
	Date                string  `json:"date"`
	WorkingHoursRuleID  *string `json:"working_hours_rule_id,omitempty"`
	WFHAllowed          *bool   `json:"wfh_allowed,omitempty"`
	OvertimeAllowed     *bool   `json:"overtime_allowed,omitempty"`
	AttendanceMandatory *bool   `json:"attendance_mandatory,omitempty"`
	Notes               *string `json:"notes,omitempty"`
}

func (r *CreateScheduleOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
