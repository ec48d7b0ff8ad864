package response

import (
	"errors"
	"net/http"

	"github.com/akademika/hris-backend-go/internal/domain/approval"
	"github.com/akademika/hris-backend-go/internal/domain/attendance"
	"github.com/akademika/hris-backend-go/internal/domain/auth"
	"github.com/akademika/hris-backend-go/internal/domain/employee"
	"github.com/akademika/hris-backend-go/internal/domain/holiday"
	"github.com/akademika/hris-backend-go/internal/domain/leave"
	"github.com/akademika/hris-backend-go/internal/domain/shift"
	"github.com/akademika/hris-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrAccountNotFound):
		NotFound(w, "Account not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, employee.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, employee.ErrSelfApprover):
		BadRequest(w, "Employee cannot be their own approver", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayDateExists):
		Conflict(w, "A holiday already exists on this date")

	// Shift domain errors
	case errors.Is(err, shift.ErrWorkingHoursRuleNotFound):
		NotFound(w, "Working hours rule not found")
	case errors.Is(err, shift.ErrShiftPackageNotFound):
		NotFound(w, "Shift package not found")
	case errors.Is(err, shift.ErrShiftPatternNotFound):
		NotFound(w, "Shift pattern not found")
	case errors.Is(err, shift.ErrShiftPatternInactive):
		BadRequest(w, "Shift pattern is inactive", nil)
	case errors.Is(err, shift.ErrShiftSettingNotFound):
		NotFound(w, "Shift setting not found")
	case errors.Is(err, shift.ErrOverlappingShiftSetting):
		Conflict(w, "An overlapping shift setting already exists")
	case errors.Is(err, shift.ErrScheduleOverrideNotFound):
		NotFound(w, "Schedule override not found")
	case errors.Is(err, shift.ErrScheduleOverrideExists):
		Conflict(w, "A schedule override already exists for this date")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No open clock-in found", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out")
	case errors.Is(err, attendance.ErrNotWorkingDay):
		BadRequest(w, "Today is not a working day", nil)
	case errors.Is(err, attendance.ErrShiftAlreadyEnded):
		BadRequest(w, "Shift has already ended", nil)
	case errors.Is(err, attendance.ErrWFHNotAllowed):
		Forbidden(w, "Working from home is not allowed on this shift")
	case errors.Is(err, attendance.ErrWFHNotApproved):
		Forbidden(w, "No approved work-from-home request for today")
	case errors.Is(err, attendance.ErrClockOutBeforeIn):
		BadRequest(w, "Clock-out cannot be before clock-in", nil)

	// Approval domain errors
	case errors.Is(err, approval.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, approval.ErrInvalidTransition):
		Conflict(w, "Request has already been processed")
	case errors.Is(err, approval.ErrDuplicateRequest):
		Conflict(w, "An active request already exists for this date")
	case errors.Is(err, approval.ErrNoApproverAvailable):
		BadRequest(w, "No approver available for this employee", nil)
	case errors.Is(err, approval.ErrSelfApproval):
		Forbidden(w, "You cannot approve your own request")
	case errors.Is(err, approval.ErrNotCurrentApprover):
		Forbidden(w, "You are not the current approver for this request")
	case errors.Is(err, approval.ErrNotApproved):
		BadRequest(w, "Request has not been approved", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrBalanceAlreadyExists):
		Conflict(w, "Leave balance already exists for this year")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrInvalidDays):
		BadRequest(w, "Leave days must be positive", nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrInvalidTransition):
		Conflict(w, "Leave request has already been processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
