package attendance

import "errors"

var (
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrAlreadyClockedIn  = errors.New("employee already clocked in today")
	ErrNotClockedIn      = errors.New("employee has not clocked in today")
	ErrAlreadyClockedOut = errors.New("employee already clocked out today")
	ErrNotWorkingDay     = errors.New("today is not a working day for this employee")
	ErrShiftAlreadyEnded = errors.New("cannot clock in after the shift has ended")
	ErrWFHNotApproved    = errors.New("no approved work-from-home request for today")
	ErrWFHNotAllowed     = errors.New("shift pattern does not allow work from home")
	ErrClockOutBeforeIn  = errors.New("clock-out cannot be before clock-in")
)
