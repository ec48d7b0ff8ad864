package approval

import "errors"

var (
	ErrRequestNotFound     = errors.New("request not found")
	ErrInvalidTransition   = errors.New("operation not allowed in the current status")
	ErrDuplicateRequest    = errors.New("a request for this date already exists")
	ErrNoApproverAvailable = errors.New("no approver available for this employee")
	ErrSelfApproval        = errors.New("employees cannot approve their own requests")
	ErrNotCurrentApprover  = errors.New("actor is not the current approver for this request")
	ErrNotApproved         = errors.New("request is not approved")
)
