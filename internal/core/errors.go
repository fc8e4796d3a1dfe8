package core

import "errors"

// Domain errors. The API layer maps these to HTTP statuses with errors.Is;
// a correctly-gating client should never trigger them, but the service
// enforces every rule regardless of what the views allow.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrDuplicateRecord   = errors.New("attendance record already exists for this worker and date")
	ErrAlreadyClockedOut = errors.New("record is already clocked out")
	ErrInvalidTransition = errors.New("record already left the pending state")
	ErrNotWorker         = errors.New("user is not a worker")
	ErrInvalidDecision   = errors.New("decision must be APPROVED or REJECTED")
	ErrNotAssigned       = errors.New("record is not assigned to this supervisor")
)
