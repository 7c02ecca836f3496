package exchange

import "errors"

// Define errors
var (
	// ErrInvalidParticipant is returned when the requester is blank or
	// not on the roster
	ErrInvalidParticipant = errors.New("participant is not on the roster")

	// ErrNotFound is returned when an administrative operation targets a
	// name with no assignment
	ErrNotFound = errors.New("no assignment exists for that name")

	// ErrInvalidInput is returned when an administrative operation is
	// missing a required field
	ErrInvalidInput = errors.New("required field is missing")

	ErrNilConfig         = errors.New("config cannot be nil")
	ErrNilRosterRepo     = errors.New("roster repository cannot be nil")
	ErrNilAssignmentRepo = errors.New("assignment repository cannot be nil")
	ErrNilPicker         = errors.New("picker cannot be nil")
	ErrNilClock          = errors.New("clock cannot be nil")
)
