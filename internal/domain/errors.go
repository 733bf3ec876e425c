package domain

import "errors"

// Failure taxonomy for booking transitions. All preconditions are checked
// against these before any record is mutated; a returned error means no
// state changed.
var (
	// ErrInvalidDateRange means the end date is not strictly after the
	// start date.
	ErrInvalidDateRange = errors.New("end date must be after start date")

	// ErrBookingConflict means the candidate range overlaps an ACTIVE
	// rental for the same equipment.
	ErrBookingConflict = errors.New("equipment already booked for overlapping dates")

	// ErrInvalidStateTransition means the requested transition is not
	// legal from the record's current status.
	ErrInvalidStateTransition = errors.New("transition not allowed from current status")

	// ErrNotFound means a referenced rental request or equipment record
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized means the caller may not act on this record.
	ErrUnauthorized = errors.New("not authorized for this action")
)
