// Package storage declares the error taxonomy shared between the postgres
// implementation and the HTTP handlers. Handlers match these sentinels with
// errors.Is and map them onto status codes: not-found errors to 404,
// conflict errors to 409, ErrInvalidInterval to 400, ErrJourneyNotOwned
// to 403.
package storage

import "errors"

var (
	ErrCarNotFound     = errors.New("car not found")
	ErrBranchNotFound  = errors.New("branch not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrJourneyNotFound = errors.New("journey not found")

	// Conflicts: the caller may retry with a different interval or car.
	ErrIntervalConflict      = errors.New("interval overlaps an approved booking")
	ErrDuplicateBooking      = errors.New("identical booking already exists")
	ErrApprovedBookingExists = errors.New("user already holds an approved booking for this car")
	ErrOpenJourneyExists     = errors.New("car already has an open journey")
	ErrNoApprovedBooking     = errors.New("no approved booking for this car")
	ErrInvalidTransition     = errors.New("illegal booking status transition")

	ErrInvalidInterval = errors.New("invalid time interval")
	ErrJourneyNotOwned = errors.New("journey belongs to another user")
)
