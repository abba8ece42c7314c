package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingApproved    BookingStatus = "approved"
	BookingRejected    BookingStatus = "rejected"
	BookingCancelled   BookingStatus = "cancelled"
	BookingStarted     BookingStatus = "started"
	BookingCompleted   BookingStatus = "completed"
	BookingTransferred BookingStatus = "transferred"
)

// ParseBookingStatus converts a raw string into a BookingStatus.
// Returns false for anything outside the closed enumeration.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingApproved, BookingRejected, BookingCancelled,
		BookingStarted, BookingCompleted, BookingTransferred:
		return BookingStatus(s), true
	}
	return "", false
}

// transitions lists the legal next states for each booking status.
// Statuses absent from the map are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	BookingPending:  {BookingApproved, BookingRejected},
	BookingApproved: {BookingStarted, BookingCancelled, BookingTransferred},
	BookingStarted:  {BookingCompleted},
}

// CanTransition reports whether the lifecycle allows moving from s to target.
// A booking never skips a step: pending cannot jump straight to started.
func (s BookingStatus) CanTransition(target BookingStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s BookingStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// Booking is a user's claim on a car for the half-open interval
// [FromTime, ToTime). The branch id is denormalized from the car at
// creation time. Bill is set when the linked journey ends.
type Booking struct {
	ID        int           `json:"id"`
	CarID     int           `json:"car_id"`
	UserID    uuid.UUID     `json:"user_id"`
	BranchID  int           `json:"branch_id"`
	FromTime  time.Time     `json:"from"`
	ToTime    time.Time     `json:"to"`
	Status    BookingStatus `json:"status"`
	Bill      *int          `json:"bill,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// Interval returns the booking's claimed time range.
func (b Booking) Interval() Interval {
	return Interval{From: b.FromTime, To: b.ToTime}
}

// BookingDetails is a booking joined with display fields from the car and
// branch rows, used by the listing endpoints.
type BookingDetails struct {
	Booking
	CarBrand   string `json:"car_brand"`
	CarModel   string `json:"car_model"`
	BranchName string `json:"branch_name"`
}
