package models

import "time"

// Interval is a half-open time range [From, To): the start instant belongs
// to the range, the end instant does not. Two bookings that touch at a
// boundary therefore do not overlap.
type Interval struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Valid reports whether the interval has positive length.
func (i Interval) Valid() bool {
	return i.From.Before(i.To)
}

// Overlaps reports whether two half-open intervals share at least one instant.
func (i Interval) Overlaps(other Interval) bool {
	return i.From.Before(other.To) && other.From.Before(i.To)
}

// Contains reports whether t falls inside the half-open range.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.From) && t.Before(i.To)
}
