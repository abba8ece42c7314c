package models

import (
	"time"

	"github.com/google/uuid"
)

// Journey is a physical usage session of a car. A journey is open while
// EndTime is nil; closing it stamps EndTime and FinalPrice. BookingID links
// the journey to the approved booking that authorized it.
type Journey struct {
	ID         int        `json:"id"`
	CarID      int        `json:"car_id"`
	UserID     uuid.UUID  `json:"user_id"`
	BookingID  int        `json:"booking_id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	FinalPrice *int       `json:"final_price,omitempty"`
}

// Open reports whether the journey is still in progress.
func (j Journey) Open() bool {
	return j.EndTime == nil
}
