// Package billing computes the final charge for a finished journey. The
// Pricer interface is the seam between journey lifecycle transitions and
// the pricing algorithm, so the algorithm can be replaced without touching
// the journey tracker.
package billing

import (
	"carRental/internal/models"
)

// Pricer computes the final charge for a closed journey on the given car.
// Implementations must treat an open journey (nil EndTime) as zero-length.
type Pricer interface {
	FinalPrice(journey models.Journey, car models.Car) int
}

// PerDay charges the car's daily rate for every started rental day,
// with a one-day minimum.
type PerDay struct{}

func (PerDay) FinalPrice(journey models.Journey, car models.Car) int {
	if journey.EndTime == nil {
		return 0
	}

	elapsed := journey.EndTime.Sub(journey.StartTime)
	if elapsed <= 0 {
		return car.PricePerDay
	}

	const day = 24 * 60 * 60 // seconds

	days := int(elapsed.Seconds()) / day
	if int(elapsed.Seconds())%day != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}

	return days * car.PricePerDay
}

// Flat ignores the journey entirely and returns a fixed amount.
// Kept as the simplest stand-in for environments without rate data.
type Flat struct {
	Amount int
}

func (f Flat) FinalPrice(models.Journey, models.Car) int {
	return f.Amount
}
