package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carRental/internal/models"
)

func closedJourney(start time.Time, dur time.Duration) models.Journey {
	end := start.Add(dur)
	return models.Journey{StartTime: start, EndTime: &end}
}

func TestPerDay(t *testing.T) {
	t.Parallel()

	car := models.Car{PricePerDay: 1000}
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		journey  models.Journey
		expected int
	}{
		{
			name:     "Open journey",
			journey:  models.Journey{StartTime: start},
			expected: 0,
		},
		{
			name:     "Two hours rounds up to one day",
			journey:  closedJourney(start, 2*time.Hour),
			expected: 1000,
		},
		{
			name:     "Exactly one day",
			journey:  closedJourney(start, 24*time.Hour),
			expected: 1000,
		},
		{
			name:     "One day and a minute rounds up to two",
			journey:  closedJourney(start, 24*time.Hour+time.Minute),
			expected: 2000,
		},
		{
			name:     "Three full days",
			journey:  closedJourney(start, 72*time.Hour),
			expected: 3000,
		},
		{
			name:     "Zero duration still one day",
			journey:  closedJourney(start, 0),
			expected: 1000,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, PerDay{}.FinalPrice(tc.journey, car))
		})
	}
}

func TestFlat(t *testing.T) {
	t.Parallel()

	car := models.Car{PricePerDay: 9999}
	journey := closedJourney(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 48*time.Hour)

	assert.Equal(t, 500, Flat{Amount: 500}.FinalPrice(journey, car))
	assert.Equal(t, 0, Flat{}.FinalPrice(journey, car))
}
