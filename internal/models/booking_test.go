package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"pending", "approved", "rejected", "cancelled", "started", "completed", "transferred",
	} {
		status, ok := ParseBookingStatus(raw)
		require.True(t, ok, "%s", raw)
		assert.Equal(t, raw, string(status))
	}

	_, ok := ParseBookingStatus("parked")
	assert.False(t, ok)

	_, ok = ParseBookingStatus("")
	assert.False(t, ok)
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingPending, BookingApproved, true},
		{BookingPending, BookingRejected, true},
		{BookingPending, BookingStarted, false},
		{BookingPending, BookingCompleted, false},
		{BookingApproved, BookingStarted, true},
		{BookingApproved, BookingCancelled, true},
		{BookingApproved, BookingTransferred, true},
		{BookingApproved, BookingRejected, false},
		{BookingApproved, BookingPending, false},
		{BookingStarted, BookingCompleted, true},
		{BookingStarted, BookingCancelled, false},
		{BookingRejected, BookingApproved, false},
		{BookingCancelled, BookingPending, false},
		{BookingCompleted, BookingStarted, false},
		{BookingTransferred, BookingApproved, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	for _, status := range []BookingStatus{BookingRejected, BookingCancelled, BookingCompleted, BookingTransferred} {
		assert.True(t, status.Terminal(), "%s", status)
	}

	for _, status := range []BookingStatus{BookingPending, BookingApproved, BookingStarted} {
		assert.False(t, status.Terminal(), "%s", status)
	}
}
