package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionBooking(t *testing.T) {
	assert.True(t, CanTransitionBooking(BookingStatusActive, BookingStatusCompleted))
	assert.True(t, CanTransitionBooking(BookingStatusActive, BookingStatusCancelled))

	// Completed and cancelled are terminal.
	assert.False(t, CanTransitionBooking(BookingStatusCompleted, BookingStatusActive))
	assert.False(t, CanTransitionBooking(BookingStatusCompleted, BookingStatusCancelled))
	assert.False(t, CanTransitionBooking(BookingStatusCancelled, BookingStatusActive))
	assert.False(t, CanTransitionBooking(BookingStatusCancelled, BookingStatusCompleted))

	assert.False(t, CanTransitionBooking(BookingStatusActive, BookingStatusActive))
}

func TestTransitionBooking(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	booking := &Booking{
		Base:   Base{ID: uuid.New()},
		Status: BookingStatusActive,
	}

	require.NoError(t, TransitionBooking(booking, BookingStatusCompleted, now))
	assert.Equal(t, BookingStatusCompleted, booking.Status)
	assert.Equal(t, now, booking.UpdatedAt)

	err := TransitionBooking(booking, BookingStatusCancelled, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid booking status transition")
	assert.Equal(t, BookingStatusCompleted, booking.Status)
}

func TestTransitionBookingNil(t *testing.T) {
	assert.Error(t, TransitionBooking(nil, BookingStatusCancelled, time.Now()))
}
