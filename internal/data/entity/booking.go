package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// allowedBookingTransitions: active is the only non-terminal status.
var allowedBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusActive:    {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCompleted: {},
	BookingStatusCancelled: {},
}

// CanTransitionBooking reports whether from -> to is an allowed lifecycle change.
func CanTransitionBooking(from, to BookingStatus) bool {
	for _, s := range allowedBookingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionBooking applies a status change, rejecting anything outside the
// allowed lifecycle (active -> completed, active -> cancelled).
func TransitionBooking(b *Booking, to BookingStatus, now time.Time) error {
	if b == nil {
		return fmt.Errorf("booking is nil")
	}
	if !CanTransitionBooking(b.Status, to) {
		return fmt.Errorf("invalid booking status transition: %s -> %s", b.Status, to)
	}
	b.Status = to
	b.UpdatedAt = now
	return nil
}

// Booking reserves one vehicle for an inclusive calendar-day range, with
// hour-granularity pickup and return times stored as "HH:MM" strings.
type Booking struct {
	Base
	VehicleID  uuid.UUID     `db:"vehicle_id"`
	UserID     uuid.UUID     `db:"user_id"`
	StartDate  time.Time     `db:"start_date"`
	EndDate    time.Time     `db:"end_date"`
	PickupTime string        `db:"pickup_time"`
	ReturnTime string        `db:"return_time"`
	Status     BookingStatus `db:"status"`
}
