// Package availability classifies a vehicle's day-level availability and
// computes selectable pickup/return hour slots from an already-fetched
// snapshot of the vehicle and its active bookings. It is pure: no I/O, no
// clock, no mutation. Fetching and persistence live in the usecase layer.
package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fleet-booking/internal/data/entity"
)

// Working-hour domain: 12 one-hour slots, first pickup 08:00, last 19:00.
const (
	FirstSlotHour = 8
	LastSlotHour  = 19
	SlotCount     = LastSlotHour - FirstSlotHour + 1
)

// A single booking spanning more than this many hours marks its start day as
// fully booked in the calendar view. Heuristic, not an exact slot count.
const fullDaySpanHours = 6

// Day-level total at or above which the fleet grid shows the vehicle as
// booked. Independent from fullDaySpanHours; the two views intentionally
// keep separate rules (see DESIGN.md).
const bookedDayTotalHours = 8

type DayStatus string

const (
	DayAvailable          DayStatus = "available"
	DayPartiallyAvailable DayStatus = "partially_available"
	DayBooked             DayStatus = "booked"
	DayMaintenance        DayStatus = "maintenance"
)

// bookingSpan pairs a booking with its pre-parsed slot hours so queries never
// re-parse time strings.
type bookingSpan struct {
	booking    *entity.Booking
	pickupHour int
	returnHour int
}

// Snapshot is an immutable view of one vehicle's booking state. The zero
// value (or nil) answers every query with false/empty, matching the "no
// vehicle selected" case.
type Snapshot struct {
	vehicle *entity.Vehicle
	spans   []bookingSpan
}

// NewSnapshot builds a snapshot from a vehicle and its active bookings.
// Bookings that are not active are skipped. A malformed pickup or return
// time is a data-integrity error and fails the whole snapshot; silently
// coercing it would misclassify availability.
func NewSnapshot(vehicle *entity.Vehicle, bookings []*entity.Booking) (*Snapshot, error) {
	s := &Snapshot{vehicle: vehicle}
	for _, b := range bookings {
		if b == nil || b.Status != entity.BookingStatusActive {
			continue
		}
		pickup, err := ParseSlotHour(b.PickupTime)
		if err != nil {
			return nil, fmt.Errorf("booking %s pickup time: %w", b.ID.String(), err)
		}
		ret, err := ParseSlotHour(b.ReturnTime)
		if err != nil {
			return nil, fmt.Errorf("booking %s return time: %w", b.ID.String(), err)
		}
		s.spans = append(s.spans, bookingSpan{booking: b, pickupHour: pickup, returnHour: ret})
	}
	return s, nil
}

// ParseSlotHour extracts the hour from a "HH:MM" (or "HH:MM:SS") time-of-day
// string. Minutes are accepted but ignored; slots are hour-granular.
func ParseSlotHour(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("malformed time %q: want HH:MM", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: %w", value, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: %w", value, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}
	return hour, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// covers reports whether date lies within the booking's inclusive day range.
func (sp bookingSpan) covers(date time.Time) bool {
	day := dayOf(date)
	return !day.Before(dayOf(sp.booking.StartDate)) && !day.After(dayOf(sp.booking.EndDate))
}

// startsOn reports whether the booking starts on the given calendar day. Hour
// rules only consider bookings starting that day, mirroring how the calendar
// attributes a booking's hours to its first day.
func (sp bookingSpan) startsOn(date time.Time) bool {
	return sameDay(sp.booking.StartDate, date)
}

func (s *Snapshot) empty() bool {
	return s == nil || s.vehicle == nil
}

// FullyBooked reports whether the day cannot take any further booking: either
// the date is inside an effective maintenance window, or a single booking
// starting that day spans more than 6 hours.
func (s *Snapshot) FullyBooked(date time.Time) bool {
	if s.empty() {
		return false
	}
	if s.vehicle.InMaintenanceOn(date) {
		return true
	}
	for _, sp := range s.spans {
		if sp.startsOn(date) && sp.returnHour-sp.pickupHour > fullDaySpanHours {
			return true
		}
	}
	return false
}

// PartiallyBooked reports whether the date has at least one active booking
// but is not fully booked. Mutually exclusive with FullyBooked for any date.
func (s *Snapshot) PartiallyBooked(date time.Time) bool {
	if s.empty() || s.FullyBooked(date) {
		return false
	}
	for _, sp := range s.spans {
		if sp.covers(date) {
			return true
		}
	}
	return false
}

// ClassifyDay returns the fleet-grid status for one calendar day. Total
// booked hours are summed over bookings starting that day; 8 or more hours
// counts as booked. This rule is deliberately separate from FullyBooked's
// single-booking 6-hour rule and the two may disagree for the same day.
func (s *Snapshot) ClassifyDay(date time.Time) DayStatus {
	if s.empty() {
		return DayAvailable
	}
	if s.vehicle.InMaintenanceOn(date) {
		return DayMaintenance
	}
	totalHours := 0
	count := 0
	for _, sp := range s.spans {
		if sp.startsOn(date) {
			totalHours += sp.returnHour - sp.pickupHour
			count++
		}
	}
	switch {
	case totalHours >= bookedDayTotalHours:
		return DayBooked
	case count > 0:
		return DayPartiallyAvailable
	default:
		return DayAvailable
	}
}

// hourTaken reports whether the hour sits inside [pickup, return] of any
// booking starting on the given day.
func (s *Snapshot) hourTaken(date time.Time, hour int) bool {
	for _, sp := range s.spans {
		if sp.startsOn(date) && hour >= sp.pickupHour && hour <= sp.returnHour {
			return true
		}
	}
	return false
}

// PickupHours returns the working hours still selectable as a pickup time on
// the given day, in ascending order.
func (s *Snapshot) PickupHours(date time.Time) []int {
	if s.empty() {
		return nil
	}
	var hours []int
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		if !s.hourTaken(date, h) {
			hours = append(hours, h)
		}
	}
	return hours
}

// ReturnHours returns the selectable return hours given a chosen pickup hour:
// free hours strictly after the pickup.
func (s *Snapshot) ReturnHours(date time.Time, pickupHour int) []int {
	if s.empty() {
		return nil
	}
	var hours []int
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		if h > pickupHour && !s.hourTaken(date, h) {
			hours = append(hours, h)
		}
	}
	return hours
}

// DatesInRange expands an inclusive date range into its calendar days. An end
// before the start violates the input contract and is rejected outright.
func DatesInRange(start, end time.Time) ([]time.Time, error) {
	startDay := dayOf(start)
	endDay := dayOf(end)
	if endDay.Before(startDay) {
		return nil, fmt.Errorf("inverted date range: end %s before start %s",
			endDay.Format("2006-01-02"), startDay.Format("2006-01-02"))
	}
	var dates []time.Time
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}

// RangeSelectable reports whether a multi-day booking over [start, end] is
// allowed: no day in the range may be fully booked.
func (s *Snapshot) RangeSelectable(start, end time.Time) (bool, error) {
	dates, err := DatesInRange(start, end)
	if err != nil {
		return false, err
	}
	for _, d := range dates {
		if s.FullyBooked(d) {
			return false, nil
		}
	}
	return true, nil
}

// BookingsOn returns the active bookings whose day range covers the date,
// in snapshot order. Used for calendar tooltips and fleet card details.
func (s *Snapshot) BookingsOn(date time.Time) []*entity.Booking {
	if s.empty() {
		return nil
	}
	var out []*entity.Booking
	for _, sp := range s.spans {
		if sp.covers(date) {
			out = append(out, sp.booking)
		}
	}
	return out
}

// MaintenanceReason returns the free-text reason when the date is inside an
// effective maintenance window, else "".
func (s *Snapshot) MaintenanceReason(date time.Time) string {
	if s.empty() || !s.vehicle.InMaintenanceOn(date) {
		return ""
	}
	if s.vehicle.MaintenanceReason == nil {
		return ""
	}
	return *s.vehicle.MaintenanceReason
}
