package availability

import (
	"testing"
	"time"

	"fleet-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeBooking(start, end time.Time, pickup, ret string) *entity.Booking {
	return &entity.Booking{
		Base:       entity.Base{ID: uuid.New()},
		VehicleID:  uuid.New(),
		UserID:     uuid.New(),
		StartDate:  start,
		EndDate:    end,
		PickupTime: pickup,
		ReturnTime: ret,
		Status:     entity.BookingStatusActive,
	}
}

func testVehicle() *entity.Vehicle {
	return &entity.Vehicle{
		Base:         entity.Base{ID: uuid.New()},
		Brand:        "Fiat",
		Model:        "Panda",
		LicensePlate: "AB123CD",
		Status:       entity.VehicleStatusAvailable,
	}
}

func maintenanceVehicle(start, end time.Time, reason string) *entity.Vehicle {
	v := testVehicle()
	v.Status = entity.VehicleStatusMaintenance
	v.MaintenanceStart = &start
	v.MaintenanceEnd = &end
	v.MaintenanceReason = &reason
	return v
}

func TestParseSlotHour(t *testing.T) {
	h, err := ParseSlotHour("09:00")
	require.NoError(t, err)
	assert.Equal(t, 9, h)

	h, err = ParseSlotHour("18:00:00")
	require.NoError(t, err)
	assert.Equal(t, 18, h)

	_, err = ParseSlotHour("nine")
	assert.Error(t, err)

	_, err = ParseSlotHour("25:00")
	assert.Error(t, err)

	_, err = ParseSlotHour("12")
	assert.Error(t, err)
}

func TestNewSnapshotRejectsMalformedTimes(t *testing.T) {
	d := day(2024, time.June, 10)
	_, err := NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(d, d, "bad", "12:00"),
	})
	assert.Error(t, err)
}

func TestNewSnapshotSkipsNonActiveBookings(t *testing.T) {
	d := day(2024, time.June, 10)
	cancelled := activeBooking(d, d, "09:00", "18:00")
	cancelled.Status = entity.BookingStatusCancelled

	snap, err := NewSnapshot(testVehicle(), []*entity.Booking{cancelled})
	require.NoError(t, err)
	assert.False(t, snap.FullyBooked(d))
	assert.Equal(t, DayAvailable, snap.ClassifyDay(d))
}

func TestEmptySnapshotAnswersNotApplicable(t *testing.T) {
	var snap *Snapshot
	d := day(2024, time.June, 10)

	assert.False(t, snap.FullyBooked(d))
	assert.False(t, snap.PartiallyBooked(d))
	assert.Equal(t, DayAvailable, snap.ClassifyDay(d))
	assert.Empty(t, snap.PickupHours(d))
	assert.Empty(t, snap.ReturnHours(d, 9))
	assert.Empty(t, snap.BookingsOn(d))
}

func TestNoBookingsAllDaysAvailable(t *testing.T) {
	snap, err := NewSnapshot(testVehicle(), nil)
	require.NoError(t, err)

	d := day(2024, time.June, 10)
	assert.Equal(t, DayAvailable, snap.ClassifyDay(d))
	assert.False(t, snap.FullyBooked(d))
	assert.False(t, snap.PartiallyBooked(d))
	assert.Len(t, snap.PickupHours(d), SlotCount)
}

func TestMaintenanceWindowDominates(t *testing.T) {
	start := day(2024, time.June, 8)
	end := day(2024, time.June, 12)
	d := day(2024, time.June, 10)

	snap, err := NewSnapshot(maintenanceVehicle(start, end, "tagliando"), []*entity.Booking{
		activeBooking(d, d, "09:00", "11:00"),
	})
	require.NoError(t, err)

	assert.True(t, snap.FullyBooked(d))
	assert.Equal(t, DayMaintenance, snap.ClassifyDay(d))
	assert.Equal(t, "tagliando", snap.MaintenanceReason(d))

	outside := day(2024, time.June, 13)
	assert.False(t, snap.FullyBooked(outside))
	assert.Empty(t, snap.MaintenanceReason(outside))
}

func TestMaintenanceWindowIgnoredWithoutStatus(t *testing.T) {
	start := day(2024, time.June, 8)
	end := day(2024, time.June, 12)
	v := testVehicle()
	v.MaintenanceStart = &start
	v.MaintenanceEnd = &end

	snap, err := NewSnapshot(v, nil)
	require.NoError(t, err)

	d := day(2024, time.June, 10)
	assert.False(t, snap.FullyBooked(d))
	assert.Equal(t, DayAvailable, snap.ClassifyDay(d))
}

func TestFullyBookedSingleBookingSpanRule(t *testing.T) {
	d := day(2024, time.June, 10)

	// 9 -> 18 is a 9-hour span, above the 6-hour threshold.
	long, err := NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(d, d, "09:00", "18:00"),
	})
	require.NoError(t, err)
	assert.True(t, long.FullyBooked(d))
	assert.False(t, long.PartiallyBooked(d))

	// 9 -> 13 is a 4-hour span: partially booked only.
	short, err := NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(d, d, "09:00", "13:00"),
	})
	require.NoError(t, err)
	assert.False(t, short.FullyBooked(d))
	assert.True(t, short.PartiallyBooked(d))
}

func TestPartiallyBookedCoversMultiDayRange(t *testing.T) {
	start := day(2024, time.June, 10)
	end := day(2024, time.June, 12)

	snap, err := NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(start, end, "09:00", "12:00"),
	})
	require.NoError(t, err)

	for _, d := range []time.Time{start, day(2024, time.June, 11), end} {
		assert.True(t, snap.PartiallyBooked(d), "expected %s partially booked", d.Format("2006-01-02"))
	}
	assert.False(t, snap.PartiallyBooked(day(2024, time.June, 13)))
}

func TestClassifyDayTotalHoursRule(t *testing.T) {
	d := day(2024, time.June, 10)

	// Two bookings totalling 8 hours on the same start day -> booked.
	snap, err := NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(d, d, "08:00", "12:00"),
		activeBooking(d, d, "14:00", "18:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, DayBooked, snap.ClassifyDay(d))

	// A single 4-hour booking -> partially available.
	snap, err = NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(d, d, "09:00", "13:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, DayPartiallyAvailable, snap.ClassifyDay(d))
}

// The single-booking 6-hour rule and the day-total 8-hour rule are separate
// heuristics and may disagree: a lone 7-hour booking is fully booked in the
// calendar but only partially available in the fleet grid.
func TestHeuristicsIntentionallyDisagree(t *testing.T) {
	d := day(2024, time.June, 10)
	snap, err := NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(d, d, "09:00", "16:00"),
	})
	require.NoError(t, err)

	assert.True(t, snap.FullyBooked(d))
	assert.Equal(t, DayPartiallyAvailable, snap.ClassifyDay(d))
}

func TestPickupHoursExcludeBookedSpan(t *testing.T) {
	d := day(2024, time.June, 10)
	snap, err := NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(d, d, "09:00", "12:00"),
	})
	require.NoError(t, err)

	hours := snap.PickupHours(d)
	assert.Equal(t, []int{8, 13, 14, 15, 16, 17, 18, 19}, hours)

	// Hours strictly inside any booked span never appear.
	for _, h := range hours {
		assert.False(t, h >= 9 && h <= 12, "hour %d is inside the booked span", h)
	}
}

func TestReturnHoursAreLaterFreePickupHours(t *testing.T) {
	d := day(2024, time.June, 10)
	snap, err := NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(d, d, "09:00", "12:00"),
	})
	require.NoError(t, err)

	returns := snap.ReturnHours(d, 13)
	assert.Equal(t, []int{14, 15, 16, 17, 18, 19}, returns)

	// Subset of pickup hours filtered to > pickup.
	pickups := map[int]bool{}
	for _, h := range snap.PickupHours(d) {
		pickups[h] = true
	}
	for _, h := range returns {
		assert.True(t, pickups[h])
		assert.Greater(t, h, 13)
	}

	// Last slot as pickup leaves nothing to return.
	assert.Empty(t, snap.ReturnHours(d, LastSlotHour))
}

func TestDatesInRange(t *testing.T) {
	dates, err := DatesInRange(day(2024, time.June, 10), day(2024, time.June, 12))
	require.NoError(t, err)
	require.Len(t, dates, 3)
	assert.Equal(t, day(2024, time.June, 10), dates[0])
	assert.Equal(t, day(2024, time.June, 12), dates[2])

	// Single day is a one-element range.
	dates, err = DatesInRange(day(2024, time.June, 10), day(2024, time.June, 10))
	require.NoError(t, err)
	assert.Len(t, dates, 1)

	// Inverted range is an input-contract violation.
	_, err = DatesInRange(day(2024, time.June, 12), day(2024, time.June, 10))
	assert.Error(t, err)
}

func TestRangeSelectable(t *testing.T) {
	blocked := day(2024, time.June, 11)
	snap, err := NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(blocked, blocked, "08:00", "19:00"),
	})
	require.NoError(t, err)

	ok, err := snap.RangeSelectable(day(2024, time.June, 10), day(2024, time.June, 12))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = snap.RangeSelectable(day(2024, time.June, 12), day(2024, time.June, 14))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = snap.RangeSelectable(day(2024, time.June, 14), day(2024, time.June, 12))
	assert.Error(t, err)
}

func TestBookingsOn(t *testing.T) {
	d := day(2024, time.June, 10)
	b1 := activeBooking(d, day(2024, time.June, 12), "09:00", "11:00")
	b2 := activeBooking(day(2024, time.June, 12), day(2024, time.June, 12), "14:00", "16:00")

	snap, err := NewSnapshot(testVehicle(), []*entity.Booking{b1, b2})
	require.NoError(t, err)

	assert.Len(t, snap.BookingsOn(d), 1)
	assert.Len(t, snap.BookingsOn(day(2024, time.June, 12)), 2)
	assert.Empty(t, snap.BookingsOn(day(2024, time.June, 13)))
}

// Queries are pure: asking twice with the same inputs yields the same answers.
func TestQueriesAreIdempotent(t *testing.T) {
	d := day(2024, time.June, 10)
	snap, err := NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(d, d, "09:00", "12:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, snap.FullyBooked(d), snap.FullyBooked(d))
	assert.Equal(t, snap.ClassifyDay(d), snap.ClassifyDay(d))
	assert.Equal(t, snap.PickupHours(d), snap.PickupHours(d))
	assert.Equal(t, snap.ReturnHours(d, 13), snap.ReturnHours(d, 13))
}

// Scenario from the booking flow: one 09:00-12:00 booking on 2024-06-10.
func TestSingleMorningBookingScenario(t *testing.T) {
	d := day(2024, time.June, 10)
	snap, err := NewSnapshot(testVehicle(), []*entity.Booking{
		activeBooking(d, d, "09:00", "12:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, DayPartiallyAvailable, snap.ClassifyDay(d))

	// The whole occupied span, return hour included, is gone; everything
	// around it stays selectable.
	hours := snap.PickupHours(d)
	assert.Contains(t, hours, 8)
	for h := 13; h <= 19; h++ {
		assert.Contains(t, hours, h)
	}
	for _, excluded := range []int{9, 10, 11, 12} {
		assert.NotContains(t, hours, excluded)
	}
}
