package usecase

import (
	"context"
	"testing"
	"time"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fixedClockService(repo *repository.Repository, day string) *availabilityService {
	date, _ := time.Parse(time.DateOnly, day)
	return &availabilityService{
		repo: repo,
		log:  zap.NewNop(),
		now:  func() time.Time { return date },
	}
}

func TestGetVehicleAvailability(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAvailabilityService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	seedBooking(t, repo, vehicle.ID, uuid.New(), "2026-05-04", "09:00", "18:00")
	seedBooking(t, repo, vehicle.ID, uuid.New(), "2026-05-06", "10:00", "12:00")

	resp, err := svc.GetVehicleAvailability(context.Background(), vehicle.ID.String(), "2026-05-03", "2026-05-06")
	require.NoError(t, err)
	require.Len(t, resp.Days, 4)

	assert.False(t, resp.Days[0].FullyBooked)
	assert.False(t, resp.Days[0].PartiallyBooked)

	// May 4: single 9-hour booking marks the day fully booked.
	assert.Equal(t, "2026-05-04", resp.Days[1].Date)
	assert.True(t, resp.Days[1].FullyBooked)
	assert.False(t, resp.Days[1].PartiallyBooked)
	assert.Equal(t, []string{"09:00 - 18:00"}, resp.Days[1].Bookings)

	// May 6: short booking, partially booked only.
	assert.False(t, resp.Days[3].FullyBooked)
	assert.True(t, resp.Days[3].PartiallyBooked)
}

func TestGetVehicleAvailabilityInvertedRange(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAvailabilityService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	_, err := svc.GetVehicleAvailability(context.Background(), vehicle.ID.String(), "2026-05-06", "2026-05-03")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date range")
}

func TestGetVehicleAvailabilityUnknownVehicle(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAvailabilityService(repo, zap.NewNop())

	_, err := svc.GetVehicleAvailability(context.Background(), uuid.NewString(), "2026-05-03", "2026-05-06")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetSlotHours(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAvailabilityService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	seedBooking(t, repo, vehicle.ID, uuid.New(), "2026-05-04", "09:00", "12:00")

	resp, err := svc.GetSlotHours(context.Background(), vehicle.ID.String(), "2026-05-04", "")
	require.NoError(t, err)
	assert.Equal(t, []int{8, 13, 14, 15, 16, 17, 18, 19}, resp.PickupHours)
	assert.Empty(t, resp.ReturnHours)

	resp, err = svc.GetSlotHours(context.Background(), vehicle.ID.String(), "2026-05-04", "13:00")
	require.NoError(t, err)
	assert.Equal(t, []int{14, 15, 16, 17, 18, 19}, resp.ReturnHours)
}

func TestGetFleetToday(t *testing.T) {
	repo := newFakeRepository()
	vehicle := seedVehicle(t, repo)

	renter := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Email:    "driver@example.com",
		FullName: "Dana Driver",
		Role:     entity.RoleUser,
		IsActive: true,
	}
	require.NoError(t, repo.User.Create(context.Background(), renter))

	seedBooking(t, repo, vehicle.ID, renter.ID, "2026-05-04", "08:00", "16:00")

	svc := fixedClockService(repo, "2026-05-04")

	resp, err := svc.GetFleetToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-05-04", resp.Date)
	require.Len(t, resp.Vehicles, 1)

	card := resp.Vehicles[0]
	assert.Equal(t, "booked", card.DayStatus)
	assert.Equal(t, []string{"Dana Driver"}, card.BookedBy)
	assert.Equal(t, []string{"08:00 - 16:00"}, card.BookingTimes)
}

func TestGetFleetTodayMaintenance(t *testing.T) {
	repo := newFakeRepository()
	vehicle := seedVehicle(t, repo)

	start, _ := time.Parse(time.DateOnly, "2026-05-01")
	end, _ := time.Parse(time.DateOnly, "2026-05-10")
	require.NoError(t, repo.Vehicle.SetMaintenance(context.Background(), vehicle.ID, start, end, "brake overhaul"))

	svc := fixedClockService(repo, "2026-05-04")

	resp, err := svc.GetFleetToday(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Vehicles, 1)
	assert.Equal(t, "maintenance", resp.Vehicles[0].DayStatus)
	assert.Equal(t, "brake overhaul", resp.Vehicles[0].MaintenanceReason)
}

func TestGetFleetTodayQuietDay(t *testing.T) {
	repo := newFakeRepository()
	vehicle := seedVehicle(t, repo)

	seedBooking(t, repo, vehicle.ID, uuid.New(), "2026-05-04", "08:00", "16:00")

	// A day with no bookings starting on it and no coverage is available.
	svc := fixedClockService(repo, "2026-05-20")

	resp, err := svc.GetFleetToday(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Vehicles, 1)
	assert.Equal(t, "available", resp.Vehicles[0].DayStatus)
	assert.Empty(t, resp.Vehicles[0].BookedBy)
}
