package usecase

import (
	"context"
	"testing"
	"time"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"
	"fleet-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedVehicle(t *testing.T, repo *repository.Repository) *entity.Vehicle {
	t.Helper()
	vehicle := &entity.Vehicle{
		Base:         entity.Base{ID: uuid.New()},
		Brand:        "Toyota",
		Model:        "Hilux",
		LicensePlate: "B 1234 XY",
		Mileage:      42000,
		Status:       entity.VehicleStatusAvailable,
	}
	require.NoError(t, repo.Vehicle.Create(context.Background(), vehicle))
	return vehicle
}

func seedBooking(t *testing.T, repo *repository.Repository, vehicleID, userID uuid.UUID, day, pickup, ret string) *entity.Booking {
	t.Helper()
	date, err := time.Parse(time.DateOnly, day)
	require.NoError(t, err)

	booking := &entity.Booking{
		Base:       entity.Base{ID: uuid.New()},
		VehicleID:  vehicleID,
		UserID:     userID,
		StartDate:  date,
		EndDate:    date,
		PickupTime: pickup,
		ReturnTime: ret,
		Status:     entity.BookingStatusActive,
	}
	require.NoError(t, repo.Booking.Create(context.Background(), booking))
	return booking
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)
	userID := uuid.New()

	booking, err := svc.CreateBooking(context.Background(), userID.String(), &request.CreateBookingRequest{
		VehicleID:  vehicle.ID.String(),
		StartDate:  "2026-05-04",
		EndDate:    "2026-05-05",
		PickupTime: "09:00",
		ReturnTime: "12:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", booking.Status)
	assert.Equal(t, "09:00", booking.PickupTime)
	assert.Equal(t, "12:00", booking.ReturnTime)
	assert.Equal(t, "Toyota Hilux", booking.VehicleName)
}

func TestCreateBookingRejectsInvertedTimes(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), &request.CreateBookingRequest{
		VehicleID:  vehicle.ID.String(),
		StartDate:  "2026-05-04",
		EndDate:    "2026-05-04",
		PickupTime: "14:00",
		ReturnTime: "10:00",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "return must be after pickup")
}

func TestCreateBookingRejectsFullyBookedDay(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	// A 9-hour booking on May 4 marks the whole day as fully booked.
	seedBooking(t, repo, vehicle.ID, uuid.New(), "2026-05-04", "09:00", "18:00")

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), &request.CreateBookingRequest{
		VehicleID:  vehicle.ID.String(),
		StartDate:  "2026-05-03",
		EndDate:    "2026-05-05",
		PickupTime: "08:00",
		ReturnTime: "10:00",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fully booked")
}

func TestCreateBookingRejectsTakenPickupHour(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	seedBooking(t, repo, vehicle.ID, uuid.New(), "2026-05-04", "09:00", "12:00")

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), &request.CreateBookingRequest{
		VehicleID:  vehicle.ID.String(),
		StartDate:  "2026-05-04",
		EndDate:    "2026-05-04",
		PickupTime: "10:00",
		ReturnTime: "14:00",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pickup hour 10:00 is taken")
}

func TestCreateBookingUnknownVehicle(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), &request.CreateBookingRequest{
		VehicleID:  uuid.NewString(),
		StartDate:  "2026-05-04",
		EndDate:    "2026-05-04",
		PickupTime: "09:00",
		ReturnTime: "12:00",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCancelBookingOwnership(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	owner := uuid.New()
	booking := seedBooking(t, repo, vehicle.ID, owner, "2026-05-04", "09:00", "12:00")

	// Another regular user may not touch it.
	err := svc.CancelBooking(context.Background(), uuid.NewString(), "user", booking.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")

	// The owner can.
	require.NoError(t, svc.CancelBooking(context.Background(), owner.String(), "user", booking.ID.String()))
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)

	// Terminal: cancelling again is rejected.
	err = svc.CancelBooking(context.Background(), owner.String(), "user", booking.ID.String())
	require.Error(t, err)
}

func TestCancelBookingAsAdmin(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	booking := seedBooking(t, repo, vehicle.ID, uuid.New(), "2026-05-04", "09:00", "12:00")

	require.NoError(t, svc.CancelBooking(context.Background(), uuid.NewString(), "admin", booking.ID.String()))
	assert.Equal(t, entity.BookingStatusCancelled, booking.Status)
}

func TestReturnVehicle(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	owner := uuid.New()
	booking := seedBooking(t, repo, vehicle.ID, owner, "2026-05-04", "09:00", "12:00")

	resp, err := svc.ReturnVehicle(context.Background(), owner.String(), "user", booking.ID.String(), &request.ReturnVehicleRequest{
		Mileage:  42350,
		Location: "HQ garage",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 42350, vehicle.Mileage)
}

func TestReturnVehicleRejectsLowerMileage(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	owner := uuid.New()
	booking := seedBooking(t, repo, vehicle.ID, owner, "2026-05-04", "09:00", "12:00")

	_, err := svc.ReturnVehicle(context.Background(), owner.String(), "user", booking.ID.String(), &request.ReturnVehicleRequest{
		Mileage:  100,
		Location: "HQ garage",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mileage")
	assert.Equal(t, entity.BookingStatusActive, booking.Status)
}

func TestUpdateBookingTimesIgnoresOwnHours(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	owner := uuid.New()
	booking := seedBooking(t, repo, vehicle.ID, owner, "2026-05-04", "09:00", "12:00")

	// Shifting inside the booking's own window must not conflict with itself.
	resp, err := svc.UpdateBookingTimes(context.Background(), owner.String(), "user", booking.ID.String(), &request.UpdateBookingTimesRequest{
		PickupTime: "10:00",
		ReturnTime: "13:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.PickupTime)
	assert.Equal(t, "13:00", resp.ReturnTime)
	assert.Equal(t, "10:00", booking.PickupTime)
}

func TestUpdateBookingTimesConflictsWithOtherBooking(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	owner := uuid.New()
	booking := seedBooking(t, repo, vehicle.ID, owner, "2026-05-04", "08:00", "09:00")
	seedBooking(t, repo, vehicle.ID, uuid.New(), "2026-05-04", "14:00", "16:00")

	_, err := svc.UpdateBookingTimes(context.Background(), owner.String(), "user", booking.ID.String(), &request.UpdateBookingTimesRequest{
		PickupTime: "14:00",
		ReturnTime: "17:00",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pickup hour 14:00 is taken")
}

func TestGetUserBookingsPagination(t *testing.T) {
	repo := newFakeRepository()
	svc := NewBookingService(repo, zap.NewNop())
	vehicle := seedVehicle(t, repo)

	owner := uuid.New()
	seedBooking(t, repo, vehicle.ID, owner, "2026-05-04", "08:00", "09:00")
	seedBooking(t, repo, vehicle.ID, owner, "2026-05-05", "08:00", "09:00")
	seedBooking(t, repo, vehicle.ID, uuid.New(), "2026-05-06", "08:00", "09:00")

	page, err := svc.GetUserBookings(context.Background(), owner.String(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(2), page.Pagination.Total)
}
