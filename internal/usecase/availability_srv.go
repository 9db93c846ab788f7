package usecase

import (
	"context"
	"fmt"
	"time"

	"fleet-booking/internal/availability"
	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"
	"fleet-booking/internal/dto/response"
	"fleet-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	// GetVehicleAvailability returns per-day availability over an inclusive
	// date range, as shown in the booking calendar.
	GetVehicleAvailability(ctx context.Context, vehicleID, startDate, endDate string) (*response.VehicleAvailabilityResponse, error)

	// GetSlotHours returns the selectable pickup hours for a day and, when
	// pickupTime is non-empty, the matching return hours.
	GetSlotHours(ctx context.Context, vehicleID, date, pickupTime string) (*response.SlotHoursResponse, error)

	// GetFleetToday returns every vehicle with its derived status for the
	// current day.
	GetFleetToday(ctx context.Context) (*response.FleetTodayResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
		now:  time.Now,
	}
}

func (s *availabilityService) snapshotFor(ctx context.Context, vehicleID string) (*availability.Snapshot, *entity.Vehicle, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}

	bookings, err := s.repo.Booking.FindActiveByVehicleID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load active bookings: %w", err)
	}

	snap, err := availability.NewSnapshot(vehicle, bookings)
	if err != nil {
		s.log.Error("Corrupt booking data for vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID))
		return nil, nil, fmt.Errorf("availability snapshot: %w", err)
	}

	return snap, vehicle, nil
}

func dayResponse(snap *availability.Snapshot, date time.Time) response.DayAvailabilityResponse {
	day := response.DayAvailabilityResponse{
		Date:              date.Format(time.DateOnly),
		Status:            string(snap.ClassifyDay(date)),
		FullyBooked:       snap.FullyBooked(date),
		PartiallyBooked:   snap.PartiallyBooked(date),
		MaintenanceReason: snap.MaintenanceReason(date),
	}
	for _, b := range snap.BookingsOn(date) {
		day.Bookings = append(day.Bookings, b.PickupTime+" - "+b.ReturnTime)
	}
	return day
}

func (s *availabilityService) GetVehicleAvailability(ctx context.Context, vehicleID, startDate, endDate string) (*response.VehicleAvailabilityResponse, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", startDate, err)
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s: %w", endDate, err)
	}

	dates, err := availability.DatesInRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("invalid date range: %w", err)
	}

	snap, _, err := s.snapshotFor(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	resp := &response.VehicleAvailabilityResponse{
		VehicleID: vehicleID,
		Start:     start.Format(time.DateOnly),
		End:       end.Format(time.DateOnly),
		Days:      make([]response.DayAvailabilityResponse, len(dates)),
	}
	for i, date := range dates {
		resp.Days[i] = dayResponse(snap, date)
	}

	return resp, nil
}

func (s *availabilityService) GetSlotHours(ctx context.Context, vehicleID, date, pickupTime string) (*response.SlotHoursResponse, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s: %w", date, err)
	}

	snap, _, err := s.snapshotFor(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	resp := &response.SlotHoursResponse{
		Date:        day.Format(time.DateOnly),
		PickupHours: snap.PickupHours(day),
	}

	if pickupTime != "" {
		pickupHour, err := availability.ParseSlotHour(pickupTime)
		if err != nil {
			return nil, fmt.Errorf("invalid pickup time: %w", err)
		}
		resp.ReturnHours = snap.ReturnHours(day, pickupHour)
	}

	return resp, nil
}

func (s *availabilityService) GetFleetToday(ctx context.Context) (*response.FleetTodayResponse, error) {
	today := s.now()

	vehicles, err := s.repo.Vehicle.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get vehicles", zap.Error(err))
		return nil, fmt.Errorf("get vehicles: %w", err)
	}

	active, err := s.repo.Booking.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to get active bookings", zap.Error(err))
		return nil, fmt.Errorf("get active bookings: %w", err)
	}

	byVehicle := make(map[uuid.UUID][]*entity.Booking)
	for _, b := range active {
		byVehicle[b.VehicleID] = append(byVehicle[b.VehicleID], b)
	}

	resp := &response.FleetTodayResponse{
		Date:     today.Format(time.DateOnly),
		Vehicles: make([]response.FleetVehicleResponse, 0, len(vehicles)),
	}

	for _, vehicle := range vehicles {
		snap, err := availability.NewSnapshot(vehicle, byVehicle[vehicle.ID])
		if err != nil {
			s.log.Error("Corrupt booking data for vehicle",
				zap.Error(err),
				zap.String("vehicle_id", vehicle.ID.String()))
			return nil, fmt.Errorf("availability snapshot: %w", err)
		}

		card := response.FleetVehicleResponse{
			Vehicle:           response.VehicleToResponse(vehicle),
			DayStatus:         string(snap.ClassifyDay(today)),
			MaintenanceReason: snap.MaintenanceReason(today),
		}
		for _, b := range snap.BookingsOn(today) {
			card.BookingTimes = append(card.BookingTimes, b.PickupTime+" - "+b.ReturnTime)
			user, err := s.repo.User.FindByID(ctx, b.UserID)
			if err != nil {
				return nil, fmt.Errorf("find user for booking: %w", err)
			}
			if user != nil {
				card.BookedBy = append(card.BookedBy, user.FullName)
			}
		}

		resp.Vehicles = append(resp.Vehicles, card)
	}

	return resp, nil
}
