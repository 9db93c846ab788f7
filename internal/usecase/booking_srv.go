package usecase

import (
	"context"
	"fmt"
	"time"

	"fleet-booking/internal/availability"
	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"
	"fleet-booking/internal/dto/request"
	"fleet-booking/internal/dto/response"
	"fleet-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, userID, role, bookingID string) (*response.BookingResponse, error)
	UpdateBookingTimes(ctx context.Context, userID, role, bookingID string, req *request.UpdateBookingTimesRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID, role, bookingID string) error
	ReturnVehicle(ctx context.Context, userID, role, bookingID string, req *request.ReturnVehicleRequest) (*response.BookingResponse, error)

	// Admin endpoints
	GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func contains(hours []int, h int) bool {
	for _, v := range hours {
		if v == h {
			return true
		}
	}
	return false
}

// findBooking loads a booking and enforces ownership: regular users only see
// their own bookings, admins see all.
func (s *bookingService) findBooking(ctx context.Context, userID, role, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	if role != string(entity.RoleAdmin) && booking.UserID.String() != userID {
		return nil, fmt.Errorf("forbidden: booking belongs to another user")
	}

	return booking, nil
}

func (s *bookingService) snapshotFor(ctx context.Context, vehicle *entity.Vehicle) (*availability.Snapshot, error) {
	bookings, err := s.repo.Booking.FindActiveByVehicleID(ctx, vehicle.ID)
	if err != nil {
		return nil, fmt.Errorf("load active bookings: %w", err)
	}
	snap, err := availability.NewSnapshot(vehicle, bookings)
	if err != nil {
		s.log.Error("Corrupt booking data for vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicle.ID.String()))
		return nil, fmt.Errorf("availability snapshot: %w", err)
	}
	return snap, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", req.VehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", req.VehicleID)
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", req.StartDate, err)
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s: %w", req.EndDate, err)
	}

	pickupHour, err := availability.ParseSlotHour(req.PickupTime)
	if err != nil {
		return nil, fmt.Errorf("invalid pickup time: %w", err)
	}
	returnHour, err := availability.ParseSlotHour(req.ReturnTime)
	if err != nil {
		return nil, fmt.Errorf("invalid return time: %w", err)
	}
	if returnHour <= pickupHour {
		return nil, fmt.Errorf("invalid time range: return must be after pickup")
	}

	snap, err := s.snapshotFor(ctx, vehicle)
	if err != nil {
		return nil, err
	}

	selectable, err := snap.RangeSelectable(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date range: %w", err)
	}
	if !selectable {
		return nil, fmt.Errorf("vehicle not available: range contains a fully booked day")
	}

	if !contains(snap.PickupHours(startDate), pickupHour) {
		return nil, fmt.Errorf("vehicle not available: pickup hour %02d:00 is taken", pickupHour)
	}
	if !contains(snap.ReturnHours(startDate, pickupHour), returnHour) {
		return nil, fmt.Errorf("vehicle not available: return hour %02d:00 is taken", returnHour)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VehicleID:  vehicleID,
		UserID:     uid,
		StartDate:  startDate,
		EndDate:    endDate,
		PickupTime: fmt.Sprintf("%02d:00", pickupHour),
		ReturnTime: fmt.Sprintf("%02d:00", returnHour),
		Status:     entity.BookingStatusActive,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("vehicle_id", req.VehicleID),
			zap.String("user_id", userID))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("vehicle_id", req.VehicleID),
		zap.String("user_id", userID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate))

	resp := response.BookingToResponse(booking, vehicle, nil)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, uid, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		vehicle, err := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("find vehicle for booking: %w", err)
		}
		bookingResponses[i] = response.BookingToResponse(booking, vehicle, nil)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, userID, role, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, userID, role, bookingID)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("find vehicle for booking: %w", err)
	}
	user, err := s.repo.User.FindByID(ctx, booking.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user for booking: %w", err)
	}

	resp := response.BookingToResponse(booking, vehicle, user)
	return &resp, nil
}

// UpdateBookingTimes changes the pickup/return hours of an active booking.
// The booking's own hours are excluded from the conflict check by rebuilding
// the snapshot without it.
func (s *bookingService) UpdateBookingTimes(ctx context.Context, userID, role, bookingID string, req *request.UpdateBookingTimesRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking times validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, userID, role, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingStatusActive {
		return nil, fmt.Errorf("booking %s is not active", bookingID)
	}

	pickupHour, err := availability.ParseSlotHour(req.PickupTime)
	if err != nil {
		return nil, fmt.Errorf("invalid pickup time: %w", err)
	}
	returnHour, err := availability.ParseSlotHour(req.ReturnTime)
	if err != nil {
		return nil, fmt.Errorf("invalid return time: %w", err)
	}
	if returnHour <= pickupHour {
		return nil, fmt.Errorf("invalid time range: return must be after pickup")
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", booking.VehicleID.String())
	}

	others, err := s.repo.Booking.FindActiveByVehicleID(ctx, booking.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("load active bookings: %w", err)
	}
	filtered := others[:0]
	for _, b := range others {
		if b.ID != booking.ID {
			filtered = append(filtered, b)
		}
	}
	snap, err := availability.NewSnapshot(vehicle, filtered)
	if err != nil {
		return nil, fmt.Errorf("availability snapshot: %w", err)
	}

	if !contains(snap.PickupHours(booking.StartDate), pickupHour) {
		return nil, fmt.Errorf("vehicle not available: pickup hour %02d:00 is taken", pickupHour)
	}
	if !contains(snap.ReturnHours(booking.StartDate, pickupHour), returnHour) {
		return nil, fmt.Errorf("vehicle not available: return hour %02d:00 is taken", returnHour)
	}

	booking.PickupTime = fmt.Sprintf("%02d:00", pickupHour)
	booking.ReturnTime = fmt.Sprintf("%02d:00", returnHour)
	if err := s.repo.Booking.UpdateTimes(ctx, booking.ID, booking.PickupTime, booking.ReturnTime); err != nil {
		return nil, fmt.Errorf("update booking times: %w", err)
	}

	s.log.Info("Booking times updated",
		zap.String("booking_id", bookingID),
		zap.String("pickup_time", booking.PickupTime),
		zap.String("return_time", booking.ReturnTime))

	resp := response.BookingToResponse(booking, vehicle, nil)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, role, bookingID string) error {
	booking, err := s.findBooking(ctx, userID, role, bookingID)
	if err != nil {
		return err
	}

	if err := entity.TransitionBooking(booking, entity.BookingStatusCancelled, time.Now()); err != nil {
		return err
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID))
	return nil
}

// ReturnVehicle completes a booking and writes the reported odometer reading
// back to the vehicle.
func (s *bookingService) ReturnVehicle(ctx context.Context, userID, role, bookingID string, req *request.ReturnVehicleRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Return vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, userID, role, bookingID)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", booking.VehicleID.String())
	}

	if req.Mileage < vehicle.Mileage {
		return nil, fmt.Errorf("invalid mileage: %d is below current reading %d", req.Mileage, vehicle.Mileage)
	}

	if err := entity.TransitionBooking(booking, entity.BookingStatusCompleted, time.Now()); err != nil {
		return nil, err
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCompleted); err != nil {
		return nil, fmt.Errorf("complete booking: %w", err)
	}

	if err := s.repo.Vehicle.UpdateMileage(ctx, vehicle.ID, req.Mileage); err != nil {
		s.log.Error("Failed to update mileage after return",
			zap.Error(err),
			zap.String("vehicle_id", vehicle.ID.String()))
		return nil, fmt.Errorf("update mileage: %w", err)
	}
	vehicle.Mileage = req.Mileage

	s.log.Info("Vehicle returned",
		zap.String("booking_id", bookingID),
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.Int("mileage", req.Mileage),
		zap.String("location", req.Location))

	resp := response.BookingToResponse(booking, vehicle, nil)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		vehicle, err := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("find vehicle for booking: %w", err)
		}
		user, err := s.repo.User.FindByID(ctx, booking.UserID)
		if err != nil {
			return nil, fmt.Errorf("find user for booking: %w", err)
		}
		bookingResponses[i] = response.BookingToResponse(booking, vehicle, user)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}
