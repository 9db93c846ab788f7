package usecase

import (
	"context"
	"fmt"
	"time"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"
	"fleet-booking/internal/dto/request"
	"fleet-booking/internal/dto/response"
	"fleet-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VehicleService interface {
	GetVehicles(ctx context.Context) ([]response.VehicleResponse, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error)

	// Admin endpoints
	CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req *request.VehicleUpdateRequest) (*response.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
	ScheduleMaintenance(ctx context.Context, vehicleID string, req *request.ScheduleMaintenanceRequest) (*response.VehicleResponse, error)
	CancelMaintenance(ctx context.Context, vehicleID string) (*response.VehicleResponse, error)
}

type vehicleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVehicleService(repo *repository.Repository, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo: repo,
		log:  log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) findVehicle(ctx context.Context, vehicleID string) (*entity.Vehicle, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}
	return vehicle, nil
}

func (s *vehicleService) GetVehicles(ctx context.Context) ([]response.VehicleResponse, error) {
	vehicles, err := s.repo.Vehicle.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get vehicles", zap.Error(err))
		return nil, fmt.Errorf("get vehicles: %w", err)
	}

	vehicleResponses := make([]response.VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		vehicleResponses[i] = response.VehicleToResponse(vehicle)
	}

	return vehicleResponses, nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error) {
	vehicle, err := s.findVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *vehicleService) CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	vehicle := &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Brand:        req.Brand,
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
		Mileage:      req.Mileage,
		ImageURL:     req.ImageURL,
		Status:       entity.VehicleStatusAvailable,
	}

	if err := s.repo.Vehicle.Create(ctx, vehicle); err != nil {
		s.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("license_plate", req.LicensePlate))
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.log.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("license_plate", vehicle.LicensePlate))

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req *request.VehicleUpdateRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vehicle, err := s.findVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.Brand != nil {
		vehicle.Brand = *req.Brand
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.LicensePlate != nil {
		vehicle.LicensePlate = *req.LicensePlate
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}
	if req.ImageURL != nil {
		vehicle.ImageURL = req.ImageURL
	}
	vehicle.UpdatedAt = time.Now()

	if err := s.repo.Vehicle.Update(ctx, vehicle); err != nil {
		s.log.Error("Failed to update vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("update vehicle %s: %w", vehicleID, err)
	}

	s.log.Info("Vehicle updated", zap.String("vehicle_id", vehicleID))

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	vehicle, err := s.findVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}

	if err := s.repo.Vehicle.Delete(ctx, vehicle.ID); err != nil {
		s.log.Error("Failed to delete vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID))
		return fmt.Errorf("delete vehicle %s: %w", vehicleID, err)
	}

	return nil
}

// ScheduleMaintenance flags the vehicle and stores the window. The window is
// only effective while the status stays maintenance.
func (s *vehicleService) ScheduleMaintenance(ctx context.Context, vehicleID string, req *request.ScheduleMaintenanceRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Schedule maintenance validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vehicle, err := s.findVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", req.StartDate, err)
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s: %w", req.EndDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("invalid maintenance window: end date before start date")
	}

	if err := s.repo.Vehicle.SetMaintenance(ctx, vehicle.ID, start, end, req.Reason); err != nil {
		return nil, fmt.Errorf("schedule maintenance for vehicle %s: %w", vehicleID, err)
	}

	vehicle.Status = entity.VehicleStatusMaintenance
	vehicle.MaintenanceStart = &start
	vehicle.MaintenanceEnd = &end
	vehicle.MaintenanceReason = &req.Reason

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) CancelMaintenance(ctx context.Context, vehicleID string) (*response.VehicleResponse, error) {
	vehicle, err := s.findVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if vehicle.Status != entity.VehicleStatusMaintenance {
		return nil, fmt.Errorf("vehicle %s is not in maintenance", vehicleID)
	}

	if err := s.repo.Vehicle.ClearMaintenance(ctx, vehicle.ID); err != nil {
		return nil, fmt.Errorf("cancel maintenance for vehicle %s: %w", vehicleID, err)
	}

	s.log.Info("Vehicle maintenance cancelled", zap.String("vehicle_id", vehicleID))

	vehicle.Status = entity.VehicleStatusAvailable
	vehicle.MaintenanceStart = nil
	vehicle.MaintenanceEnd = nil
	vehicle.MaintenanceReason = nil

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}
