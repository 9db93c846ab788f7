package usecase

import (
	"fleet-booking/internal/data/repository"
	"fleet-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Vehicle      VehicleService
	Booking      BookingService
	Availability AvailabilityService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		User:         NewUserService(repo, log),
		Vehicle:      NewVehicleService(repo, log),
		Booking:      NewBookingService(repo, log),
		Availability: NewAvailabilityService(repo, log),
	}
}
