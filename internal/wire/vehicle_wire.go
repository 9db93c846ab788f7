package wire

import (
	"fleet-booking/internal/adaptor"
	"fleet-booking/internal/data/repository"
	"fleet-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireVehicle configures the public vehicle catalog and admin fleet
// management routes.
func wireVehicle(
	r chi.Router,
	vehicleHandler *adaptor.VehicleHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/vehicles", vehicleHandler.GetVehicles)
	r.Get("/api/vehicles/{id}", vehicleHandler.GetVehicleByID)

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.AuthSession(repo.Session, repo.User, log),
		middleware.Admin(log),
	).Route("/api/admin/vehicles", func(r chi.Router) {
		r.Post("/", vehicleHandler.CreateVehicle)
		r.Put("/{id}", vehicleHandler.UpdateVehicle)
		r.Delete("/{id}", vehicleHandler.DeleteVehicle)
		r.Put("/{id}/maintenance", vehicleHandler.ScheduleMaintenance)
		r.Delete("/{id}/maintenance", vehicleHandler.CancelMaintenance)
	})
}
