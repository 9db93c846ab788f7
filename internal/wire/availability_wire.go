package wire

import (
	"fleet-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAvailability configures the public availability routes backing the
// booking calendar and the fleet grid.
func wireAvailability(r chi.Router, availabilityHandler *adaptor.AvailabilityHandler) {
	r.Get("/api/vehicles/{id}/availability", availabilityHandler.GetVehicleAvailability)
	r.Get("/api/vehicles/{id}/availability/hours", availabilityHandler.GetSlotHours)
	r.Get("/api/fleet/today", availabilityHandler.GetFleetToday)
}
