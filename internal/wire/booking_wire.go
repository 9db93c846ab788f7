package wire

import (
	"fleet-booking/internal/adaptor"
	"fleet-booking/internal/data/repository"
	"fleet-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireBooking configures booking lifecycle routes.
func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	auth := middleware.AuthSession(repo.Session, repo.User, log)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/api/bookings", bookingHandler.CreateBooking)
	r.With(auth).Get("/api/user/bookings", bookingHandler.GetUserBookings)
	r.With(auth).Put("/api/bookings/{id}/times", bookingHandler.UpdateBookingTimes)
	r.With(auth).Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
	r.With(auth).Put("/api/bookings/{id}/return", bookingHandler.ReturnVehicle)

	// ==================== ADMIN ROUTES ====================
	r.With(auth, middleware.Admin(log)).Route("/api/admin/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.GetAllBookings)
		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
