package adaptor

import (
	"net/http"
	"strings"

	"fleet-booking/internal/usecase"
	"fleet-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetVehicleAvailability handles GET /api/vehicles/{id}/availability?start=&end= (public)
func (h *AvailabilityHandler) GetVehicleAvailability(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	query := r.URL.Query()
	start := query.Get("start")
	end := query.Get("end")
	if start == "" || end == "" {
		utils.ResponseBadRequest(w, "start and end query parameters are required", nil)
		return
	}

	resp, err := h.service.GetVehicleAvailability(r.Context(), vehicleID, start, end)
	if err != nil {
		h.handleServiceError(w, err, "get vehicle availability")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetSlotHours handles GET /api/vehicles/{id}/availability/hours?date=&pickup= (public)
func (h *AvailabilityHandler) GetSlotHours(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	query := r.URL.Query()
	date := query.Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "date query parameter is required", nil)
		return
	}

	resp, err := h.service.GetSlotHours(r.Context(), vehicleID, date, query.Get("pickup"))
	if err != nil {
		h.handleServiceError(w, err, "get slot hours")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetFleetToday handles GET /api/fleet/today (public)
func (h *AvailabilityHandler) GetFleetToday(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetFleetToday(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get fleet today")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// handleServiceError maps availability errors to HTTP responses
func (h *AvailabilityHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
