package response

import (
	"time"

	"fleet-booking/internal/data/entity"
)

type VehicleResponse struct {
	ID                string  `json:"id"`
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	LicensePlate      string  `json:"license_plate"`
	Mileage           int     `json:"mileage"`
	ImageURL          *string `json:"image_url,omitempty"`
	Status            string  `json:"status"`
	MaintenanceStart  *string `json:"maintenance_start,omitempty"`
	MaintenanceEnd    *string `json:"maintenance_end,omitempty"`
	MaintenanceReason *string `json:"maintenance_reason,omitempty"`
}

func VehicleToResponse(vehicle *entity.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:                vehicle.ID.String(),
		Brand:             vehicle.Brand,
		Model:             vehicle.Model,
		LicensePlate:      vehicle.LicensePlate,
		Mileage:           vehicle.Mileage,
		ImageURL:          vehicle.ImageURL,
		Status:            string(vehicle.Status),
		MaintenanceReason: vehicle.MaintenanceReason,
	}
	if vehicle.MaintenanceStart != nil {
		s := vehicle.MaintenanceStart.Format(time.DateOnly)
		resp.MaintenanceStart = &s
	}
	if vehicle.MaintenanceEnd != nil {
		s := vehicle.MaintenanceEnd.Format(time.DateOnly)
		resp.MaintenanceEnd = &s
	}
	return resp
}
