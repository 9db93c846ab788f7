package response

import (
	"time"

	"fleet-booking/internal/data/entity"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	UserID       string    `json:"user_id"`
	VehicleName  string    `json:"vehicle_name,omitempty"`
	LicensePlate string    `json:"license_plate,omitempty"`
	UserName     string    `json:"user_name,omitempty"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	PickupTime   string    `json:"pickup_time"`
	ReturnTime   string    `json:"return_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// BookingToResponse converts a booking; vehicle and user may be nil when the
// caller has not resolved them (the detail fields stay empty).
func BookingToResponse(booking *entity.Booking, vehicle *entity.Vehicle, user *entity.User) BookingResponse {
	resp := BookingResponse{
		ID:         booking.ID.String(),
		VehicleID:  booking.VehicleID.String(),
		UserID:     booking.UserID.String(),
		StartDate:  booking.StartDate.Format(time.DateOnly),
		EndDate:    booking.EndDate.Format(time.DateOnly),
		PickupTime: booking.PickupTime,
		ReturnTime: booking.ReturnTime,
		Status:     string(booking.Status),
		CreatedAt:  booking.CreatedAt,
	}
	if vehicle != nil {
		resp.VehicleName = vehicle.Brand + " " + vehicle.Model
		resp.LicensePlate = vehicle.LicensePlate
	}
	if user != nil {
		resp.UserName = user.FullName
	}
	return resp
}
