package request

// CreateBookingRequest reserves a vehicle for an inclusive calendar-day range
// with hour-granularity pickup/return times ("HH:MM", working hours only).
type CreateBookingRequest struct {
	VehicleID  string `json:"vehicle_id" validate:"required,uuid4"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	PickupTime string `json:"pickup_time" validate:"required"`
	ReturnTime string `json:"return_time" validate:"required"`
}

type UpdateBookingTimesRequest struct {
	PickupTime string `json:"pickup_time" validate:"required"`
	ReturnTime string `json:"return_time" validate:"required"`
}

// ReturnVehicleRequest completes a booking; the new odometer reading is
// written back to the vehicle.
type ReturnVehicleRequest struct {
	Mileage  int    `json:"mileage" validate:"required,min=1"`
	Location string `json:"location" validate:"required,min=2,max=100"`
}
