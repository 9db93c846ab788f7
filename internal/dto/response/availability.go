package response

// DayAvailabilityResponse is one calendar day of a vehicle's availability.
type DayAvailabilityResponse struct {
	Date              string   `json:"date"`
	Status            string   `json:"status"`
	FullyBooked       bool     `json:"fully_booked"`
	PartiallyBooked   bool     `json:"partially_booked"`
	MaintenanceReason string   `json:"maintenance_reason,omitempty"`
	Bookings          []string `json:"bookings,omitempty"` // "HH:MM - HH:MM" per booking covering the day
}

type VehicleAvailabilityResponse struct {
	VehicleID string                    `json:"vehicle_id"`
	Start     string                    `json:"start"`
	End       string                    `json:"end"`
	Days      []DayAvailabilityResponse `json:"days"`
}

// SlotHoursResponse lists selectable pickup hours for a day and, when a
// pickup hour was supplied, the matching return hours.
type SlotHoursResponse struct {
	Date        string `json:"date"`
	PickupHours []int  `json:"pickup_hours"`
	ReturnHours []int  `json:"return_hours,omitempty"`
}

// FleetVehicleResponse is one card of the fleet "today" grid: the vehicle,
// its derived status for the day and the bookings shown on the card.
type FleetVehicleResponse struct {
	Vehicle           VehicleResponse `json:"vehicle"`
	DayStatus         string          `json:"day_status"`
	MaintenanceReason string          `json:"maintenance_reason,omitempty"`
	BookedBy          []string        `json:"booked_by,omitempty"`
	BookingTimes      []string        `json:"booking_times,omitempty"`
}

type FleetTodayResponse struct {
	Date     string                 `json:"date"`
	Vehicles []FleetVehicleResponse `json:"vehicles"`
}
