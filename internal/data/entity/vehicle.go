package entity

import "time"

// VehicleStatus is the administrative flag set by admin actions (maintenance
// scheduling). Day-level availability is always derived from bookings and is
// never written back to this field.
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusBooked      VehicleStatus = "booked"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

type Vehicle struct {
	Base
	Brand             string        `db:"brand"`
	Model             string        `db:"model"`
	LicensePlate      string        `db:"license_plate"`
	Mileage           int           `db:"mileage"`
	ImageURL          *string       `db:"image_url"`
	Status            VehicleStatus `db:"status"`
	MaintenanceStart  *time.Time    `db:"maintenance_start"`
	MaintenanceEnd    *time.Time    `db:"maintenance_end"`
	MaintenanceReason *string       `db:"maintenance_reason"`
}

// InMaintenanceOn reports whether date falls inside the vehicle's maintenance
// window. The window only takes effect while status is maintenance; a stale
// window on an available vehicle is ignored.
func (v *Vehicle) InMaintenanceOn(date time.Time) bool {
	if v == nil || v.Status != VehicleStatusMaintenance {
		return false
	}
	if v.MaintenanceStart == nil || v.MaintenanceEnd == nil {
		return false
	}
	day := truncateToDay(date)
	return !day.Before(truncateToDay(*v.MaintenanceStart)) && !day.After(truncateToDay(*v.MaintenanceEnd))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
