package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVehicleInMaintenanceOn(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)

	vehicle := &Vehicle{
		Status:           VehicleStatusMaintenance,
		MaintenanceStart: &start,
		MaintenanceEnd:   &end,
	}

	assert.True(t, vehicle.InMaintenanceOn(start))
	assert.True(t, vehicle.InMaintenanceOn(time.Date(2026, 4, 2, 23, 30, 0, 0, time.UTC)))
	assert.True(t, vehicle.InMaintenanceOn(end))
	assert.False(t, vehicle.InMaintenanceOn(end.AddDate(0, 0, 1)))
	assert.False(t, vehicle.InMaintenanceOn(start.AddDate(0, 0, -1)))

	// Window without the status flag is stale and ignored.
	vehicle.Status = VehicleStatusAvailable
	assert.False(t, vehicle.InMaintenanceOn(start))
}
