package request

type VehicleRequest struct {
	Brand        string  `json:"brand" validate:"required,min=1,max=50"`
	Model        string  `json:"model" validate:"required,min=1,max=50"`
	LicensePlate string  `json:"license_plate" validate:"required,min=4,max=16"`
	Mileage      int     `json:"mileage" validate:"min=0"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type VehicleUpdateRequest struct {
	Brand        *string `json:"brand,omitempty" validate:"omitempty,min=1,max=50"`
	Model        *string `json:"model,omitempty" validate:"omitempty,min=1,max=50"`
	LicensePlate *string `json:"license_plate,omitempty" validate:"omitempty,min=4,max=16"`
	Mileage      *int    `json:"mileage,omitempty" validate:"omitempty,min=0"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// ScheduleMaintenanceRequest puts a vehicle into maintenance for an inclusive
// date range. Dates use YYYY-MM-DD.
type ScheduleMaintenanceRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required,min=3,max=200"`
}
