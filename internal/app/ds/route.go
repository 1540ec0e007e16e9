package ds

// Route — маршрут (плановый или выполняемый рейс).
// request_id и waybill_number заполняются по мере оформления.
type Route struct {
	ID            int     `json:"id" gorm:"primaryKey"`
	VehicleNumber string  `json:"vehicle_number" gorm:"not null"`
	DriverName    string  `json:"driver_name" gorm:"not null"`
	DistanceKm    float64 `json:"distance_km" gorm:"not null;default:0"`
	FuelLiters    float64 `json:"fuel_liters" gorm:"not null;default:0"`
	Status        string  `json:"status" gorm:"not null;default:planned"`
	RequestID     *int    `json:"request_id"`
	WaybillNumber *string `json:"waybill_number"`
}

func (Route) TableName() string { return "routes" }
