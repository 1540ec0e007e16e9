package ds

// TransportRequest — заявка на перевозку (груз или пассажиры).
// Ссылочная целостность (required_vehicle_type и т.п.) не проверяется
// на уровне приложения — доверяем схеме БД.
type TransportRequest struct {
	ID                  int      `json:"id" gorm:"primaryKey"`
	Date                string   `json:"date" gorm:"type:date;not null"`
	FromAddress         string   `json:"from_address" gorm:"not null"`
	ToAddress           string   `json:"to_address" gorm:"not null"`
	Status              string   `json:"status" gorm:"not null;default:pending"`
	Priority            string   `json:"priority" gorm:"not null;default:medium"`
	CargoType           *string  `json:"cargo_type"`
	CargoWeightKg       *float64 `json:"cargo_weight_kg"`
	PassengersCount     *int     `json:"passengers_count"`
	RequiredVehicleType *string  `json:"required_vehicle_type"`
}

func (TransportRequest) TableName() string { return "requests" }
