package ds

// Driver — водитель; привязка к машине через номер ТС (nullable)
type Driver struct {
	ID            int     `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" gorm:"not null"`
	License       string  `json:"license" gorm:"not null"`
	VehicleNumber *string `json:"vehicle_number"`
	Status        string  `json:"status" gorm:"not null;default:available"`
}

func (Driver) TableName() string { return "drivers" }
