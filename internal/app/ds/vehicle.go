package ds

// Vehicle — транспортное средство автопарка
type Vehicle struct {
	ID     int    `json:"id" gorm:"primaryKey"`
	Number string `json:"number" gorm:"not null"`
	Model  string `json:"model" gorm:"not null"`
	Status string `json:"status" gorm:"not null;default:idle"`
}

func (Vehicle) TableName() string { return "vehicles" }
