package ds

// Статусы путевого листа
const (
	WaybillStatusIssued = "issued"
	WaybillStatusClosed = "closed"
)

// Waybill — путевой лист: документ рейса с пробегом и топливом.
// Номер уникален (индекс в БД) и генерируется посуточной
// последовательностью вида ПЛ-YYYYMMDD-NNN.
type Waybill struct {
	ID            int      `json:"id" gorm:"primaryKey"`
	WaybillNumber string   `json:"waybill_number" gorm:"uniqueIndex;not null"`
	RouteID       *int     `json:"route_id"`
	VehicleNumber string   `json:"vehicle_number" gorm:"not null"`
	DriverName    string   `json:"driver_name" gorm:"not null"`
	IssueDate     string   `json:"issue_date" gorm:"type:date;not null;index"`
	MileageStart  *float64 `json:"mileage_start"`
	MileageEnd    *float64 `json:"mileage_end"`
	FuelStart     *float64 `json:"fuel_start"`
	FuelEnd       *float64 `json:"fuel_end"`
	Status        string   `json:"status" gorm:"not null;default:issued"`
}

func (Waybill) TableName() string { return "waybills" }
