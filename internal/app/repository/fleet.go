package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/ds"
)

// GetVehicles - все ТС по возрастанию id
func (r *Repository) GetVehicles() ([]ds.Vehicle, error) {
	vehicles := make([]ds.Vehicle, 0)
	err := r.db.Order("id").Find(&vehicles).Error
	return vehicles, err
}

func (r *Repository) CreateVehicle(vehicle *ds.Vehicle) error {
	return r.db.Create(vehicle).Error
}

// UpdateVehicle — обновляется только статус. Если строки нет,
// возвращаем (nil, nil): UPDATE выполнен, RETURNING пуст.
func (r *Repository) UpdateVehicle(id int, fields map[string]interface{}) (*ds.Vehicle, error) {
	if err := r.db.Model(&ds.Vehicle{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return fetchByID[ds.Vehicle](r.db, id)
}

// GetDrivers - все водители по возрастанию id
func (r *Repository) GetDrivers() ([]ds.Driver, error) {
	drivers := make([]ds.Driver, 0)
	err := r.db.Order("id").Find(&drivers).Error
	return drivers, err
}

func (r *Repository) CreateDriver(driver *ds.Driver) error {
	return r.db.Create(driver).Error
}

func (r *Repository) UpdateDriver(id int, fields map[string]interface{}) (*ds.Driver, error) {
	if err := r.db.Model(&ds.Driver{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return fetchByID[ds.Driver](r.db, id)
}

// GetRequests - все заявки на перевозку по возрастанию id
func (r *Repository) GetRequests() ([]ds.TransportRequest, error) {
	requests := make([]ds.TransportRequest, 0)
	err := r.db.Order("id").Find(&requests).Error
	return requests, err
}

func (r *Repository) CreateRequest(request *ds.TransportRequest) error {
	return r.db.Create(request).Error
}

func (r *Repository) UpdateRequest(id int, fields map[string]interface{}) (*ds.TransportRequest, error) {
	if err := r.db.Model(&ds.TransportRequest{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return fetchByID[ds.TransportRequest](r.db, id)
}

// GetRoutes - все маршруты по возрастанию id
func (r *Repository) GetRoutes() ([]ds.Route, error) {
	routes := make([]ds.Route, 0)
	err := r.db.Order("id").Find(&routes).Error
	return routes, err
}

func (r *Repository) CreateRoute(route *ds.Route) error {
	return r.db.Create(route).Error
}

func (r *Repository) UpdateRoute(id int, fields map[string]interface{}) (*ds.Route, error) {
	if err := r.db.Model(&ds.Route{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return fetchByID[ds.Route](r.db, id)
}

// GetFleetStats - сводные счетчики: активные ТС и маршруты,
// ожидающие заявки и суммарное топливо по активным маршрутам
func (r *Repository) GetFleetStats() (*ds.FleetStats, error) {
	var stats ds.FleetStats

	if err := r.db.Model(&ds.Vehicle{}).Where("status = ?", "active").Count(&stats.ActiveVehicles).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&ds.Route{}).Where("status = ?", "active").Count(&stats.ActiveRoutes).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&ds.TransportRequest{}).Where("status = ?", "pending").Count(&stats.PendingRequests).Error; err != nil {
		return nil, err
	}
	err := r.db.Model(&ds.Route{}).
		Where("status = ?", "active").
		Select("COALESCE(SUM(fuel_liters), 0)").
		Scan(&stats.TotalFuel).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// fetchByID — перечитывание строки после UPDATE; отсутствие строки
// не ошибка (семантика "UPDATE ... RETURNING" без результата)
func fetchByID[T any](db *gorm.DB, id int) (*T, error) {
	var row T
	err := db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
