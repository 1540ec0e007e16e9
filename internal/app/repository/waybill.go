package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/ds"
)

// GetWaybills - все путевые листы, свежие сверху
func (r *Repository) GetWaybills() ([]ds.Waybill, error) {
	waybills := make([]ds.Waybill, 0)
	err := r.db.Order("issue_date DESC").Find(&waybills).Error
	return waybills, err
}

// GetWaybill — путевой лист по id; (nil, nil), если не найден
func (r *Repository) GetWaybill(id int) (*ds.Waybill, error) {
	var waybill ds.Waybill
	err := r.db.Where("id = ?", id).First(&waybill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &waybill, nil
}

// CountWaybillsByIssueDate — сколько листов уже выписано за дату
// (вход посуточной последовательности номеров)
func (r *Repository) CountWaybillsByIssueDate(issueDate string) (int64, error) {
	var count int64
	err := r.db.Model(&ds.Waybill{}).Where("issue_date = ?", issueDate).Count(&count).Error
	return count, err
}

// CreateWaybill — вставка; при коллизии номера вернется gorm.ErrDuplicatedKey
func (r *Repository) CreateWaybill(waybill *ds.Waybill) error {
	return r.db.Create(waybill).Error
}

// UpdateWaybill — закрытие/правка листа. Строка может не существовать:
// UPDATE все равно выполняется, ответ — (nil, nil).
func (r *Repository) UpdateWaybill(id int, fields map[string]interface{}) (*ds.Waybill, error) {
	if err := r.db.Model(&ds.Waybill{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return fetchByID[ds.Waybill](r.db, id)
}
