package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/ds"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/repository"
)

var (
	ErrWaybillFieldsRequired = errors.New("vehicle_number and driver_name required")
	// Исчерпаны попытки подобрать свободный номер за день
	ErrWaybillNumberExhausted = errors.New("failed to allocate waybill number")
)

// Сколько раз пробуем следующий номер при коллизии уникального индекса
const waybillNumberAttempts = 5

// WaybillService - выписка и закрытие путевых листов
type WaybillService struct {
	repo *repository.Repository
	now  func() time.Time
}

func NewWaybillService(repo *repository.Repository) *WaybillService {
	return &WaybillService{repo: repo, now: time.Now}
}

// IssueInput - входные данные выписки путевого листа
type IssueInput struct {
	WaybillNumber string
	RouteID       *int
	VehicleNumber string
	DriverName    string
	IssueDate     string
	MileageStart  *float64
	FuelStart     *float64
}

// Issue — выписка листа. Номер, если не задан, берется из посуточной
// последовательности текущего дня: count(выписано сегодня)+1. Дата в
// номере — всегда сегодняшняя, даже если лист датирован задним числом.
// Читающий count и вставка не атомарны, поэтому коллизию ловит
// уникальный индекс по номеру, а сервис повторяет попытку со
// следующим номером.
func (s *WaybillService) Issue(input IssueInput) (*ds.Waybill, error) {
	if input.VehicleNumber == "" || input.DriverName == "" {
		return nil, ErrWaybillFieldsRequired
	}

	today := s.now().Format("2006-01-02")
	issueDate := input.IssueDate
	if issueDate == "" {
		issueDate = today
	}

	for attempt := 0; attempt < waybillNumberAttempts; attempt++ {
		number := input.WaybillNumber
		if number == "" {
			count, err := s.repo.CountWaybillsByIssueDate(today)
			if err != nil {
				return nil, fmt.Errorf("count waybills: %w", err)
			}
			number = FormatWaybillNumber(today, int(count)+1+attempt)
		}

		waybill := &ds.Waybill{
			WaybillNumber: number,
			RouteID:       input.RouteID,
			VehicleNumber: input.VehicleNumber,
			DriverName:    input.DriverName,
			IssueDate:     issueDate,
			MileageStart:  input.MileageStart,
			FuelStart:     input.FuelStart,
			Status:        ds.WaybillStatusIssued,
		}

		err := s.repo.CreateWaybill(waybill)
		if err == nil {
			return waybill, nil
		}
		// Номер заняли параллельной выпиской — пробуем следующий
		if errors.Is(err, gorm.ErrDuplicatedKey) && input.WaybillNumber == "" {
			logrus.Warnf("waybill number %s already taken, retrying", number)
			continue
		}
		return nil, err
	}

	return nil, ErrWaybillNumberExhausted
}

// CloseInput - данные закрытия/правки путевого листа
type CloseInput struct {
	MileageEnd *float64
	FuelEnd    *float64
	Status     string
}

// Close — безусловный UPDATE: mileage_end, fuel_end и статус ставятся
// даже в NULL, предварительной проверки существования строки нет.
// Если строки не было — вернется (nil, nil).
func (s *WaybillService) Close(id int, input CloseInput) (*ds.Waybill, error) {
	status := input.Status
	if status == "" {
		status = ds.WaybillStatusClosed
	}

	return s.repo.UpdateWaybill(id, map[string]interface{}{
		"mileage_end": input.MileageEnd,
		"fuel_end":    input.FuelEnd,
		"status":      status,
	})
}

// FormatWaybillNumber — человекочитаемый номер ПЛ-YYYYMMDD-NNN
func FormatWaybillNumber(issueDate string, seq int) string {
	compact := issueDate
	if t, err := time.Parse("2006-01-02", issueDate); err == nil {
		compact = t.Format("20060102")
	}
	return fmt.Sprintf("ПЛ-%s-%03d", compact, seq)
}
