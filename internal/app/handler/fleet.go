package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/ds"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/repository"
)

// entityPolicy — декларативное описание сущности автопарка:
// обязательные поля и операции над таблицей. Роутер метода ничего
// не знает о конкретных сущностях.
type entityPolicy struct {
	required []string
	list     func(r *repository.Repository) (interface{}, error)
	create   func(r *repository.Repository, body map[string]interface{}) (interface{}, error)
	update   func(r *repository.Repository, id int, body map[string]interface{}) (interface{}, error)
}

var fleetEntities = map[string]entityPolicy{
	"vehicles": {
		required: []string{"number", "model"},
		list: func(r *repository.Repository) (interface{}, error) {
			return r.GetVehicles()
		},
		create: func(r *repository.Repository, body map[string]interface{}) (interface{}, error) {
			vehicle := &ds.Vehicle{
				Number: strField(body, "number"),
				Model:  strField(body, "model"),
				Status: strFieldDefault(body, "status", "idle"),
			}
			return vehicle, r.CreateVehicle(vehicle)
		},
		update: func(r *repository.Repository, id int, body map[string]interface{}) (interface{}, error) {
			return r.UpdateVehicle(id, map[string]interface{}{
				"status": body["status"],
			})
		},
	},
	"drivers": {
		required: []string{"name", "license"},
		list: func(r *repository.Repository) (interface{}, error) {
			return r.GetDrivers()
		},
		create: func(r *repository.Repository, body map[string]interface{}) (interface{}, error) {
			driver := &ds.Driver{
				Name:          strField(body, "name"),
				License:       strField(body, "license"),
				VehicleNumber: strPtr(body, "vehicle_number"),
				Status:        strFieldDefault(body, "status", "available"),
			}
			return driver, r.CreateDriver(driver)
		},
		update: func(r *repository.Repository, id int, body map[string]interface{}) (interface{}, error) {
			return r.UpdateDriver(id, map[string]interface{}{
				"status":         body["status"],
				"vehicle_number": body["vehicle_number"],
			})
		},
	},
	"requests": {
		required: []string{"date", "from_address", "to_address"},
		list: func(r *repository.Repository) (interface{}, error) {
			return r.GetRequests()
		},
		create: func(r *repository.Repository, body map[string]interface{}) (interface{}, error) {
			request := &ds.TransportRequest{
				Date:                strField(body, "date"),
				FromAddress:         strField(body, "from_address"),
				ToAddress:           strField(body, "to_address"),
				Status:              strFieldDefault(body, "status", "pending"),
				Priority:            strFieldDefault(body, "priority", "medium"),
				CargoType:           strPtr(body, "cargo_type"),
				CargoWeightKg:       floatPtr(body, "cargo_weight_kg"),
				PassengersCount:     intPtr(body, "passengers_count"),
				RequiredVehicleType: strPtr(body, "required_vehicle_type"),
			}
			return request, r.CreateRequest(request)
		},
		update: func(r *repository.Repository, id int, body map[string]interface{}) (interface{}, error) {
			return r.UpdateRequest(id, map[string]interface{}{
				"status": body["status"],
			})
		},
	},
	"routes": {
		required: []string{"vehicle_number", "driver_name"},
		list: func(r *repository.Repository) (interface{}, error) {
			return r.GetRoutes()
		},
		create: func(r *repository.Repository, body map[string]interface{}) (interface{}, error) {
			route := &ds.Route{
				VehicleNumber: strField(body, "vehicle_number"),
				DriverName:    strField(body, "driver_name"),
				DistanceKm:    floatField(body, "distance_km", 0),
				FuelLiters:    floatField(body, "fuel_liters", 0),
				Status:        strFieldDefault(body, "status", "planned"),
				RequestID:     intPtr(body, "request_id"),
				WaybillNumber: strPtr(body, "waybill_number"),
			}
			return route, r.CreateRoute(route)
		},
		update: func(r *repository.Repository, id int, body map[string]interface{}) (interface{}, error) {
			return r.UpdateRoute(id, map[string]interface{}{
				"status": body["status"],
			})
		},
	},
}

// Fleet - роутер CRUD по сущностям автопарка (?entity=...)
func (h *Handler) Fleet(ctx *gin.Context) {
	allowOrigin(ctx)

	entity := ctx.Query("entity")

	switch ctx.Request.Method {
	case http.MethodOptions:
		preflight(ctx, "GET, POST, PUT, DELETE, OPTIONS", "Content-Type, X-User-Id")

	case http.MethodGet:
		h.fleetGet(ctx, entity)

	case http.MethodPost:
		h.fleetPost(ctx, entity)

	case http.MethodPut:
		h.fleetPut(ctx, entity)

	default:
		fail(ctx, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *Handler) fleetGet(ctx *gin.Context, entity string) {
	// stats — синтетическая read-only сущность
	if entity == "stats" {
		stats, err := h.Repository.GetFleetStats()
		if err != nil {
			logrus.Errorf("fleet stats: %v", err)
			fail(ctx, http.StatusInternalServerError, "Internal server error")
			return
		}
		ctx.JSON(http.StatusOK, stats)
		return
	}

	policy, ok := fleetEntities[entity]
	if !ok {
		fail(ctx, http.StatusNotFound, "Entity not found")
		return
	}

	rows, err := policy.list(h.Repository)
	if err != nil {
		logrus.Errorf("list %s: %v", entity, err)
		fail(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

func (h *Handler) fleetPost(ctx *gin.Context, entity string) {
	policy, ok := fleetEntities[entity]
	if !ok {
		fail(ctx, http.StatusNotFound, "Entity not found")
		return
	}

	body, err := parseBody(ctx)
	if err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	for _, field := range policy.required {
		if _, present := body[field]; !present {
			fail(ctx, http.StatusBadRequest, "Missing required field: "+field)
			return
		}
	}

	row, err := policy.create(h.Repository, body)
	if err != nil {
		logrus.Errorf("create %s: %v", entity, err)
		fail(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.JSON(http.StatusCreated, row)
}

func (h *Handler) fleetPut(ctx *gin.Context, entity string) {
	policy, ok := fleetEntities[entity]
	if !ok {
		fail(ctx, http.StatusNotFound, "Entity not found")
		return
	}

	body, err := parseBody(ctx)
	if err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	id, ok := idField(body)
	if !ok {
		fail(ctx, http.StatusBadRequest, "ID required")
		return
	}

	row, err := policy.update(h.Repository, id, body)
	if err != nil {
		logrus.Errorf("update %s %d: %v", entity, id, err)
		fail(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Отсутствующая строка — 200 с null, как UPDATE ... RETURNING без результата
	ctx.JSON(http.StatusOK, row)
}
