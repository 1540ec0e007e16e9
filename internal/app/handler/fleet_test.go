package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFleet_UnknownEntity(t *testing.T) {
	r, _ := setupRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut} {
		w := doRequest(t, r, method, "/api/fleet?entity=warehouses", map[string]interface{}{})
		require.Equal(t, http.StatusNotFound, w.Code, method)
		assert.JSONEq(t, `{"error":"Entity not found"}`, w.Body.String())
		requireCORS(t, w)
	}
}

func TestFleet_PostVehicleWithDefaults(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/fleet?entity=vehicles", map[string]interface{}{
		"number": "A100",
		"model":  "Truck",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Greater(t, body["id"].(float64), 0.0)
	assert.Equal(t, "A100", body["number"])
	assert.Equal(t, "idle", body["status"])
}

func TestFleet_PostMissingRequiredField(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/fleet?entity=vehicles", map[string]interface{}{
		"number": "A100",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing required field: model"}`, w.Body.String())
}

func TestFleet_GetVehiclesOrderedByID(t *testing.T) {
	r, _ := setupRouter(t)

	for _, number := range []string{"A100", "B200", "C300"} {
		w := doRequest(t, r, http.MethodPost, "/api/fleet?entity=vehicles", map[string]interface{}{
			"number": number,
			"model":  "Truck",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/api/fleet?entity=vehicles", nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decodeList(t, w)
	require.Len(t, list, 3)
	assert.Equal(t, "A100", list[0]["number"])
	assert.Equal(t, "C300", list[2]["number"])
}

func TestFleet_GetEmptyListIsArray(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/fleet?entity=drivers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestFleet_PutVehicleStatus(t *testing.T) {
	r, _ := setupRouter(t)

	created := doRequest(t, r, http.MethodPost, "/api/fleet?entity=vehicles", map[string]interface{}{
		"number": "A100",
		"model":  "Truck",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeBody(t, created)["id"]

	w := doRequest(t, r, http.MethodPut, "/api/fleet?entity=vehicles", map[string]interface{}{
		"id":     id,
		"status": "active",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "active", body["status"])
	assert.Equal(t, "A100", body["number"])
}

func TestFleet_PutWithoutID(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/fleet?entity=vehicles", map[string]interface{}{
		"status": "active",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"ID required"}`, w.Body.String())
}

func TestFleet_PutMissingRowReturnsNull(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/fleet?entity=vehicles", map[string]interface{}{
		"id":     999,
		"status": "active",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestFleet_DriverCreateAndReassign(t *testing.T) {
	r, _ := setupRouter(t)

	created := doRequest(t, r, http.MethodPost, "/api/fleet?entity=drivers", map[string]interface{}{
		"name":    "Сидоров А.А.",
		"license": "77 01 123456",
	})
	require.Equal(t, http.StatusCreated, created.Code)
	body := decodeBody(t, created)
	assert.Equal(t, "available", body["status"])
	assert.Nil(t, body["vehicle_number"])

	w := doRequest(t, r, http.MethodPut, "/api/fleet?entity=drivers", map[string]interface{}{
		"id":             body["id"],
		"status":         "on_route",
		"vehicle_number": "A100",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody(t, w)
	assert.Equal(t, "on_route", updated["status"])
	assert.Equal(t, "A100", updated["vehicle_number"])
}

func TestFleet_RequestDefaults(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/fleet?entity=requests", map[string]interface{}{
		"date":         "2024-05-01",
		"from_address": "Москва, Ленина 1",
		"to_address":   "Тверь, Советская 10",
		"cargo_type":   "стройматериалы",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "medium", body["priority"])
	assert.Equal(t, "стройматериалы", body["cargo_type"])
	assert.Nil(t, body["passengers_count"])
}

func TestFleet_RouteDefaults(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/fleet?entity=routes", map[string]interface{}{
		"vehicle_number": "A100",
		"driver_name":    "Сидоров А.А.",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "planned", body["status"])
	assert.EqualValues(t, 0, body["distance_km"])
	assert.EqualValues(t, 0, body["fuel_liters"])
	assert.Nil(t, body["request_id"])
}

func TestFleet_Stats(t *testing.T) {
	r, _ := setupRouter(t)

	// пустая база: все счетчики нулевые, total_fuel — число, а не null
	w := doRequest(t, r, http.MethodGet, "/api/fleet?entity=stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"active_vehicles":0,"active_routes":0,"pending_requests":0,"total_fuel":0}`, w.Body.String())

	doRequest(t, r, http.MethodPost, "/api/fleet?entity=vehicles", map[string]interface{}{
		"number": "A100", "model": "Truck", "status": "active",
	})
	doRequest(t, r, http.MethodPost, "/api/fleet?entity=requests", map[string]interface{}{
		"date": "2024-05-01", "from_address": "A", "to_address": "B",
	})
	doRequest(t, r, http.MethodPost, "/api/fleet?entity=routes", map[string]interface{}{
		"vehicle_number": "A100", "driver_name": "Сидоров", "status": "active", "fuel_liters": 40.5,
	})

	w = doRequest(t, r, http.MethodGet, "/api/fleet?entity=stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["active_vehicles"])
	assert.EqualValues(t, 1, body["active_routes"])
	assert.EqualValues(t, 1, body["pending_requests"])
	assert.InDelta(t, 40.5, body["total_fuel"].(float64), 1e-9)
}

func TestFleet_Preflight(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodOptions, "/api/fleet", nil)
	requirePreflight(t, w, "GET, POST, PUT, DELETE, OPTIONS")
	require.Equal(t, "Content-Type, X-User-Id", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestFleet_MethodNotAllowed(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodDelete, "/api/fleet?entity=vehicles", nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
}
