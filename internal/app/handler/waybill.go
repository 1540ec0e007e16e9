package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/service"
)

// Waybills - выписка, просмотр и закрытие путевых листов
func (h *Handler) Waybills(ctx *gin.Context) {
	allowOrigin(ctx)

	switch ctx.Request.Method {
	case http.MethodOptions:
		preflight(ctx, "GET, POST, PUT, OPTIONS", "Content-Type, X-Auth-Token")

	case http.MethodGet:
		h.waybillsGet(ctx)

	case http.MethodPost:
		h.waybillsPost(ctx)

	case http.MethodPut:
		h.waybillsPut(ctx)

	default:
		fail(ctx, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *Handler) waybillsGet(ctx *gin.Context) {
	idStr := ctx.Query("id")
	if idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			fail(ctx, http.StatusBadRequest, "Invalid waybill id")
			return
		}

		waybill, err := h.Repository.GetWaybill(id)
		if err != nil {
			logrus.Errorf("get waybill %d: %v", id, err)
			fail(ctx, http.StatusInternalServerError, "Internal server error")
			return
		}
		// null, если листа нет
		ctx.JSON(http.StatusOK, waybill)
		return
	}

	waybills, err := h.Repository.GetWaybills()
	if err != nil {
		logrus.Errorf("list waybills: %v", err)
		fail(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.JSON(http.StatusOK, waybills)
}

func (h *Handler) waybillsPost(ctx *gin.Context) {
	body, err := parseBody(ctx)
	if err != nil {
		fail(ctx, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	waybill, err := h.WaybillService.Issue(service.IssueInput{
		WaybillNumber: strField(body, "waybill_number"),
		RouteID:       intPtr(body, "route_id"),
		VehicleNumber: strField(body, "vehicle_number"),
		DriverName:    strField(body, "driver_name"),
		IssueDate:     strField(body, "issue_date"),
		MileageStart:  floatPtr(body, "mileage_start"),
		FuelStart:     floatPtr(body, "fuel_start"),
	})
	switch {
	case errors.Is(err, service.ErrWaybillFieldsRequired):
		fail(ctx, http.StatusBadRequest, "vehicle_number and driver_name required")
		return
	case err != nil:
		logrus.Errorf("issue waybill: %v", err)
		fail(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.JSON(http.StatusCreated, waybill)
}

func (h *Handler) waybillsPut(ctx *gin.Context) {
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

	waybill, err := h.WaybillService.Close(id, service.CloseInput{
		MileageEnd: floatPtr(body, "mileage_end"),
		FuelEnd:    floatPtr(body, "fuel_end"),
		Status:     strField(body, "status"),
	})
	if err != nil {
		logrus.Errorf("close waybill %d: %v", id, err)
		fail(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.JSON(http.StatusOK, waybill)
}
