package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/repository"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/service"
)

type Handler struct {
	Repository     *repository.Repository
	AuthService    *service.AuthService
	WaybillService *service.WaybillService
}

func NewHandler(r *repository.Repository, authService *service.AuthService, waybillService *service.WaybillService) *Handler {
	return &Handler{
		Repository:     r,
		AuthService:    authService,
		WaybillService: waybillService,
	}
}

// helper для единых ошибок
func fail(ctx *gin.Context, code int, message string) {
	ctx.JSON(code, gin.H{"error": message})
}

// allowOrigin — CORS-заголовок на каждом ответе, включая ошибки
func allowOrigin(ctx *gin.Context) {
	ctx.Header("Access-Control-Allow-Origin", "*")
}

// preflight — ответ на OPTIONS: 200, пустое тело, заголовки по хендлеру
func preflight(ctx *gin.Context, methods, headers string) {
	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("Access-Control-Allow-Methods", methods)
	ctx.Header("Access-Control-Allow-Headers", headers)
	ctx.Header("Access-Control-Max-Age", "86400")
	ctx.Status(http.StatusOK)
}

// parseBody — тело запроса как map; пустое тело эквивалентно {}
func parseBody(ctx *gin.Context) (map[string]interface{}, error) {
	data, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]interface{}{}, nil
	}

	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// Доступ к полям тела. JSON-числа приходят как float64.

func strField(body map[string]interface{}, key string) string {
	if value, ok := body[key].(string); ok {
		return value
	}
	return ""
}

func strFieldDefault(body map[string]interface{}, key, fallback string) string {
	if value := strField(body, key); value != "" {
		return value
	}
	return fallback
}

func strPtr(body map[string]interface{}, key string) *string {
	if value, ok := body[key].(string); ok {
		return &value
	}
	return nil
}

func floatField(body map[string]interface{}, key string, fallback float64) float64 {
	if value, ok := body[key].(float64); ok {
		return value
	}
	return fallback
}

func floatPtr(body map[string]interface{}, key string) *float64 {
	if value, ok := body[key].(float64); ok {
		return &value
	}
	return nil
}

func intPtr(body map[string]interface{}, key string) *int {
	if value, ok := body[key].(float64); ok {
		intValue := int(value)
		return &intValue
	}
	return nil
}

// idField — идентификатор строки из тела PUT; ноль и отсутствие
// считаются "id не передан", как в исходном API
func idField(body map[string]interface{}) (int, bool) {
	value, ok := body["id"].(float64)
	if !ok || value == 0 {
		return 0, false
	}
	return int(value), true
}
