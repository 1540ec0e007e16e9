package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/service"
)

// Auth - единая точка входа аутентификации: действие задается в теле
// запроса полем action (login по умолчанию, verify)
func (h *Handler) Auth(ctx *gin.Context) {
	allowOrigin(ctx)

	switch ctx.Request.Method {
	case http.MethodOptions:
		preflight(ctx, "GET, POST, OPTIONS", "Content-Type, X-Auth-Token")
		return

	case http.MethodPost:
		body, err := parseBody(ctx)
		if err != nil {
			fail(ctx, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		switch strFieldDefault(body, "action", "login") {
		case "login":
			h.login(ctx, body)
			return
		case "verify":
			h.verify(ctx, body)
			return
		}
		// неизвестное действие проваливается в 405
	}

	fail(ctx, http.StatusMethodNotAllowed, "Method not allowed")
}

func (h *Handler) login(ctx *gin.Context, body map[string]interface{}) {
	result, err := h.AuthService.Login(strField(body, "username"), strField(body, "password"))
	switch {
	case errors.Is(err, service.ErrCredentialsRequired):
		fail(ctx, http.StatusBadRequest, "Username and password required")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		fail(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	case err != nil:
		logrus.Errorf("login failed: %v", err)
		fail(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *Handler) verify(ctx *gin.Context, body map[string]interface{}) {
	valid, err := h.AuthService.VerifyToken(strField(body, "token"))
	if errors.Is(err, service.ErrTokenRequired) {
		fail(ctx, http.StatusBadRequest, "Token required")
		return
	}
	if err != nil {
		logrus.Errorf("verify token: %v", err)
		fail(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"valid": valid})
}
