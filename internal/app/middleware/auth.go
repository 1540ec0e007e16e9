package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/auth"
)

// AuthMiddleware - извлечение и опциональная проверка токена запроса
type AuthMiddleware struct {
	issuer auth.TokenIssuer
}

func NewAuthMiddleware(issuer auth.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer}
}

// OptionalAuth — кладет токен в контекст, если он есть и жив.
// Запрос не отклоняется: у API нет обязательной авторизации,
// токен используется для трассировки в логах.
func (am *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := am.extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		valid, err := am.issuer.Verify(token)
		if err != nil || !valid {
			c.Next()
			return
		}

		c.Set("auth_token", token)
		if jwtIssuer, ok := am.issuer.(*auth.JWTIssuer); ok {
			if claims, err := jwtIssuer.ValidateToken(token); err == nil {
				c.Set("username", claims.Username)
				c.Set("user_role", claims.Role)
			}
		}

		c.Next()
	}
}

// extractToken — токен из X-Auth-Token либо "Authorization: Bearer <token>"
func (am *AuthMiddleware) extractToken(c *gin.Context) string {
	if token := c.GetHeader("X-Auth-Token"); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// RequestID — сквозной идентификатор запроса в логах и ответе
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Header("X-Request-Id", requestID)

		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		}).Debug("request received")

		c.Next()
	}
}
