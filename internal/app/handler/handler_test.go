package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pr-poehali-dev/fleet-management-system/internal/app/auth"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/ds"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/repository"
	"github.com/pr-poehali-dev/fleet-management-system/internal/app/service"
)

// setupRouter — приложение на in-memory sqlite с боевой регистрацией роутов
func setupRouter(t *testing.T) (*gin.Engine, *repository.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo := repository.NewWithDB(db)
	require.NoError(t, repo.Migrate())

	hasher := auth.NewSHA256Hasher()
	issuer := auth.NewDigestIssuer()
	h := NewHandler(repo, service.NewAuthService(repo, hasher, issuer), service.NewWaybillService(repo))

	r := gin.New()
	r.Any("/api/auth", h.Auth)
	r.Any("/api/fleet", h.Fleet)
	r.Any("/api/waybills", h.Waybills)
	return r, repo
}

// seedUser — пользователь с sha256-хешем пароля, как в боевой таблице users
func seedUser(t *testing.T, repo *repository.Repository, username, password, role, fullName string) *ds.User {
	t.Helper()

	passwordHash, err := auth.NewSHA256Hasher().Hash(password)
	require.NoError(t, err)

	user := &ds.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		FullName:     fullName,
	}
	require.NoError(t, repo.CreateUser(user))
	return user
}

func doRequest(t *testing.T, r *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

func requireCORS(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func requirePreflight(t *testing.T, w *httptest.ResponseRecorder, methods string) {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Body.String())
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, methods, w.Header().Get("Access-Control-Allow-Methods"))
	require.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}
