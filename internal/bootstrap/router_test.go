package bootstrap

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SageMyrloc/FinalProject/internal/domain"
	httpHandler "github.com/SageMyrloc/FinalProject/internal/handler/http"
	"github.com/SageMyrloc/FinalProject/internal/repository/mocks"
	"github.com/SageMyrloc/FinalProject/internal/service"
)

type rejectAll struct{}

func (rejectAll) Authenticate(context.Context, string) (*domain.Session, error) {
	return nil, errors.New("no session")
}

type allowAll struct{}

func (allowAll) Allow(context.Context, string, int, time.Duration) (bool, error) { return true, nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := mocks.NewUserRepository(t)
	sessionRepo := mocks.NewSessionRepository(t)
	catalogRepo := mocks.NewCatalogRepository(t)
	activityRepo := mocks.NewActivityRepository(t)

	authService, err := service.NewAuthService(userRepo, sessionRepo, "router-secret", time.Hour)
	require.NoError(t, err)
	catalogService := service.NewCatalogService(catalogRepo)
	historyService := service.NewHistoryService(activityRepo)

	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &Config{CORSAllowedOrigin: "http://localhost:8080", RateLimitMax: 10, RateLimitWindow: time.Minute}

	return NewRouter(cfg, log, Handlers{
		Auth:     httpHandler.NewAuthHandler(authService, false),
		Catalog:  httpHandler.NewCatalogHandler(catalogService),
		Activity: httpHandler.NewActivityHandler(service.NewActivityService(catalogRepo, activityRepo), historyService),
		Pages:    httpHandler.NewPageHandler(authService, catalogService, historyService),
	}, rejectAll{}, allowAll{})
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	for _, path := range []string{"/", "/login/", "/register/", "/forgot-password"} {
		w = serve(r, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html", path)
	}

	w = serve(r, http.MethodGet, "/static/js/additem.js")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_GatedRoutesRequireSession(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodGet, "/api/items/appliance/Kitchen")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Authentication required"}`, w.Body.String())

	w = serve(r, http.MethodGet, "/api/activity-data?start=2024-01-01&end=2024-01-02")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	for _, path := range []string{"/menu/", "/additem/", "/viewdata/", "/userlog/1"} {
		w = serve(r, http.MethodGet, path)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login/", w.Header().Get("Location"), path)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, http.MethodOptions, "/api/login")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:8080", w.Header().Get("Access-Control-Allow-Origin"))
}
