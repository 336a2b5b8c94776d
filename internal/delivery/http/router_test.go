package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dentist-dashboard/config"
	"dentist-dashboard/internal/delivery/http/handler"
	"dentist-dashboard/internal/delivery/http/middleware"
	"dentist-dashboard/pkg/jwt"
	"dentist-dashboard/pkg/validator"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() http.Handler {
	log, _ := test.NewNullLogger()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "s", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})

	authMiddleware := middleware.NewAuthMiddleware(jwtService, nil, "/login", log)
	return NewRouter(
		handler.NewAuthHandler(nil, validator.NewValidator(), "/login"),
		handler.NewDashboardHandler(nil, log, "/login"),
		authMiddleware,
		middleware.NewCORSMiddleware(""),
	).Setup()
}

func TestRouter_HealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_DashboardRequiresBearerToken(t *testing.T) {
	for _, path := range []string{"/api/v1/dashboard", "/api/v1/dashboard/patients/8f0e3c1a-7c1e-4c55-9a8e-2b7c1f0d9a11", "/api/v1/auth/me"} {
		rec := httptest.NewRecorder()
		newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `"redirect_to":"/login"`, path)
	}
}
