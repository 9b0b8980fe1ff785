package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/shrine-api/internal/config"
	"github.com/deppfellow/shrine-api/internal/handler"
	"github.com/deppfellow/shrine-api/internal/lib/token"
	"github.com/deppfellow/shrine-api/internal/middleware"
	"github.com/deppfellow/shrine-api/internal/server"
	"github.com/deppfellow/shrine-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func testRouter(t *testing.T) *echo.Echo {
	t.Helper()
	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Primary:   config.Primary{Env: "test"},
			Server:    config.ServerConfig{CORSAllowedOrigins: []string{"https://shrine.example"}},
			RateLimit: config.DefaultRateLimitConfig(),
		},
		Logger: &logger,
	}

	// Only the donation purposes endpoint reaches a service in these tests.
	services := &service.Services{Donations: service.NewDonationService(nil)}
	tokens := token.NewProvider("test-secret-key-0123456789", time.Hour)

	return NewRouter(s, handler.NewHandlers(s, services), middleware.NewMiddlewares(s, tokens))
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestPublicRoutes(t *testing.T) {
	e := testRouter(t)

	rec := serve(e, http.MethodGet, "/api/donations/purposes")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mass Offering")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/").Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/status").Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/static/openapi.json").Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	e := testRouter(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/prayers"},
		{http.MethodGet, "/api/prayers/stats"},
		{http.MethodPatch, "/api/prayers/1/status"},
		{http.MethodPut, "/api/testimonies/1/status"},
		{http.MethodDelete, "/api/donations/1"},
		{http.MethodGet, "/api/mass-bookings"},
		{http.MethodPost, "/api/announcements"},
		{http.MethodPost, "/api/gallery"},
		{http.MethodPost, "/api/livestream"},
		{http.MethodPut, "/api/contact"},
		{http.MethodGet, "/api/admin/dashboard"},
		{http.MethodGet, "/api/admin/me"},
	} {
		rec := serve(e, tc.method, tc.target)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.target)
	}
}

func TestUnknownRoute(t *testing.T) {
	e := testRouter(t)

	rec := serve(e, http.MethodGet, "/api/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}
