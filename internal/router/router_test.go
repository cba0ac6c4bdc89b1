package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"promocards/internal/config"
	"promocards/internal/handler"
	"promocards/internal/service"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	cfg := &config.Config{FrontendOrigins: []string{"http://localhost:5173"}}
	Register(e, cfg,
		handler.NewCardHandler(nil, service.NewUploadValidator()),
		handler.NewPolishHandler(nil),
	)
	return e
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])

	ts, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestCORSPreflight(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodOptions, "/cards", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodDelete)
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodOptions, "/cards", nil)
	req.Header.Set(echo.HeaderOrigin, "http://evil.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
