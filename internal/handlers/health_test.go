package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	rr := httptest.NewRecorder()
	NewHealthHandler(map[string]HealthCheck{"postgres": ok, "redis": ok}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"postgres":"ok","redis":"ok"}}`, rr.Body.String())

	rr = httptest.NewRecorder()
	NewHealthHandler(map[string]HealthCheck{"postgres": ok, "redis": down}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"unavailable","checks":{"postgres":"ok","redis":"unavailable"}}`, rr.Body.String())
}
