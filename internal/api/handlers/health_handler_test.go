package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/api/handlers"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_AllHealthy(t *testing.T) {
	handler := handlers.NewHealthHandler()
	handler.AddCheck("postgres", func(ctx context.Context) error { return nil })
	handler.AddCheck("redis", func(ctx context.Context) error { return nil })

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.Check(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "ok", response.Dependencies["postgres"])
	assert.Equal(t, "ok", response.Dependencies["redis"])
}

func TestHealthHandler_DependencyDown(t *testing.T) {
	handler := handlers.NewHealthHandler()
	handler.AddCheck("postgres", func(ctx context.Context) error { return nil })
	handler.AddCheck("redis", func(ctx context.Context) error { return errors.New("connection refused") })

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.Check(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "degraded", response.Status)
	assert.Equal(t, "ok", response.Dependencies["postgres"])
	assert.Equal(t, "connection refused", response.Dependencies["redis"])
}

func TestHealthHandler_NoChecks(t *testing.T) {
	handler := handlers.NewHealthHandler()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.Check(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
