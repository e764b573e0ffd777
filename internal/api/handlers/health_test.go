package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"quemjoga-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// unreachableDB returns a handle whose pool cannot connect
func unreachableDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=x password=x dbname=x sslmode=disable connect_timeout=1"), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func healthRouter(handler *HealthHandler) *testutils.HTTPTestSuite {
	h := testutils.SetupHTTPTest()
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)
	return h
}

func TestHealthHandlerReportsDatabaseFailure(t *testing.T) {
	h := healthRouter(NewHealthHandler(unreachableDB(t), "1.0.0"))

	recorder := h.MakeRequest(http.MethodGet, "/health", nil)

	var response HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Contains(t, response.Services["database"], "error")

	recorder = h.MakeRequest(http.MethodGet, "/health/ready", nil)

	var ready ReadyResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &ready)
	assert.False(t, ready.Ready)
	assert.Contains(t, ready.Services["database"], "not ready")
}

func TestHealthHandlerExtraChecks(t *testing.T) {
	handler := NewHealthHandler(unreachableDB(t), "1.0.0")
	// Replacing the database probe leaves only the registered checks in play
	handler.WithCheck("database", func(context.Context) error { return nil })

	t.Run("all healthy", func(t *testing.T) {
		handler.WithCheck("storage", func(context.Context) error { return nil })
		h := healthRouter(handler)

		var response HealthResponse
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, map[string]string{"database": "healthy", "storage": "healthy"}, response.Services)
	})

	t.Run("storage failing", func(t *testing.T) {
		handler.WithCheck("storage", func(context.Context) error { return errors.New("read-only filesystem") })
		h := healthRouter(handler)

		var response HealthResponse
		testutils.AssertJSONResponse(t, h.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &response)
		assert.Equal(t, "healthy", response.Services["database"])
		assert.Equal(t, "error: read-only filesystem", response.Services["storage"])
	})
}

func TestHealthHandlerLive(t *testing.T) {
	h := healthRouter(NewHealthHandler(unreachableDB(t), "1.0.0"))

	recorder := h.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, true, response["alive"])
}
