package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quemjoga-backend/internal/api/middleware"
	"quemjoga-backend/internal/config"
	"quemjoga-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	var seen string
	router := newRouter(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		seen = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDKeepsIncomingValue(t *testing.T) {
	router := newRouter(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "req-42", recorder.Header().Get(middleware.RequestIDHeader))
}

func TestRecoveryAnswersInternalError(t *testing.T) {
	router := newRouter(middleware.Recovery())
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, recorder.Body.String())
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"https://app.quemjoga.com.br"}}
	router := newRouter(middleware.CORS(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.quemjoga.com.br")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, "https://app.quemjoga.com.br", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"https://app.quemjoga.com.br"}}
	router := newRouter(middleware.CORS(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggerPassesThrough(t *testing.T) {
	router := newRouter(middleware.RequestID(), middleware.Logger())
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
