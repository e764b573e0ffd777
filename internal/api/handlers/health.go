package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one dependency; a nil error means it is usable
type HealthCheck func(ctx context.Context) error

// HealthHandler reports the state of the database and any registered dependency
type HealthHandler struct {
	version string
	names   []string
	checks  map[string]HealthCheck
}

// NewHealthHandler creates a health handler that always probes the database
func NewHealthHandler(db *gorm.DB, version string) *HealthHandler {
	h := &HealthHandler{
		version: version,
		checks:  make(map[string]HealthCheck),
	}
	return h.WithCheck("database", databaseCheck(db))
}

// WithCheck registers an extra dependency probe under name
func (h *HealthHandler) WithCheck(name string, check HealthCheck) *HealthHandler {
	if _, exists := h.checks[name]; !exists {
		h.names = append(h.names, name)
		sort.Strings(h.names)
	}
	h.checks[name] = check
	return h
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status including database and upload storage
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	failures := h.run(c.Request.Context())

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  make(map[string]string, len(h.names)),
	}
	for _, name := range h.names {
		if err, failed := failures[name]; failed {
			response.Status = "unhealthy"
			response.Services[name] = "error: " + err.Error()
			continue
		}
		response.Services[name] = "healthy"
	}

	statusCode := http.StatusOK
	if len(failures) > 0 {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Application is ready"
// @Failure 503 {object} ReadyResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	failures := h.run(c.Request.Context())

	response := ReadyResponse{
		Ready:     len(failures) == 0,
		Timestamp: time.Now(),
		Services:  make(map[string]string, len(h.names)),
	}
	for _, name := range h.names {
		if err, failed := failures[name]; failed {
			response.Services[name] = "not ready: " + err.Error()
			continue
		}
		response.Services[name] = "ready"
	}

	statusCode := http.StatusOK
	if !response.Ready {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the process is alive, without probing dependencies
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

// run executes every check under a shared deadline and returns the failures by name
func (h *HealthHandler) run(ctx context.Context) map[string]error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	failures := make(map[string]error)
	for _, name := range h.names {
		if err := h.checks[name](ctx); err != nil {
			failures[name] = err
		}
	}
	return failures
}

func databaseCheck(db *gorm.DB) HealthCheck {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
