package handlers

import (
	"context"
	"net/http"
	"time"

	"storeadmin/internal/caching"

	"github.com/labstack/echo/v4"
)

// Pinger is the slice of a pgx pool the readiness probe needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StorageChecker reports whether the export bucket is reachable.
type StorageChecker func(ctx context.Context) error

// HealthHandlers handles health check and monitoring endpoints
type HealthHandlers struct {
	db      Pinger
	cache   caching.CacheService
	storage StorageChecker
	version string
	started time.Time
	timeout time.Duration
}

// NewHealthHandlers creates a new health handlers instance. storage may be nil when
// exports are disabled.
func NewHealthHandlers(db Pinger, cache caching.CacheService, storage StorageChecker, version string) *HealthHandlers {
	return &HealthHandlers{
		db:      db,
		cache:   cache,
		storage: storage,
		version: version,
		started: time.Now(),
		timeout: 2 * time.Second,
	}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
}

// LivenessCheck godoc
// @Summary  Liveness probe
// @Tags     health
// @Success  200 {object} HealthStatus
// @Router   /health [get]
func (h *HealthHandlers) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthStatus{
		Status:    "alive",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Version:   h.version,
	})
}

// ReadinessCheck godoc
// @Summary  Readiness probe: database, cache and export storage
// @Tags     health
// @Success  200 {object} HealthStatus
// @Failure  503 {object} HealthStatus
// @Router   /health/ready [get]
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	health := &HealthStatus{
		Status:    "ready",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Version:   h.version,
	}

	// The database is critical; cache and storage only degrade the service.
	statusCode := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		health.Services["database"] = "unhealthy"
		health.Status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	} else {
		health.Services["database"] = "healthy"
	}

	if err := h.cache.Ping(ctx); err != nil {
		health.Services["cache"] = "unhealthy"
		if health.Status == "ready" {
			health.Status = "degraded"
		}
	} else {
		health.Services["cache"] = "healthy"
	}

	switch {
	case h.storage == nil:
		health.Services["storage"] = "disabled"
	case h.storage(ctx) != nil:
		health.Services["storage"] = "unhealthy"
		if health.Status == "ready" {
			health.Status = "degraded"
		}
	default:
		health.Services["storage"] = "healthy"
	}

	return c.JSON(statusCode, health)
}
