package handlers

import (
	"context"
	"net/http"
	"time"

	"distromart/internal/caching"
	"distromart/internal/repositories"

	"github.com/labstack/echo/v4"
)

// HealthHandlers serves liveness and readiness probes.
type HealthHandlers struct {
	db       repositories.DBTX
	cacheSvc caching.CacheService
}

func NewHealthHandlers(db repositories.DBTX, cacheSvc caching.CacheService) *HealthHandlers {
	return &HealthHandlers{db: db, cacheSvc: cacheSvc}
}

// HealthStatus is the readiness payload.
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Liveness handles GET /health and only confirms the process is up.
func (h *HealthHandlers) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /health/ready and probes the backing services.
func (h *HealthHandlers) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	health := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string),
	}

	if err := h.checkDatabase(ctx); err != nil {
		health.Services["database"] = "unhealthy"
		health.Status = "degraded"
	} else {
		health.Services["database"] = "healthy"
	}

	if err := h.cacheSvc.Ping(ctx); err != nil {
		health.Services["redis"] = "unhealthy"
		health.Status = "degraded"
	} else {
		health.Services["redis"] = "healthy"
	}

	code := http.StatusOK
	if health.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, health)
}

func (h *HealthHandlers) checkDatabase(ctx context.Context) error {
	row := h.db.QueryRow(ctx, "SELECT 1")
	var one int
	return row.Scan(&one)
}
