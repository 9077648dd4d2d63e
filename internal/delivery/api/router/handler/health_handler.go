package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"academia/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Redis  *redis.Client `optional:"true"`
	Logger *slog.Logger
}

type healthCheck func(ctx context.Context) error

// HealthHandler reports the reachability of the service's backing stores.
type HealthHandler struct {
	checks map[string]healthCheck
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	checks := map[string]healthCheck{}
	if params.DB != nil {
		checks["postgres"] = func(ctx context.Context) error {
			sqlDB, err := params.DB.DB()
			if err != nil {
				return err
			}

			return sqlDB.PingContext(ctx)
		}
	}
	if params.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return params.Redis.Ping(ctx).Err()
		}
	}

	return &HealthHandler{checks: checks, logger: params.Logger}
}

// HealthCheck answers 200 when every dependency responds and 503 otherwise.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	components := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.WarnContext(ctx, "Health check failed", slog.String("component", name), slog.Any("error", err))
			components[name] = "down"
			status = http.StatusServiceUnavailable

			continue
		}
		components[name] = "up"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}

	return response.Success(c, status, map[string]any{
		"status":     overall,
		"components": components,
	})
}
