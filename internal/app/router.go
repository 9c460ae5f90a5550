// Package app provides router configuration.
package app

import (
	"context"

	"github.com/guttosm/allocation-service/config"
	"github.com/guttosm/allocation-service/internal/http"
	"github.com/guttosm/allocation-service/internal/repository"
	"github.com/guttosm/allocation-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// mongoHealthChecker adapts the MongoDB ping to the HealthChecker interface.
type mongoHealthChecker struct {
	db *repository.MongoDB
}

func (c mongoHealthChecker) Check() error {
	return c.db.HealthCheck(context.Background())
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	healthHandler := http.NewHealthHandler()

	// Register database health and circuit breakers for monitoring
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", mongoHealthChecker{db: dbComponents.DB})
		}
		if dbComponents.AnalysesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_analyses", dbComponents.AnalysesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:       cfg.Server.RateLimit,
		RateWindow:      cfg.Server.RateWindow,
		CORSOrigins:     cfg.Server.CORSOrigins,
		SwaggerUser:     cfg.Server.SwaggerUser,
		SwaggerPass:     cfg.Server.SwaggerPass,
		SyncOrderCap:    cfg.Engine.SyncOrderCap,
		LoggingService:  loggingService,
		AnalysisService: serviceComponents.AnalysisService,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
