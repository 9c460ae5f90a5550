// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/allocation-service/config"
	"github.com/guttosm/allocation-service/internal/circuitbreaker"
	"github.com/guttosm/allocation-service/internal/repository"
	"github.com/guttosm/allocation-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	AnalysesRepo           repository.AnalysesRepositoryInterface
	LoggingService         service.LoggingService
	AnalysesCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories and services that depend on it.
// Returns nil if the database is disabled or the connection fails; the
// application then falls back to in-memory storage.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	if err := db.SetLogsTTL(context.Background(), cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	analysesCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-analyses",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	analysesRepo := repository.NewAnalysesRepository(db)
	analysesRepoWithCB := repository.NewAnalysesRepositoryWithCircuitBreaker(analysesRepo, analysesCB)

	return &DatabaseComponents{
		DB:                     db,
		AnalysesRepo:           analysesRepoWithCB,
		LoggingService:         loggingService,
		AnalysesCircuitBreaker: analysesCB,
		LogsCircuitBreaker:     logsCB,
	}
}
