// Package app provides service initialization.
package app

import (
	"github.com/guttosm/allocation-service/config"
	"github.com/guttosm/allocation-service/internal/repository"
	"github.com/guttosm/allocation-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	AnalysisService service.AnalysisService
}

// InitializeServices initializes business logic services. Analyses are
// persisted to MongoDB when available, otherwise kept in memory.
func InitializeServices(cfg config.EngineConfig, dbComponents *DatabaseComponents) *ServiceComponents {
	var analysesRepo repository.AnalysesRepositoryInterface
	if dbComponents != nil {
		analysesRepo = dbComponents.AnalysesRepo
	} else {
		analysesRepo = repository.NewInMemoryAnalysesRepository()
	}

	var opts []service.AnalysisOption
	if cfg.ChunkSize > 0 {
		opts = append(opts, service.WithAnalysisChunkSize(cfg.ChunkSize))
	}
	if cfg.CostEpsilon > 0 {
		opts = append(opts, service.WithAnalysisCostEpsilon(cfg.CostEpsilon))
	}

	analysisService := service.NewAnalysisService(analysesRepo, opts...)

	return &ServiceComponents{
		AnalysisService: analysisService,
	}
}
