//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/allocation-service/config"
	"github.com/guttosm/allocation-service/internal/repository"
	"github.com/guttosm/allocation-service/internal/service"
	"github.com/stretchr/testify/assert"
)

func testServiceComponents() *ServiceComponents {
	return &ServiceComponents{
		AnalysisService: service.NewAnalysisService(repository.NewInMemoryAnalysesRepository()),
	}
}

func TestInitializeRouter(t *testing.T) {
	tests := []struct {
		name         string
		dbComponents *DatabaseComponents
		cfg          config.Config
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name: "creates router without database components",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  100,
					RateWindow: time.Minute,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.HealthHandler)
				assert.NotNil(t, components.Config.AnalysisService)
				assert.Nil(t, components.Config.LoggingService)
				assert.Equal(t, 100, components.Config.RateLimit)
			},
		},
		{
			name: "propagates engine sync cap",
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
				Engine: config.EngineConfig{
					SyncOrderCap: 1234,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.Equal(t, 1234, components.Config.SyncOrderCap)
			},
		},
		{
			name: "creates router with database components",
			dbComponents: &DatabaseComponents{
				AnalysesRepo:   repository.NewInMemoryAnalysesRepository(),
				LoggingService: service.NewLoggingService(nil),
			},
			cfg: config.Config{
				Server: config.ServerConfig{
					RateLimit:  10,
					RateWindow: time.Second,
				},
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Config.LoggingService)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeRouter(testServiceComponents(), tt.dbComponents, tt.cfg)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}
