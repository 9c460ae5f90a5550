package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 10000, cfg.Engine.ChunkSize)
		assert.InDelta(t, 0.01, cfg.Engine.CostEpsilon, 1e-9)
		assert.Equal(t, 50000, cfg.Engine.SyncOrderCap)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "allocation_service", cfg.Database.DatabaseName)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("ENGINE_CHUNK_SIZE", "5000")
		_ = os.Setenv("ENGINE_COST_EPSILON", "0.05")
		_ = os.Setenv("ENGINE_SYNC_ORDER_CAP", "1000")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("MONGODB_URI", "mongodb://db:27017")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 5000, cfg.Engine.ChunkSize)
		assert.InDelta(t, 0.05, cfg.Engine.CostEpsilon, 1e-9)
		assert.Equal(t, 1000, cfg.Engine.SyncOrderCap)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("ENGINE_COST_EPSILON", "invalid")
		_ = os.Setenv("MONGODB_ENABLED", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.InDelta(t, 0.01, cfg.Engine.CostEpsilon, 1e-9)
		assert.False(t, cfg.Database.Enabled)
	})

	t.Run("parses CORS origins", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://example.com, https://app.example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "https://example.com")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://app.example.com")
		// Local development origins stay available.
		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
	})

	t.Run("circuit breaker defaults", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)
		assert.Equal(t, 2, cfg.Database.CircuitBreakerSuccessThreshold)
		assert.Equal(t, 30*time.Second, cfg.Database.CircuitBreakerTimeout)
	})
}
