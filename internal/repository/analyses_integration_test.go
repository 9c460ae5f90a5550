//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/allocation-service/internal/circuitbreaker"
	"github.com/guttosm/allocation-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysesRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewAnalysesRepository(db)

	t.Run("create and get", func(t *testing.T) {
		record := &AnalysisRecord{
			ID:           "analysis-1",
			Status:       StatusRunning,
			OrderCount:   1000,
			PackageCount: 3,
			Progress:     model.Progress{TotalCount: 1000, TotalChunks: 1},
		}
		require.NoError(t, repo.Create(ctx, record))

		got, err := repo.GetByID(ctx, "analysis-1")
		require.NoError(t, err)
		assert.Equal(t, StatusRunning, got.Status)
		assert.Equal(t, 1000, got.OrderCount)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrAnalysisNotFound)
	})

	t.Run("update progress", func(t *testing.T) {
		progress := model.Progress{
			ProcessedCount:  500,
			TotalCount:      1000,
			PercentComplete: 50,
			ChunkIndex:      1,
			TotalChunks:     1,
		}
		require.NoError(t, repo.UpdateProgress(ctx, "analysis-1", progress))

		got, err := repo.GetByID(ctx, "analysis-1")
		require.NoError(t, err)
		assert.Equal(t, 500, got.Progress.ProcessedCount)

		assert.ErrorIs(t, repo.UpdateProgress(ctx, "missing", progress), ErrAnalysisNotFound)
	})

	t.Run("complete with report", func(t *testing.T) {
		report := &model.AnalysisReport{
			Summary: model.Summary{
				TotalOrders:       1000,
				AllocatedOrders:   990,
				UnallocatedOrders: 10,
			},
		}
		require.NoError(t, repo.Complete(ctx, "analysis-1", StatusCompleted, report, ""))

		got, err := repo.GetByID(ctx, "analysis-1")
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, got.Status)
		require.NotNil(t, got.Report)
		assert.Equal(t, 990, got.Report.Summary.AllocatedOrders)
		require.NotNil(t, got.CompletedAt)
	})

	t.Run("complete with error message", func(t *testing.T) {
		record := &AnalysisRecord{ID: "analysis-2", Status: StatusRunning}
		require.NoError(t, repo.Create(ctx, record))
		require.NoError(t, repo.Complete(ctx, "analysis-2", StatusFailed, nil, "order list is empty"))

		got, err := repo.GetByID(ctx, "analysis-2")
		require.NoError(t, err)
		assert.Equal(t, StatusFailed, got.Status)
		assert.Equal(t, "order list is empty", got.Error)
	})

	t.Run("list newest first without reports", func(t *testing.T) {
		records, err := repo.List(ctx, 10)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(records), 2)

		assert.Equal(t, "analysis-2", records[0].ID)
		for _, record := range records {
			assert.Nil(t, record.Report)
		}
	})
}

func TestAnalysesRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	repo := NewAnalysesRepositoryWithCircuitBreaker(NewAnalysesRepository(db), cb)

	record := &AnalysisRecord{
		ID:         "analysis-cb",
		Status:     StatusRunning,
		OrderCount: 10,
	}
	require.NoError(t, repo.Create(ctx, record))

	require.NoError(t, repo.UpdateProgress(ctx, "analysis-cb", model.Progress{ProcessedCount: 5}))
	require.NoError(t, repo.Complete(ctx, "analysis-cb", StatusCancelled, nil, context.Canceled.Error()))

	got, err := repo.GetByID(ctx, "analysis-cb")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
}

func TestMongoDB_HealthCheck_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	assert.NoError(t, db.HealthCheck(ctx))
	assert.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))
}
