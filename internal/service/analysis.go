package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/allocation-service/internal/domain/model"
	"github.com/guttosm/allocation-service/internal/metrics"
	"github.com/guttosm/allocation-service/internal/repository"
)

// AnalysisService runs allocation batches and tracks their lifecycle.
//
// Synchronous runs return the report directly. Asynchronous runs get one
// logical worker per batch; progress checkpoints and the final report are
// written to the analyses repository, which a UI polls.
type AnalysisService interface {
	// RunSync processes a batch and returns the report when done.
	RunSync(ctx context.Context, orders []model.Order, packages []model.PackageOption) (*model.AnalysisReport, error)
	// Start launches an asynchronous batch and returns its analysis id.
	Start(ctx context.Context, orders []model.Order, packages []model.PackageOption) (string, error)
	// Get returns the analysis record (status, progress, report when complete).
	Get(ctx context.Context, id string) (*repository.AnalysisRecord, error)
	// List returns recent analysis records, newest first.
	List(ctx context.Context, limit int) ([]repository.AnalysisRecord, error)
	// Cancel aborts a running batch between chunks. The partial report up to
	// the last completed chunk is preserved on the record.
	Cancel(ctx context.Context, id string) error
}

// AnalysisOption configures an AnalysisServiceImpl.
type AnalysisOption func(*AnalysisServiceImpl)

// AnalysisServiceImpl implements AnalysisService.
type AnalysisServiceImpl struct {
	repo        repository.AnalysesRepositoryInterface
	chunkSize   int
	costEpsilon float64

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// NewAnalysisService creates a new analysis service backed by the given
// repository.
func NewAnalysisService(repo repository.AnalysesRepositoryInterface, opts ...AnalysisOption) *AnalysisServiceImpl {
	s := &AnalysisServiceImpl{
		repo:        repo,
		chunkSize:   DefaultChunkSize,
		costEpsilon: DefaultCostEpsilon,
		cancels:     make(map[string]context.CancelFunc),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithAnalysisChunkSize sets the engine chunk size for all batches.
func WithAnalysisChunkSize(size int) AnalysisOption {
	return func(s *AnalysisServiceImpl) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithAnalysisCostEpsilon sets the selector's cost floor for all batches.
func WithAnalysisCostEpsilon(epsilon float64) AnalysisOption {
	return func(s *AnalysisServiceImpl) {
		if epsilon > 0 {
			s.costEpsilon = epsilon
		}
	}
}

// RunSync processes a batch on the caller's goroutine.
func (s *AnalysisServiceImpl) RunSync(ctx context.Context, orders []model.Order, packages []model.PackageOption) (*model.AnalysisReport, error) {
	analyzer := NewBatchAnalyzer(
		WithChunkSize(s.chunkSize),
		WithCostEpsilon(s.costEpsilon),
	)

	start := time.Now()
	report, err := analyzer.Analyze(ctx, orders, packages)
	if err != nil {
		metrics.RecordAllocationRun(time.Since(start), "error")
		return report, err
	}

	metrics.RecordAllocationRun(time.Since(start), "success")
	metrics.AddOrdersProcessed(report.Summary.TotalOrders)
	return report, nil
}

// Start creates the analysis record and launches the batch worker. The
// worker owns its own context; cancellation goes through Cancel, not the
// request context that started it.
func (s *AnalysisServiceImpl) Start(_ context.Context, orders []model.Order, packages []model.PackageOption) (string, error) {
	// Validate preconditions before creating any record.
	if len(orders) == 0 {
		return "", ErrNoOrders
	}
	if len(packages) == 0 {
		return "", ErrNoPackages
	}

	id := uuid.New().String()
	record := &repository.AnalysisRecord{
		ID:           id,
		Status:       repository.StatusRunning,
		OrderCount:   len(orders),
		PackageCount: len(packages),
		Progress: model.Progress{
			TotalCount:  len(orders),
			TotalChunks: (len(orders) + s.chunkSize - 1) / s.chunkSize,
		},
	}

	createCtx, cancelCreate := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelCreate()
	if err := s.repo.Create(createCtx, record); err != nil {
		return "", err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.cancels[id] = cancel
	s.mu.Unlock()

	go s.run(runCtx, id, orders, packages)

	return id, nil
}

// run executes one batch and finalizes its record.
func (s *AnalysisServiceImpl) run(ctx context.Context, id string, orders []model.Order, packages []model.PackageOption) {
	metrics.RunningAnalyses.Inc()
	defer func() {
		metrics.RunningAnalyses.Dec()
		s.mu.Lock()
		delete(s.cancels, id)
		s.mu.Unlock()
	}()

	log.Info().
		Str("analysis_id", id).
		Int("orders", len(orders)).
		Int("packages", len(packages)).
		Msg("Batch analysis started")

	analyzer := NewBatchAnalyzer(
		WithChunkSize(s.chunkSize),
		WithCostEpsilon(s.costEpsilon),
		WithProgressFunc(func(p model.Progress) {
			updateCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := s.repo.UpdateProgress(updateCtx, id, p); err != nil {
				log.Warn().Err(err).Str("analysis_id", id).Msg("Progress checkpoint not persisted")
			}
		}),
	)

	start := time.Now()
	report, err := analyzer.Analyze(ctx, orders, packages)
	elapsed := time.Since(start)

	finalCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch {
	case err == context.Canceled || err == context.DeadlineExceeded:
		metrics.RecordAllocationRun(elapsed, "cancelled")
		if report != nil {
			metrics.AddOrdersProcessed(report.Summary.TotalOrders)
		}
		if repoErr := s.repo.Complete(finalCtx, id, repository.StatusCancelled, report, err.Error()); repoErr != nil {
			log.Error().Err(repoErr).Str("analysis_id", id).Msg("Failed to finalize cancelled analysis")
		}
		log.Info().Str("analysis_id", id).Msg("Batch analysis cancelled")
	case err != nil:
		metrics.RecordAllocationRun(elapsed, "error")
		if repoErr := s.repo.Complete(finalCtx, id, repository.StatusFailed, nil, err.Error()); repoErr != nil {
			log.Error().Err(repoErr).Str("analysis_id", id).Msg("Failed to finalize failed analysis")
		}
		log.Error().Err(err).Str("analysis_id", id).Msg("Batch analysis failed")
	default:
		metrics.RecordAllocationRun(elapsed, "success")
		metrics.AddOrdersProcessed(report.Summary.TotalOrders)
		if repoErr := s.repo.Complete(finalCtx, id, repository.StatusCompleted, report, ""); repoErr != nil {
			log.Error().Err(repoErr).Str("analysis_id", id).Msg("Failed to finalize completed analysis")
		}
		log.Info().
			Str("analysis_id", id).
			Int("allocated", report.Summary.AllocatedOrders).
			Int("unallocated", report.Summary.UnallocatedOrders).
			Float64("throughput", report.Summary.Throughput).
			Msg("Batch analysis completed")
	}
}

// Get returns the analysis record for the given id.
func (s *AnalysisServiceImpl) Get(ctx context.Context, id string) (*repository.AnalysisRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns recent analysis records.
func (s *AnalysisServiceImpl) List(ctx context.Context, limit int) ([]repository.AnalysisRecord, error) {
	return s.repo.List(ctx, limit)
}

// Cancel aborts a running batch. Cancelling an analysis that already
// finished (or never existed) returns ErrAnalysisNotFound.
func (s *AnalysisServiceImpl) Cancel(_ context.Context, id string) error {
	s.mu.Lock()
	cancel, ok := s.cancels[id]
	s.mu.Unlock()

	if !ok {
		return repository.ErrAnalysisNotFound
	}
	cancel()
	return nil
}
