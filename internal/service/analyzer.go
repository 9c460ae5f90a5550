package service

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/allocation-service/internal/domain/model"
)

var (
	// ErrNoOrders is returned when a batch is started without orders.
	ErrNoOrders = errors.New("order list is empty")
	// ErrNoPackages is returned when a batch is started without a package catalog.
	ErrNoPackages = errors.New("package catalog is empty")
)

const (
	// DefaultChunkSize bounds peak memory on very large order sets.
	DefaultChunkSize = 10000
	// minProgressStride is the finest intra-chunk progress cadence.
	minProgressStride = 1000
)

// ProgressFunc receives progress checkpoints during a batch run.
// It is invoked synchronously between order evaluations, never concurrently.
type ProgressFunc func(model.Progress)

// Analyzer runs a full allocation batch and produces the analysis report.
type Analyzer interface {
	Analyze(ctx context.Context, orders []model.Order, packages []model.PackageOption) (*model.AnalysisReport, error)
}

// AnalyzerOption configures a BatchAnalyzer.
type AnalyzerOption func(*BatchAnalyzer)

// BatchAnalyzer implements Analyzer with chunked, single-pass processing.
//
// Orders are processed in fixed-size chunks; within a chunk each order is
// evaluated independently against the shared read-only catalog, so the
// per-order results do not depend on processing order. Cancellation is
// checked at chunk boundaries and yields a valid partial report.
type BatchAnalyzer struct {
	allocator *Allocator
	chunkSize int
	progress  ProgressFunc
}

// NewBatchAnalyzer creates a BatchAnalyzer with the given options.
func NewBatchAnalyzer(opts ...AnalyzerOption) *BatchAnalyzer {
	a := &BatchAnalyzer{
		allocator: NewAllocator(DefaultCostEpsilon),
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithChunkSize sets the batch chunk size. Non-positive values are ignored.
func WithChunkSize(size int) AnalyzerOption {
	return func(a *BatchAnalyzer) {
		if size > 0 {
			a.chunkSize = size
		}
	}
}

// WithProgressFunc sets the progress sink invoked at checkpoint cadence.
func WithProgressFunc(fn ProgressFunc) AnalyzerOption {
	return func(a *BatchAnalyzer) {
		a.progress = fn
	}
}

// WithCostEpsilon overrides the selector's cost floor.
func WithCostEpsilon(epsilon float64) AnalyzerOption {
	return func(a *BatchAnalyzer) {
		a.allocator = NewAllocator(epsilon)
	}
}

// Analyze processes the full order set and returns the analysis report.
//
// Per-order failures (no volume, nothing fits) are recorded as unallocated
// and never abort the batch; only an empty order list or empty catalog is
// fatal. When ctx is cancelled between chunks, the report built from the
// completed chunks is returned alongside ctx.Err().
func (a *BatchAnalyzer) Analyze(ctx context.Context, orders []model.Order, packages []model.PackageOption) (*model.AnalysisReport, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}
	if len(packages) == 0 {
		return nil, ErrNoPackages
	}

	total := len(orders)
	totalChunks := (total + a.chunkSize - 1) / a.chunkSize
	stride := progressStride(total)

	allocations := make([]model.Allocation, 0, total)
	unallocated := 0
	start := time.Now()

	processed := 0
	for chunk := 0; chunk < totalChunks; chunk++ {
		if err := ctx.Err(); err != nil {
			report := a.buildReport(allocations, unallocated, processed, packages, time.Since(start))
			report.Partial = true
			return report, err
		}

		lo := chunk * a.chunkSize
		hi := lo + a.chunkSize
		if hi > total {
			hi = total
		}

		for i := lo; i < hi; i++ {
			if alloc, ok := a.allocator.Allocate(orders[i], packages); ok {
				allocations = append(allocations, alloc)
			} else {
				unallocated++
			}
			processed++

			if processed < total && processed%stride == 0 {
				a.emitProgress(processed, total, chunk, totalChunks)
			}
		}

		a.emitProgress(processed, total, chunk+1, totalChunks)
	}

	return a.buildReport(allocations, unallocated, processed, packages, time.Since(start)), nil
}

// progressStride returns the intra-chunk checkpoint cadence: every 1,000
// orders or every 1% of the total, whichever is coarser.
func progressStride(total int) int {
	stride := total / 100
	if stride < minProgressStride {
		stride = minProgressStride
	}
	return stride
}

func (a *BatchAnalyzer) emitProgress(processed, total, chunkIndex, totalChunks int) {
	if a.progress == nil {
		return
	}
	a.progress(model.Progress{
		ProcessedCount:  processed,
		TotalCount:      total,
		PercentComplete: float64(processed) / float64(total) * 100,
		ChunkIndex:      chunkIndex,
		TotalChunks:     totalChunks,
	})
}

// buildReport assembles the immutable report from accumulated results.
// totalProcessed counts only orders actually evaluated, so cancelled runs
// still satisfy allocated + unallocated == totalProcessed.
func (a *BatchAnalyzer) buildReport(allocations []model.Allocation, unallocated, totalProcessed int, packages []model.PackageOption, elapsed time.Duration) *model.AnalysisReport {
	seconds := elapsed.Seconds()
	throughput := 0.0
	if seconds > 0 {
		throughput = float64(totalProcessed) / seconds
	}

	avgFill := 0.0
	if len(allocations) > 0 {
		sum := 0.0
		for _, alloc := range allocations {
			sum += alloc.FillRate
		}
		avgFill = sum / float64(len(allocations))
	}

	stats := AggregateStatistics(allocations, totalProcessed)

	return &model.AnalysisReport{
		Allocations: allocations,
		Summary: model.Summary{
			TotalOrders:       totalProcessed,
			AllocatedOrders:   len(allocations),
			UnallocatedOrders: unallocated,
			AverageFillRate:   avgFill,
			ProcessingSeconds: seconds,
			Throughput:        throughput,
		},
		PackageDistribution:  stats.PackageDistribution,
		FillRateDistribution: stats.FillRateDistribution,
		VolumeDistribution:   stats.VolumeDistribution,
		Efficiency:           stats.Efficiency,
		Baseline:             CompareBaseline(allocations, packages, totalProcessed),
	}
}
