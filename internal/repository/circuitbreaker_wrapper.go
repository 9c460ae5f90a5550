// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/allocation-service/internal/circuitbreaker"
	"github.com/guttosm/allocation-service/internal/domain/model"
)

// AnalysesRepositoryWithCircuitBreaker wraps an analyses repository with
// circuit breaker protection so a struggling MongoDB does not stall batch
// processing. Progress writes are best-effort; record reads surface the
// breaker error to the caller.
type AnalysesRepositoryWithCircuitBreaker struct {
	repo           AnalysesRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewAnalysesRepositoryWithCircuitBreaker creates a new wrapper.
func NewAnalysesRepositoryWithCircuitBreaker(repo AnalysesRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *AnalysesRepositoryWithCircuitBreaker {
	return &AnalysesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts an analysis record with circuit breaker protection.
func (r *AnalysesRepositoryWithCircuitBreaker) Create(ctx context.Context, record *AnalysisRecord) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, record)
	})
}

// UpdateProgress stores a progress checkpoint with circuit breaker protection.
// When the circuit is open the checkpoint is dropped silently; a later
// checkpoint or the final report supersedes it.
func (r *AnalysesRepositoryWithCircuitBreaker) UpdateProgress(ctx context.Context, id string, progress model.Progress) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.UpdateProgress(ctx, id, progress)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Complete finalizes an analysis record with circuit breaker protection.
func (r *AnalysesRepositoryWithCircuitBreaker) Complete(ctx context.Context, id string, status AnalysisStatus, report *model.AnalysisReport, errMsg string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Complete(ctx, id, status, report, errMsg)
	})
}

// GetByID returns an analysis record with circuit breaker protection.
func (r *AnalysesRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*AnalysisRecord, error) {
	var result *AnalysisRecord
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// List returns recent analysis records with circuit breaker protection.
func (r *AnalysesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	var result []AnalysisRecord
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *AnalysesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit
// breaker protection. Logging is non-critical, so an open circuit fails
// silently.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new wrapper.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a log entry with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
