package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/allocation-service/internal/domain/model"
)

// InMemoryAnalysesRepository is a mutex-guarded in-memory implementation of
// AnalysesRepositoryInterface. It backs the service when MongoDB is disabled
// and is the repository used by unit tests. Records are not durable.
type InMemoryAnalysesRepository struct {
	mu      sync.RWMutex
	records map[string]*AnalysisRecord
}

// NewInMemoryAnalysesRepository creates an empty in-memory repository.
func NewInMemoryAnalysesRepository() *InMemoryAnalysesRepository {
	return &InMemoryAnalysesRepository{
		records: make(map[string]*AnalysisRecord),
	}
}

// Create inserts a new analysis record.
func (r *InMemoryAnalysesRepository) Create(_ context.Context, record *AnalysisRecord) error {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *record
	r.records[record.ID] = &clone
	return nil
}

// UpdateProgress stores the latest progress checkpoint.
func (r *InMemoryAnalysesRepository) UpdateProgress(_ context.Context, id string, progress model.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return ErrAnalysisNotFound
	}
	record.Progress = progress
	record.UpdatedAt = time.Now()
	return nil
}

// Complete finalizes an analysis record.
func (r *InMemoryAnalysesRepository) Complete(_ context.Context, id string, status AnalysisStatus, report *model.AnalysisReport, errMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return ErrAnalysisNotFound
	}
	now := time.Now()
	record.Status = status
	record.Report = report
	record.Error = errMsg
	record.UpdatedAt = now
	record.CompletedAt = &now
	return nil
}

// GetByID returns a copy of the record for the given id.
func (r *InMemoryAnalysesRepository) GetByID(_ context.Context, id string) (*AnalysisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrAnalysisNotFound
	}
	clone := *record
	return &clone, nil
}

// List returns the most recent records, newest first, without reports.
func (r *InMemoryAnalysesRepository) List(_ context.Context, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	records := make([]AnalysisRecord, 0, len(r.records))
	for _, record := range r.records {
		clone := *record
		clone.Report = nil
		records = append(records, clone)
	}
	r.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
