// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/allocation-service/internal/domain/model"
)

// AnalysesRepositoryInterface defines the operations on analysis records.
type AnalysesRepositoryInterface interface {
	Create(ctx context.Context, record *AnalysisRecord) error
	UpdateProgress(ctx context.Context, id string, progress model.Progress) error
	Complete(ctx context.Context, id string, status AnalysisStatus, report *model.AnalysisReport, errMsg string) error
	GetByID(ctx context.Context, id string) (*AnalysisRecord, error)
	List(ctx context.Context, limit int) ([]AnalysisRecord, error)
}

// LogsRepositoryInterface defines the operations on request log entries.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
}
