package service

import (
	"context"

	"github.com/guttosm/allocation-service/internal/domain/model"
	"github.com/guttosm/allocation-service/internal/repository"
)

// LoggingService persists request log entries.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
}

// LoggingServiceImpl implements LoggingService on top of a logs repository.
type LoggingServiceImpl struct {
	logsRepo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service.
func NewLoggingService(logsRepo repository.LogsRepositoryInterface) *LoggingServiceImpl {
	return &LoggingServiceImpl{logsRepo: logsRepo}
}

// CreateLog stores a single log entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if s.logsRepo == nil {
		return nil
	}
	return s.logsRepo.Create(ctx, entry)
}
