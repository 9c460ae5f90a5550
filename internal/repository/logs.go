// Package repository provides data access for request logs.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/allocation-service/internal/domain/model"
)

// LogsRepository provides MongoDB-backed request log storage.
// Entries expire via the TTL index configured by MongoDB.SetLogsTTL.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs}
}

// Create stores a single log entry.
func (r *LogsRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}
