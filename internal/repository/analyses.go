// Package repository provides data access for analysis records.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/allocation-service/internal/domain/model"
)

// ErrAnalysisNotFound is returned when no analysis exists for the given id.
var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisStatus is the lifecycle state of an analysis record.
type AnalysisStatus string

const (
	// StatusRunning means the batch is being processed.
	StatusRunning AnalysisStatus = "running"
	// StatusCompleted means the batch finished and the report is available.
	StatusCompleted AnalysisStatus = "completed"
	// StatusFailed means the batch aborted on a fatal precondition failure.
	StatusFailed AnalysisStatus = "failed"
	// StatusCancelled means the caller cancelled the batch between chunks.
	// A partial report covering the completed chunks is attached.
	StatusCancelled AnalysisStatus = "cancelled"
)

// AnalysisRecord is the persisted state of one batch run: the progress
// checkpoints while running, and the final report once complete. This is
// the row a polling UI reads.
type AnalysisRecord struct {
	ID           string                `bson:"_id" json:"id"`
	Status       AnalysisStatus        `bson:"status" json:"status"`
	OrderCount   int                   `bson:"order_count" json:"order_count"`
	PackageCount int                   `bson:"package_count" json:"package_count"`
	Progress     model.Progress        `bson:"progress" json:"progress"`
	Report       *model.AnalysisReport `bson:"report,omitempty" json:"report,omitempty"`
	Error        string                `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt    time.Time             `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time             `bson:"updated_at" json:"updated_at"`
	CompletedAt  *time.Time            `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// AnalysesRepository provides MongoDB-backed analysis record storage.
type AnalysesRepository struct {
	collection *mongo.Collection
}

// NewAnalysesRepository creates a new analyses repository.
func NewAnalysesRepository(db *MongoDB) *AnalysesRepository {
	return &AnalysesRepository{collection: db.Analyses}
}

// Create inserts a new analysis record.
func (r *AnalysesRepository) Create(ctx context.Context, record *AnalysisRecord) error {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// UpdateProgress stores the latest progress checkpoint for a running analysis.
func (r *AnalysesRepository) UpdateProgress(ctx context.Context, id string, progress model.Progress) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"progress": progress, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}

// Complete finalizes an analysis record with its terminal status and report.
func (r *AnalysesRepository) Complete(ctx context.Context, id string, status AnalysisStatus, report *model.AnalysisReport, errMsg string) error {
	now := time.Now()
	set := bson.M{
		"status":       status,
		"updated_at":   now,
		"completed_at": now,
	}
	if report != nil {
		set["report"] = report
	}
	if errMsg != "" {
		set["error"] = errMsg
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAnalysisNotFound
	}
	return nil
}

// GetByID returns the analysis record for the given id.
func (r *AnalysesRepository) GetByID(ctx context.Context, id string) (*AnalysisRecord, error) {
	var record AnalysisRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrAnalysisNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns the most recent analysis records, newest first. Reports are
// omitted from listings to keep responses small.
func (r *AnalysesRepository) List(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"report": 0})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []AnalysisRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
