package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/move-labels/internal/domain/model"
)

// ActivityRepository implements ActivityRepositoryInterface.
type ActivityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *MongoDB) *ActivityRepository {
	return &ActivityRepository{collection: db.ActivityLogs}
}

// Create stores one event.
func (r *ActivityRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// ListByBox returns the latest events of one box, newest first. An empty
// boxID lists events across all boxes.
func (r *ActivityRepository) ListByBox(ctx context.Context, boxID string, limit int) ([]model.ActivityLog, error) {
	filter := bson.M{}
	if boxID != "" {
		filter["box_id"] = boxID
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := make([]model.ActivityLog, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
