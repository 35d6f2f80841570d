package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogEntryDocument is the stored form of a request log.
type LogEntryDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp  time.Time          `bson:"timestamp"`
	Level      string             `bson:"level"`
	Message    string             `bson:"message"`
	RequestID  string             `bson:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty"`
	Path       string             `bson:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty"`
	Username   string             `bson:"username,omitempty"`
	Fields     map[string]any     `bson:"fields,omitempty"`
}

// LogsRepository stores request logs in the request_logs collection.
// Documents expire through the TTL index managed by MongoDB.SetLogsTTL.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{
		collection: db.Logs,
	}
}

// stamp fills the ID and timestamp the request logger may leave empty.
func (d *LogEntryDocument) stamp(now time.Time) {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	if d.Timestamp.IsZero() {
		d.Timestamp = now
	}
}

// Create inserts one request log.
func (r *LogsRepository) Create(ctx context.Context, entry *LogEntryDocument) error {
	entry.stamp(time.Now().UTC())
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts a batch unordered, so one bad document does not stop
// the rest of the batch.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	if len(entries) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]any, len(entries))
	for i, entry := range entries {
		entry.stamp(now)
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// LogQueryOptions filters request log queries.
type LogQueryOptions struct {
	RequestID string
	Level     string
	Method    string
	Path      string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

// filter builds the Mongo query. Path matches as a case-insensitive substring.
func (opts LogQueryOptions) filter() bson.M {
	filter := bson.M{}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Level != "" {
		filter["level"] = opts.Level
	}
	if opts.Method != "" {
		filter["method"] = opts.Method
	}
	if opts.Path != "" {
		filter["path"] = primitive.Regex{Pattern: regexp.QuoteMeta(opts.Path), Options: "i"}
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}
	return filter
}

// MaxLogQueryLimit caps a single page of request logs.
const MaxLogQueryLimit = 500

// Query returns matching request logs, newest first. A zero or oversized
// limit is clamped to MaxLogQueryLimit.
func (r *LogsRepository) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	limit := opts.Limit
	if limit <= 0 || limit > MaxLogQueryLimit {
		limit = MaxLogQueryLimit
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := make([]*LogEntryDocument, 0, limit)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of request logs matching opts, ignoring paging.
func (r *LogsRepository) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
