// Package repository provides the MongoDB data access layer.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	CollectionBoxes        = "boxes"
	CollectionLabelSizes   = "label_sizes"
	CollectionBundles      = "bundles"
	CollectionUsers        = "users"
	CollectionActivityLogs = "activity_logs"
	CollectionRequestLogs  = "request_logs"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns the pool settings used in production. A
// household move has a handful of concurrent users, so the pool stays small.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            20,
		MinPoolSize:            2,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client       *mongo.Client
	Database     *mongo.Database
	Boxes        *mongo.Collection
	LabelSizes   *mongo.Collection
	Bundles      *mongo.Collection
	Users        *mongo.Collection
	ActivityLogs *mongo.Collection
	Logs         *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures the indexes.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:       client,
		Database:     db,
		Boxes:        db.Collection(CollectionBoxes),
		LabelSizes:   db.Collection(CollectionLabelSizes),
		Bundles:      db.Collection(CollectionBundles),
		Users:        db.Collection(CollectionUsers),
		ActivityLogs: db.Collection(CollectionActivityLogs),
		Logs:         db.Collection(CollectionRequestLogs),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates the indexes the repositories rely on. The unique
// short code index is what turns a lost race into ErrDuplicateShortCode,
// so its failure is fatal; the rest are best effort.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	_, err := m.Boxes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "short_code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, _ = m.Boxes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "room_code", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})

	_, _ = m.LabelSizes.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "is_preset", Value: -1}, {Key: "name", Value: 1}},
	})

	_, _ = m.Bundles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	_, _ = m.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	_, _ = m.ActivityLogs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "box_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})

	_, _ = m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "request_id", Value: 1}},
	})

	return nil
}

// SetLogsTTL replaces the TTL index that expires request logs.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttl time.Duration) error {
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	_, err := m.Logs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(ttl.Seconds())),
	})
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && (cmdErr.Name == "IndexOptionsConflict" || cmdErr.Name == "IndexKeySpecsConflict") {
		return nil
	}
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
