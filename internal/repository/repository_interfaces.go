package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/move-labels/internal/domain/model"
)

var (
	// ErrDuplicateShortCode is returned when a box is inserted with a short
	// code another box already holds.
	ErrDuplicateShortCode = errors.New("short code already exists")
	// ErrDuplicateLabelSize is returned when a label size id is taken.
	ErrDuplicateLabelSize = errors.New("label size already exists")
	// ErrDuplicateUsername is returned when a username is taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// IsBreakerFailure reports whether err means the database is unhealthy.
// Missing documents and duplicate keys are answers, not outages.
func IsBreakerFailure(err error) bool {
	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, mongo.ErrNoDocuments),
		errors.Is(err, ErrDuplicateShortCode),
		errors.Is(err, ErrDuplicateLabelSize),
		errors.Is(err, ErrDuplicateUsername),
		mongo.IsDuplicateKeyError(err):
		return false
	}
	return true
}

// BoxRepositoryInterface stores boxes together with their embedded items.
// Lookups return nil, nil when nothing matches.
type BoxRepositoryInterface interface {
	Create(ctx context.Context, box *model.Box) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Box, error)
	FindByShortCode(ctx context.Context, shortCode string) (*model.Box, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Box, error)
	List(ctx context.Context, opts BoxListOptions) ([]*model.Box, error)
	Latest(ctx context.Context) (*model.Box, error)
	Update(ctx context.Context, box *model.Box) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	RoomCodes(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string, limit int) ([]*model.Box, error)
	AddItems(ctx context.Context, id primitive.ObjectID, items []model.Item) (*model.Box, error)
	UpdateItem(ctx context.Context, id primitive.ObjectID, item model.Item) (*model.Box, error)
	DeleteItem(ctx context.Context, id primitive.ObjectID, itemID string) (*model.Box, error)
}

// LabelSizeRepositoryInterface stores label stocks.
type LabelSizeRepositoryInterface interface {
	List(ctx context.Context) ([]model.LabelSize, error)
	FindByID(ctx context.Context, id string) (*model.LabelSize, error)
	Create(ctx context.Context, size *model.LabelSize) error
	SeedPresets(ctx context.Context, presets []model.LabelSize) (int64, error)
}

// BundleRepositoryInterface stores named item bundles.
type BundleRepositoryInterface interface {
	List(ctx context.Context) ([]model.Bundle, error)
	Upsert(ctx context.Context, name string, items []model.BundleItem) (*model.Bundle, error)
}

// UserRepositoryInterface stores accounts.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// ActivityRepositoryInterface stores product events.
type ActivityRepositoryInterface interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	ListByBox(ctx context.Context, boxID string, limit int) ([]model.ActivityLog, error)
}

// LogsRepositoryInterface stores request logs.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

// IsNotFound reports whether err means the document does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
