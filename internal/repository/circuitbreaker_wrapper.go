package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/move-labels/internal/circuitbreaker"
	"github.com/guttosm/move-labels/internal/domain/model"
)

// guarded runs fn through the breaker and hands back its result.
func guarded[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		return cbErr
	})
	return result, err
}

// BoxRepositoryWithCircuitBreaker wraps BoxRepository with circuit breaker
// protection. Box data has no fallback, so an open circuit surfaces as
// circuitbreaker.ErrCircuitOpen.
type BoxRepositoryWithCircuitBreaker struct {
	repo           BoxRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBoxRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewBoxRepositoryWithCircuitBreaker(repo BoxRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *BoxRepositoryWithCircuitBreaker {
	return &BoxRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *BoxRepositoryWithCircuitBreaker) Create(ctx context.Context, box *model.Box) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, box)
	})
}

func (r *BoxRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Box, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Box, error) { return r.repo.FindByID(ctx, id) })
}

func (r *BoxRepositoryWithCircuitBreaker) FindByShortCode(ctx context.Context, shortCode string) (*model.Box, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Box, error) { return r.repo.FindByShortCode(ctx, shortCode) })
}

func (r *BoxRepositoryWithCircuitBreaker) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Box, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.Box, error) { return r.repo.FindByIDs(ctx, ids) })
}

func (r *BoxRepositoryWithCircuitBreaker) List(ctx context.Context, opts BoxListOptions) ([]*model.Box, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.Box, error) { return r.repo.List(ctx, opts) })
}

func (r *BoxRepositoryWithCircuitBreaker) Latest(ctx context.Context) (*model.Box, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Box, error) { return r.repo.Latest(ctx) })
}

func (r *BoxRepositoryWithCircuitBreaker) Update(ctx context.Context, box *model.Box) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Update(ctx, box)
	})
}

func (r *BoxRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return guarded(ctx, r.circuitBreaker, func() (bool, error) { return r.repo.Delete(ctx, id) })
}

func (r *BoxRepositoryWithCircuitBreaker) RoomCodes(ctx context.Context) ([]string, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]string, error) { return r.repo.RoomCodes(ctx) })
}

func (r *BoxRepositoryWithCircuitBreaker) Search(ctx context.Context, query string, limit int) ([]*model.Box, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*model.Box, error) { return r.repo.Search(ctx, query, limit) })
}

func (r *BoxRepositoryWithCircuitBreaker) AddItems(ctx context.Context, id primitive.ObjectID, items []model.Item) (*model.Box, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Box, error) { return r.repo.AddItems(ctx, id, items) })
}

func (r *BoxRepositoryWithCircuitBreaker) UpdateItem(ctx context.Context, id primitive.ObjectID, item model.Item) (*model.Box, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Box, error) { return r.repo.UpdateItem(ctx, id, item) })
}

func (r *BoxRepositoryWithCircuitBreaker) DeleteItem(ctx context.Context, id primitive.ObjectID, itemID string) (*model.Box, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Box, error) { return r.repo.DeleteItem(ctx, id, itemID) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *BoxRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LabelSizeRepositoryWithCircuitBreaker wraps LabelSizeRepository. The
// service falls back to the built-in presets when reads hit an open circuit.
type LabelSizeRepositoryWithCircuitBreaker struct {
	repo           LabelSizeRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLabelSizeRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLabelSizeRepositoryWithCircuitBreaker(repo LabelSizeRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LabelSizeRepositoryWithCircuitBreaker {
	return &LabelSizeRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *LabelSizeRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.LabelSize, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.LabelSize, error) { return r.repo.List(ctx) })
}

func (r *LabelSizeRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id string) (*model.LabelSize, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.LabelSize, error) { return r.repo.FindByID(ctx, id) })
}

func (r *LabelSizeRepositoryWithCircuitBreaker) Create(ctx context.Context, size *model.LabelSize) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, size)
	})
}

func (r *LabelSizeRepositoryWithCircuitBreaker) SeedPresets(ctx context.Context, presets []model.LabelSize) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) { return r.repo.SeedPresets(ctx, presets) })
}

// BundleRepositoryWithCircuitBreaker wraps BundleRepository.
type BundleRepositoryWithCircuitBreaker struct {
	repo           BundleRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBundleRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewBundleRepositoryWithCircuitBreaker(repo BundleRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *BundleRepositoryWithCircuitBreaker {
	return &BundleRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *BundleRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Bundle, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]model.Bundle, error) { return r.repo.List(ctx) })
}

func (r *BundleRepositoryWithCircuitBreaker) Upsert(ctx context.Context, name string, items []model.BundleItem) (*model.Bundle, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.Bundle, error) { return r.repo.Upsert(ctx, name, items) })
}

// UserRepositoryWithCircuitBreaker wraps UserRepository.
type UserRepositoryWithCircuitBreaker struct {
	repo           UserRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewUserRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewUserRepositoryWithCircuitBreaker(repo UserRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *UserRepositoryWithCircuitBreaker {
	return &UserRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *UserRepositoryWithCircuitBreaker) Create(ctx context.Context, user *model.User) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, user)
	})
}

func (r *UserRepositoryWithCircuitBreaker) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.User, error) { return r.repo.FindByUsername(ctx, username) })
}

func (r *UserRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return guarded(ctx, r.circuitBreaker, func() (*model.User, error) { return r.repo.FindByID(ctx, id) })
}

func (r *UserRepositoryWithCircuitBreaker) Update(ctx context.Context, user *model.User) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Update(ctx, user)
	})
}

// ActivityRepositoryWithCircuitBreaker wraps ActivityRepository. Activity is
// best effort: writes against an open circuit are dropped.
type ActivityRepositoryWithCircuitBreaker struct {
	repo           ActivityRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewActivityRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewActivityRepositoryWithCircuitBreaker(repo ActivityRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ActivityRepositoryWithCircuitBreaker {
	return &ActivityRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *ActivityRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.ActivityLog) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

func (r *ActivityRepositoryWithCircuitBreaker) ListByBox(ctx context.Context, boxID string, limit int) ([]model.ActivityLog, error) {
	result, err := guarded(ctx, r.circuitBreaker, func() ([]model.ActivityLog, error) { return r.repo.ListByBox(ctx, boxID, limit) })
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return []model.ActivityLog{}, nil
	}
	return result, err
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores a single log entry. An open circuit drops the entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores a batch of log entries. An open circuit drops the batch.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return guarded(ctx, r.circuitBreaker, func() ([]*LogEntryDocument, error) { return r.repo.Query(ctx, opts) })
}

func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return guarded(ctx, r.circuitBreaker, func() (int64, error) { return r.repo.Count(ctx, opts) })
}
