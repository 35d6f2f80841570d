package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/guttosm/move-labels/internal/circuitbreaker"
	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/label"
	"github.com/guttosm/move-labels/internal/repository"
	"github.com/guttosm/move-labels/internal/service/cache"
)

const labelSizesKey = "label_sizes"

var (
	// ErrLabelSizeNotFound is returned when no label size has the requested id.
	ErrLabelSizeNotFound = errors.New("label size not found")
	// ErrLabelSizeExists is returned when a custom size reuses a name.
	ErrLabelSizeExists = errors.New("label size already exists")
	// ErrNoLabelSizes is returned when a default size is needed and none exists.
	ErrNoLabelSizes = errors.New("no label sizes configured")
)

// LabelSizeService manages the label stock catalogue.
type LabelSizeService interface {
	List(ctx context.Context) ([]model.LabelSize, error)
	Get(ctx context.Context, id string) (*model.LabelSize, error)
	Create(ctx context.Context, req dto.LabelSizeRequest) (*model.LabelSize, error)
	SeedPresets(ctx context.Context) (int64, error)
	// Resolve returns the size with id when it exists, else the default
	// single-label size.
	Resolve(ctx context.Context, id string) (*model.LabelSize, error)
}

// LabelSizeServiceImpl implements LabelSizeService. Without a repository,
// or while its circuit is open, the built-in presets are served.
type LabelSizeServiceImpl struct {
	repo  repository.LabelSizeRepositoryInterface
	cache cache.Cache[string, []model.LabelSize]
}

// NewLabelSizeService creates a label size service. c may be nil.
func NewLabelSizeService(repo repository.LabelSizeRepositoryInterface, c cache.Cache[string, []model.LabelSize]) *LabelSizeServiceImpl {
	return &LabelSizeServiceImpl{repo: repo, cache: c}
}

// List returns presets first, then custom sizes, each group by name.
func (s *LabelSizeServiceImpl) List(ctx context.Context) ([]model.LabelSize, error) {
	if s.cache != nil {
		if sizes, ok := s.cache.Get(labelSizesKey); ok {
			return slices.Clone(sizes), nil
		}
	}
	if s.repo == nil {
		return builtinSizes(), nil
	}

	sizes, err := s.repo.List(ctx)
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		log.Warn().Msg("label size store unavailable, serving built-in presets")
		return builtinSizes(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("list label sizes: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(labelSizesKey, slices.Clone(sizes))
	}
	return sizes, nil
}

// Get returns the size with id.
func (s *LabelSizeServiceImpl) Get(ctx context.Context, id string) (*model.LabelSize, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrLabelSizeNotFound
	}
	sizes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if size, ok := lo.Find(sizes, func(ls model.LabelSize) bool { return ls.ID == id }); ok {
		return &size, nil
	}
	return nil, ErrLabelSizeNotFound
}

// Create stores a custom size. Orientation defaults to portrait.
func (s *LabelSizeServiceImpl) Create(ctx context.Context, req dto.LabelSizeRequest) (*model.LabelSize, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	size := model.LabelSizeFromGeometry(req.Geometry())
	size.IsPreset = false
	size.IsAvery5160Sheet = false

	err := s.repo.Create(ctx, &size)
	if errors.Is(err, repository.ErrDuplicateLabelSize) {
		return nil, ErrLabelSizeExists
	}
	if err != nil {
		return nil, fmt.Errorf("create label size: %w", err)
	}
	s.invalidate()
	return &size, nil
}

// SeedPresets inserts the built-in presets missing from storage.
func (s *LabelSizeServiceImpl) SeedPresets(ctx context.Context) (int64, error) {
	if s.repo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	inserted, err := s.repo.SeedPresets(ctx, builtinSizes())
	if err != nil {
		return 0, fmt.Errorf("seed label sizes: %w", err)
	}
	if inserted > 0 {
		s.invalidate()
	}
	return inserted, nil
}

// Resolve picks the size with id, falling back to the first preset that is
// not a sheet, then to any preset.
func (s *LabelSizeServiceImpl) Resolve(ctx context.Context, id string) (*model.LabelSize, error) {
	sizes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if id = strings.TrimSpace(id); id != "" {
		if size, ok := lo.Find(sizes, func(ls model.LabelSize) bool { return ls.ID == id }); ok {
			return &size, nil
		}
	}

	presets := lo.Filter(sizes, func(ls model.LabelSize, _ int) bool { return ls.IsPreset })
	slices.SortStableFunc(presets, func(a, b model.LabelSize) int {
		return cmp.Compare(presetRank(a.ID), presetRank(b.ID))
	})
	geometries := lo.Map(presets, func(ls model.LabelSize, _ int) label.LabelSize { return ls.Geometry() })
	if g, ok := label.DefaultSingleLabel(geometries); ok {
		size, _ := lo.Find(presets, func(ls model.LabelSize) bool { return ls.ID == g.ID })
		return &size, nil
	}
	if len(presets) > 0 {
		return &presets[0], nil
	}
	return nil, ErrNoLabelSizes
}

func (s *LabelSizeServiceImpl) invalidate() {
	if s.cache != nil {
		s.cache.Invalidate(labelSizesKey)
	}
}

// presetRank orders presets the way they are declared, unknown ids last.
func presetRank(id string) int {
	idx := slices.IndexFunc(label.Presets(), func(p label.LabelSize) bool { return p.ID == id })
	if idx < 0 {
		return len(label.Presets())
	}
	return idx
}

// builtinSizes returns the presets in list order: by name.
func builtinSizes() []model.LabelSize {
	sizes := lo.Map(label.Presets(), func(p label.LabelSize, _ int) model.LabelSize {
		return model.LabelSizeFromGeometry(p)
	})
	slices.SortFunc(sizes, func(a, b model.LabelSize) int { return cmp.Compare(a.Name, b.Name) })
	return sizes
}
