package service

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/repository"
)

// BundleService manages reusable item bundles.
type BundleService interface {
	List(ctx context.Context) ([]model.Bundle, error)
	Upsert(ctx context.Context, req dto.BundleRequest) (*model.Bundle, error)
}

// BundleServiceImpl implements BundleService.
type BundleServiceImpl struct {
	repo repository.BundleRepositoryInterface
}

// NewBundleService creates a bundle service.
func NewBundleService(repo repository.BundleRepositoryInterface) *BundleServiceImpl {
	return &BundleServiceImpl{repo: repo}
}

// List returns bundles, most recently changed first.
func (s *BundleServiceImpl) List(ctx context.Context) ([]model.Bundle, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx)
}

// Upsert replaces the items of the named bundle, creating it when missing.
// Items without a name are dropped and quantities default to 1.
func (s *BundleServiceImpl) Upsert(ctx context.Context, req dto.BundleRequest) (*model.Bundle, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	items := lo.FilterMap(req.Items, func(it dto.PreviewItem, _ int) (model.BundleItem, bool) {
		name := strings.TrimSpace(it.Name)
		return model.BundleItem{Name: name, Qty: positiveQty(it.Qty)}, name != ""
	})
	return s.repo.Upsert(ctx, strings.TrimSpace(req.Name), items)
}
