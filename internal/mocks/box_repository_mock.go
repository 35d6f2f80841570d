// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/repository"
)

type MockBoxRepositoryInterface struct {
	mock.Mock
}

func (m *MockBoxRepositoryInterface) Create(ctx context.Context, box *model.Box) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockBoxRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Box, error) {
	args := m.Called(ctx, id)
	return box(args.Get(0)), args.Error(1)
}

func (m *MockBoxRepositoryInterface) FindByShortCode(ctx context.Context, shortCode string) (*model.Box, error) {
	args := m.Called(ctx, shortCode)
	return box(args.Get(0)), args.Error(1)
}

func (m *MockBoxRepositoryInterface) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Box, error) {
	args := m.Called(ctx, ids)
	return boxes(args.Get(0)), args.Error(1)
}

func (m *MockBoxRepositoryInterface) List(ctx context.Context, opts repository.BoxListOptions) ([]*model.Box, error) {
	args := m.Called(ctx, opts)
	return boxes(args.Get(0)), args.Error(1)
}

func (m *MockBoxRepositoryInterface) Latest(ctx context.Context) (*model.Box, error) {
	args := m.Called(ctx)
	return box(args.Get(0)), args.Error(1)
}

func (m *MockBoxRepositoryInterface) Update(ctx context.Context, b *model.Box) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBoxRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBoxRepositoryInterface) RoomCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBoxRepositoryInterface) Search(ctx context.Context, query string, limit int) ([]*model.Box, error) {
	args := m.Called(ctx, query, limit)
	return boxes(args.Get(0)), args.Error(1)
}

func (m *MockBoxRepositoryInterface) AddItems(ctx context.Context, id primitive.ObjectID, items []model.Item) (*model.Box, error) {
	args := m.Called(ctx, id, items)
	return box(args.Get(0)), args.Error(1)
}

func (m *MockBoxRepositoryInterface) UpdateItem(ctx context.Context, id primitive.ObjectID, item model.Item) (*model.Box, error) {
	args := m.Called(ctx, id, item)
	return box(args.Get(0)), args.Error(1)
}

func (m *MockBoxRepositoryInterface) DeleteItem(ctx context.Context, id primitive.ObjectID, itemID string) (*model.Box, error) {
	args := m.Called(ctx, id, itemID)
	return box(args.Get(0)), args.Error(1)
}

func box(v any) *model.Box {
	if v == nil {
		return nil
	}
	return v.(*model.Box)
}

func boxes(v any) []*model.Box {
	if v == nil {
		return nil
	}
	return v.([]*model.Box)
}
