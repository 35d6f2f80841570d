// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/repository"
)

type MockLabelSizeRepositoryInterface struct {
	mock.Mock
}

func (m *MockLabelSizeRepositoryInterface) List(ctx context.Context) ([]model.LabelSize, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LabelSize), args.Error(1)
}

func (m *MockLabelSizeRepositoryInterface) FindByID(ctx context.Context, id string) (*model.LabelSize, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LabelSize), args.Error(1)
}

func (m *MockLabelSizeRepositoryInterface) Create(ctx context.Context, size *model.LabelSize) error {
	args := m.Called(ctx, size)
	return args.Error(0)
}

func (m *MockLabelSizeRepositoryInterface) SeedPresets(ctx context.Context, presets []model.LabelSize) (int64, error) {
	args := m.Called(ctx, presets)
	return args.Get(0).(int64), args.Error(1)
}

type MockBundleRepositoryInterface struct {
	mock.Mock
}

func (m *MockBundleRepositoryInterface) List(ctx context.Context) ([]model.Bundle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bundle), args.Error(1)
}

func (m *MockBundleRepositoryInterface) Upsert(ctx context.Context, name string, items []model.BundleItem) (*model.Bundle, error) {
	args := m.Called(ctx, name, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bundle), args.Error(1)
}

type MockUserRepositoryInterface struct {
	mock.Mock
}

func (m *MockUserRepositoryInterface) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepositoryInterface) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepositoryInterface) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockActivityRepositoryInterface struct {
	mock.Mock
}

func (m *MockActivityRepositoryInterface) Create(ctx context.Context, entry *model.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepositoryInterface) ListByBox(ctx context.Context, boxID string, limit int) ([]model.ActivityLog, error) {
	args := m.Called(ctx, boxID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityLog), args.Error(1)
}

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.LogEntryDocument), args.Error(1)
}

func (m *MockLogsRepositoryInterface) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
