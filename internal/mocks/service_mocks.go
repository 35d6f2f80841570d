// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/export"
	"github.com/guttosm/move-labels/internal/repository"
	"github.com/guttosm/move-labels/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*model.SessionUser, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SessionUser), args.Error(1)
}

func (m *MockAuthService) SeedAdmin(ctx context.Context, username, password string) (bool, error) {
	args := m.Called(ctx, username, password)
	return args.Bool(0), args.Error(1)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) Record(ctx context.Context, action, boxID string, details map[string]any) {
	m.Called(ctx, action, boxID, details)
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLoggingService) Activity(ctx context.Context, boxID string, limit int) ([]model.ActivityLog, error) {
	args := m.Called(ctx, boxID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityLog), args.Error(1)
}

type MockBoxService struct {
	mock.Mock
}

func (m *MockBoxService) Create(ctx context.Context, req dto.CreateBoxRequest) (*model.Box, error) {
	args := m.Called(ctx, req)
	return box(args.Get(0)), args.Error(1)
}

func (m *MockBoxService) QuickCreate(ctx context.Context, req dto.QuickBoxRequest) (*model.Box, error) {
	args := m.Called(ctx, req)
	return box(args.Get(0)), args.Error(1)
}

func (m *MockBoxService) Get(ctx context.Context, id string) (*model.Box, error) {
	args := m.Called(ctx, id)
	return box(args.Get(0)), args.Error(1)
}

func (m *MockBoxService) GetMany(ctx context.Context, ids []string) ([]*model.Box, error) {
	args := m.Called(ctx, ids)
	return boxes(args.Get(0)), args.Error(1)
}

func (m *MockBoxService) List(ctx context.Context, opts repository.BoxListOptions) ([]*model.Box, error) {
	args := m.Called(ctx, opts)
	return boxes(args.Get(0)), args.Error(1)
}

func (m *MockBoxService) Update(ctx context.Context, id string, req dto.UpdateBoxRequest) (*model.Box, error) {
	args := m.Called(ctx, id, req)
	return box(args.Get(0)), args.Error(1)
}

func (m *MockBoxService) SetStatus(ctx context.Context, id string, status model.BoxStatus) (*model.Box, error) {
	args := m.Called(ctx, id, status)
	return box(args.Get(0)), args.Error(1)
}

func (m *MockBoxService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoxService) Scan(ctx context.Context, value string) (*model.Box, error) {
	args := m.Called(ctx, value)
	return box(args.Get(0)), args.Error(1)
}

func (m *MockBoxService) Search(ctx context.Context, query string) ([]model.SearchHit, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SearchHit), args.Error(1)
}

func (m *MockBoxService) SuggestRoomCode(ctx context.Context, room string) (string, error) {
	args := m.Called(ctx, room)
	return args.String(0), args.Error(1)
}

func (m *MockBoxService) AddItems(ctx context.Context, id string, req dto.AddItemsRequest) ([]model.Item, error) {
	args := m.Called(ctx, id, req)
	return items(args.Get(0)), args.Error(1)
}

func (m *MockBoxService) UpdateItem(ctx context.Context, id string, req dto.UpdateItemRequest) (*model.Item, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockBoxService) DeleteItem(ctx context.Context, id, itemID string) ([]model.Item, error) {
	args := m.Called(ctx, id, itemID)
	return items(args.Get(0)), args.Error(1)
}

func (m *MockBoxService) ListForMasterIndex(ctx context.Context) ([]*model.Box, error) {
	args := m.Called(ctx)
	return boxes(args.Get(0)), args.Error(1)
}

func (m *MockBoxService) ListForInsurance(ctx context.Context) ([]*model.Box, error) {
	args := m.Called(ctx)
	return boxes(args.Get(0)), args.Error(1)
}

type MockLabelSizeService struct {
	mock.Mock
}

func (m *MockLabelSizeService) List(ctx context.Context) ([]model.LabelSize, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LabelSize), args.Error(1)
}

func (m *MockLabelSizeService) Get(ctx context.Context, id string) (*model.LabelSize, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LabelSize), args.Error(1)
}

func (m *MockLabelSizeService) Create(ctx context.Context, req dto.LabelSizeRequest) (*model.LabelSize, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LabelSize), args.Error(1)
}

func (m *MockLabelSizeService) SeedPresets(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLabelSizeService) Resolve(ctx context.Context, id string) (*model.LabelSize, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LabelSize), args.Error(1)
}

type MockLabelService struct {
	mock.Mock
}

func (m *MockLabelService) Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PreviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PreviewResponse), args.Error(1)
}

func (m *MockLabelService) Export(ctx context.Context, in service.ExportInput) (*service.ExportResult, error) {
	args := m.Called(ctx, in)
	return exportResult(args.Get(0)), args.Error(1)
}

func (m *MockLabelService) MasterIndex(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockLabelService) Insurance(ctx context.Context, format string) (*service.ExportResult, error) {
	args := m.Called(ctx, format)
	return exportResult(args.Get(0)), args.Error(1)
}

func (m *MockLabelService) Providers() []export.Info {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]export.Info)
}

type MockBundleService struct {
	mock.Mock
}

func (m *MockBundleService) List(ctx context.Context) ([]model.Bundle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bundle), args.Error(1)
}

func (m *MockBundleService) Upsert(ctx context.Context, req dto.BundleRequest) (*model.Bundle, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bundle), args.Error(1)
}

func items(v any) []model.Item {
	if v == nil {
		return nil
	}
	return v.([]model.Item)
}

func exportResult(v any) *service.ExportResult {
	if v == nil {
		return nil
	}
	return v.(*service.ExportResult)
}

// NewMockAuthService creates a MockAuthService that asserts its expectations on cleanup.
func NewMockAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthService {
	m := &MockAuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// NewMockLoggingService creates a MockLoggingService that asserts its expectations on cleanup.
func NewMockLoggingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLoggingService {
	m := &MockLoggingService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
