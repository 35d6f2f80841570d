package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/mocks"
	"github.com/guttosm/move-labels/internal/service"
)

func TestBundleService_Upsert(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.BundleRequest
		setupMock func(m *mocks.MockBundleRepositoryInterface)
		wantErr   bool
	}{
		{
			name: "drops nameless items and defaults quantity",
			req: dto.BundleRequest{Name: " Bathroom basics ", Items: []dto.PreviewItem{
				{Name: "Towels", Qty: 4},
				{Name: "  "},
				{Name: "Soap"},
			}},
			setupMock: func(m *mocks.MockBundleRepositoryInterface) {
				m.On("Upsert", mock.Anything, "Bathroom basics", []model.BundleItem{
					{Name: "Towels", Qty: 4},
					{Name: "Soap", Qty: 1},
				}).Return(&model.Bundle{Name: "Bathroom basics"}, nil)
			},
		},
		{
			name:      "name is required",
			req:       dto.BundleRequest{Name: " "},
			setupMock: func(*mocks.MockBundleRepositoryInterface) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockBundleRepositoryInterface)
			tt.setupMock(repo)

			got, err := service.NewBundleService(repo).Upsert(context.Background(), tt.req)
			if tt.wantErr {
				var verr *dto.ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Bathroom basics", got.Name)
			repo.AssertExpectations(t)
		})
	}
}

func TestBundleService_List(t *testing.T) {
	repo := new(mocks.MockBundleRepositoryInterface)
	repo.On("List", mock.Anything).Return([]model.Bundle{{Name: "Desk"}}, nil)

	got, err := service.NewBundleService(repo).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = service.NewBundleService(nil).List(context.Background())
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}
