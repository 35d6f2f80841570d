package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/move-labels/internal/circuitbreaker"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/mocks"
	"github.com/guttosm/move-labels/internal/repository"
)

func newBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             "test",
		IsFailure:        repository.IsBreakerFailure,
	})
}

func TestBoxRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("passes results through", func(t *testing.T) {
		inner := new(mocks.MockBoxRepositoryInterface)
		want := &model.Box{ID: id, ShortCode: "BX-000001"}
		inner.On("FindByID", ctx, id).Return(want, nil)

		got, err := repository.NewBoxRepositoryWithCircuitBreaker(inner, newBreaker()).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Same(t, want, got)
		inner.AssertExpectations(t)
	})

	t.Run("duplicate short code does not open the circuit", func(t *testing.T) {
		inner := new(mocks.MockBoxRepositoryInterface)
		inner.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateShortCode)
		cb := newBreaker()
		repo := repository.NewBoxRepositoryWithCircuitBreaker(inner, cb)

		err := repo.Create(ctx, &model.Box{})

		assert.ErrorIs(t, err, repository.ErrDuplicateShortCode)
		assert.False(t, cb.IsOpen())
	})

	t.Run("outage opens the circuit", func(t *testing.T) {
		inner := new(mocks.MockBoxRepositoryInterface)
		inner.On("List", ctx, repository.BoxListOptions{}).Return(nil, errors.New("server selection timeout")).Once()
		cb := newBreaker()
		repo := repository.NewBoxRepositoryWithCircuitBreaker(inner, cb)

		_, err := repo.List(ctx, repository.BoxListOptions{})
		require.Error(t, err)
		require.True(t, cb.IsOpen())

		_, err = repo.List(ctx, repository.BoxListOptions{})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
		inner.AssertNumberOfCalls(t, "List", 1)
		assert.Same(t, cb, repo.GetCircuitBreaker())
	})
}

func TestActivityRepositoryWithCircuitBreaker_OpenCircuitIsSilent(t *testing.T) {
	ctx := context.Background()
	inner := new(mocks.MockActivityRepositoryInterface)
	inner.On("Create", ctx, mock.Anything).Return(errors.New("connection reset")).Once()
	repo := repository.NewActivityRepositoryWithCircuitBreaker(inner, newBreaker())

	assert.Error(t, repo.Create(ctx, &model.ActivityLog{Action: model.ActionBoxScanned}))
	assert.NoError(t, repo.Create(ctx, &model.ActivityLog{Action: model.ActionBoxScanned}))

	entries, err := repo.ListByBox(ctx, "abc", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLogsRepositoryWithCircuitBreaker_OpenCircuitIsSilent(t *testing.T) {
	ctx := context.Background()
	inner := new(mocks.MockLogsRepositoryInterface)
	inner.On("CreateMany", ctx, mock.Anything).Return(errors.New("connection reset")).Once()
	repo := repository.NewLogsRepositoryWithCircuitBreaker(inner, newBreaker())

	batch := []*repository.LogEntryDocument{{Message: "GET /api/v1/boxes"}}
	assert.Error(t, repo.CreateMany(ctx, batch))
	assert.NoError(t, repo.CreateMany(ctx, batch))
	assert.NoError(t, repo.Create(ctx, batch[0]))
}

func TestLabelSizeRepositoryWithCircuitBreaker_NotFoundIsNotAnOutage(t *testing.T) {
	ctx := context.Background()
	inner := new(mocks.MockLabelSizeRepositoryInterface)
	inner.On("FindByID", ctx, "missing").Return(nil, nil)
	cb := newBreaker()
	repo := repository.NewLabelSizeRepositoryWithCircuitBreaker(inner, cb)

	size, err := repo.FindByID(ctx, "missing")

	require.NoError(t, err)
	assert.Nil(t, size)
	assert.False(t, cb.IsOpen())
}
