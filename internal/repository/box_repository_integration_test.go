//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/move-labels/internal/domain/model"
)

func newTestBox(shortCode, room, roomCode string) *model.Box {
	return &model.Box{
		ShortCode: shortCode,
		House:     "House",
		Floor:     "Main",
		Room:      room,
		RoomCode:  roomCode,
		Priority:  model.PriorityMedium,
		Status:    model.StatusDraft,
		Condition: model.ConditionOK,
	}
}

func TestBoxRepository_CreateAndFind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewBoxRepository(setupTestDBFromSharedContainer(t))

	box := newTestBox("BX-000001", "Kitchen", "KIT")
	require.NoError(t, repo.Create(ctx, box))
	assert.False(t, box.ID.IsZero())
	assert.NotZero(t, box.CreatedAt)
	assert.NotNil(t, box.Items)

	byID, err := repo.FindByID(ctx, box.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Kitchen", byID.Room)

	byCode, err := repo.FindByShortCode(ctx, "BX-000001")
	require.NoError(t, err)
	require.NotNil(t, byCode)
	assert.Equal(t, box.ID, byCode.ID)

	missing, err := repo.FindByID(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.Create(ctx, newTestBox("BX-000001", "Office", "OFF"))
	assert.ErrorIs(t, err, ErrDuplicateShortCode)
}

func TestBoxRepository_ListLatestAndRoomCodes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewBoxRepository(setupTestDBFromSharedContainer(t))

	for _, b := range []*model.Box{
		newTestBox("BX-000001", "Kitchen", "KIT"),
		newTestBox("BX-000002", "Kitchen", "KIT"),
		newTestBox("BX-000003", "Living Room", "LR"),
	} {
		require.NoError(t, repo.Create(ctx, b))
		time.Sleep(2 * time.Millisecond)
	}

	all, err := repo.List(ctx, BoxListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "BX-000003", all[0].ShortCode)

	kitchen, err := repo.List(ctx, BoxListOptions{RoomCode: "KIT"})
	require.NoError(t, err)
	assert.Len(t, kitchen, 2)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BX-000003", latest.ShortCode)

	codes, err := repo.RoomCodes(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"KIT", "LR"}, codes)

	byIDs, err := repo.FindByIDs(ctx, []primitive.ObjectID{all[0].ID, all[2].ID, primitive.NewObjectID()})
	require.NoError(t, err)
	require.Len(t, byIDs, 2)
	assert.Equal(t, "BX-000001", byIDs[0].ShortCode)
}

func TestBoxRepository_Items(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewBoxRepository(setupTestDBFromSharedContainer(t))

	box := newTestBox("BX-000010", "Bathroom", "BATH")
	require.NoError(t, repo.Create(ctx, box))

	now := time.Now().UTC()
	updated, err := repo.AddItems(ctx, box.ID, []model.Item{
		{ID: "i1", Name: "Towels", Qty: 4, Tags: []string{"linen"}, CreatedAt: now},
		{ID: "i2", Name: "Soap", Qty: 1, Tags: []string{}, CreatedAt: now},
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)

	updated, err = repo.UpdateItem(ctx, box.ID, model.Item{ID: "i2", Name: "Soap bars", Qty: 3, Packed: true, Tags: []string{}})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Soap bars", updated.Items[1].Name)
	assert.True(t, updated.Items[1].Packed)

	missing, err := repo.UpdateItem(ctx, box.ID, model.Item{ID: "nope", Name: "x"})
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated, err = repo.DeleteItem(ctx, box.ID, "i1")
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "i2", updated.Items[0].ID)

	missing, err = repo.DeleteItem(ctx, box.ID, "i1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBoxRepository_Search(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewBoxRepository(setupTestDBFromSharedContainer(t))

	kitchen := newTestBox("BX-000001", "Kitchen", "KIT")
	kitchen.Items = []model.Item{{ID: "a", Name: "Wine glasses", Qty: 6, Tags: []string{"fragile"}}}
	office := newTestBox("BX-000002", "Office", "OFF")
	office.Zone = "Desk (left)"
	require.NoError(t, repo.Create(ctx, kitchen))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, repo.Create(ctx, office))

	tests := []struct {
		query string
		want  []string
	}{
		{"wine", []string{"BX-000001"}},
		{"FRAGILE", []string{"BX-000001"}},
		{"bx-00000", []string{"BX-000002", "BX-000001"}},
		{"(left)", []string{"BX-000002"}},
		{"garage", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			found, err := repo.Search(ctx, tt.query, 50)
			require.NoError(t, err)
			var codes []string
			for _, b := range found {
				codes = append(codes, b.ShortCode)
			}
			assert.Equal(t, tt.want, codes)
		})
	}
}

func TestBoxRepository_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewBoxRepository(setupTestDBFromSharedContainer(t))

	box := newTestBox("BX-000001", "Garage", "GAR")
	require.NoError(t, repo.Create(ctx, box))

	box.Status = model.StatusPacked
	require.NoError(t, repo.Update(ctx, box))

	stored, err := repo.FindByID(ctx, box.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPacked, stored.Status)

	deleted, err := repo.Delete(ctx, box.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, box.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.Error(t, repo.Update(ctx, box))
}
