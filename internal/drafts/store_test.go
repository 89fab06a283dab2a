package drafts

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/cleaning-estimator/internal/model"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, ttl), mr
}

func TestSaveAssignsIDAndRoundTrips(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	saved, err := store.Save(ctx, model.Draft{
		Mode:    model.FormModeDetailed,
		Step:    2,
		Project: model.ProjectDescription{ProjectName: "Tower B", SquareFootage: 12000},
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	assert.False(t, saved.UpdatedAt.IsZero())
	assert.Equal(t, time.Hour, mr.TTL(key(saved.ID)))

	got, err := store.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Step)
	assert.Equal(t, "Tower B", got.Project.ProjectName)
	assert.Equal(t, 12000.0, got.Project.SquareFootage)
}

func TestSaveKeepsGivenID(t *testing.T) {
	store, _ := newTestStore(t, 0)
	ctx := context.Background()

	_, err := store.Save(ctx, model.Draft{ID: "abc", Step: 1})
	require.NoError(t, err)
	_, err = store.Save(ctx, model.Draft{ID: "abc", Step: 3})
	require.NoError(t, err)

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Step)
}

func TestDraftExpires(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	saved, err := store.Save(ctx, model.Draft{Step: 1})
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	saved, err := store.Save(ctx, model.Draft{Step: 1})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, saved.ID))
	assert.ErrorIs(t, store.Delete(ctx, saved.ID), ErrNotFound)

	_, err = store.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDefaultTTL(t *testing.T) {
	store, _ := newTestStore(t, 0)
	assert.Equal(t, DefaultTTL, store.ttl)
}
