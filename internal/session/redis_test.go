package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivingschool/admin/internal/app/models"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisStore(context.Background(), RedisConfig{
		Addr:      mr.Addr(),
		KeyPrefix: "test:session:",
		TTL:       ttl,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	_, err := store.Load(ctx, "abc")
	require.ErrorIs(t, err, ErrNotFound)

	state := &State{}
	state.Students.Students = []models.Student{{ID: 9, FirstName: "Hana"}}
	state.Notify(models.Failure("Failed to load teacher data."))
	require.NoError(t, store.Save(ctx, "abc", state))

	assert.True(t, mr.Exists("test:session:abc"))
	assert.Equal(t, time.Hour, mr.TTL("test:session:abc"))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, loaded.Students.Students, 1)
	assert.Equal(t, "Hana", loaded.Students.Students[0].FirstName)
	require.Len(t, loaded.Flash, 1)
	assert.True(t, loaded.Flash[0].IsError())

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Load(ctx, "abc")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreLastWriteWins(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	first := &State{}
	first.Teachers.Teachers = []models.Teacher{{ID: 1, FirstName: "Kebede"}}
	second := &State{}
	second.Teachers.Teachers = []models.Teacher{{ID: 2, FirstName: "Almaz"}}

	require.NoError(t, store.Save(ctx, "abc", first))
	require.NoError(t, store.Save(ctx, "abc", second))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, loaded.Teachers.Teachers, 1)
	assert.Equal(t, "Almaz", loaded.Teachers.Teachers[0].FirstName)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", &State{}))

	mr.FastForward(59 * time.Second)
	_, err := store.Load(ctx, "abc")
	require.NoError(t, err)

	mr.FastForward(time.Second)
	_, err = store.Load(ctx, "abc")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreCorruptValue(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	require.NoError(t, mr.Set("test:session:abc", "not json"))

	_, err := store.Load(context.Background(), "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNewRedisStoreUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedisStore(ctx, RedisConfig{Addr: addr})
	assert.Error(t, err)
}
