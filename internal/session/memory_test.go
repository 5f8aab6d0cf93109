package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivingschool/admin/internal/app/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	_, err := store.Load(ctx, "abc")
	require.ErrorIs(t, err, ErrNotFound)

	state := &State{}
	state.Teachers.Teachers = []models.Teacher{{ID: 1, FirstName: "Kebede"}}
	state.Notify(models.Success("Teacher added successfully!"))
	require.NoError(t, store.Save(ctx, "abc", state))

	loaded, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Kebede", loaded.Teachers.Teachers[0].FirstName)

	flash := loaded.TakeFlash()
	require.Len(t, flash, 1)
	assert.Empty(t, loaded.Flash)

	// Mutating a loaded copy must not leak into the store.
	loaded.Teachers.Teachers[0].FirstName = "Changed"
	again, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Kebede", again.Teachers.Teachers[0].FirstName)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Load(ctx, "abc")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", &State{}))
	now = now.Add(59 * time.Second)
	_, err := store.Load(ctx, "abc")
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = store.Load(ctx, "abc")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreConcurrentSaves(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			state := &State{}
			state.Notify(models.Success("saved"))
			assert.NoError(t, store.Save(ctx, "shared", state))
			_, err := store.Load(ctx, "shared")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	loaded, err := store.Load(ctx, "shared")
	require.NoError(t, err)
	assert.Len(t, loaded.Flash, 1)
}
