package storage

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/repository"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisBackend(t *testing.T, namespace string) (*RedisBackend, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	backend, err := NewRedisBackend(context.Background(), RedisOptions{
		Addr:      mr.Addr(),
		Namespace: namespace,
	}, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	return backend, mr
}

func TestNewRedisBackend_RequiresAddr(t *testing.T) {
	t.Parallel()

	_, err := NewRedisBackend(context.Background(), RedisOptions{}, slog.Default())
	require.Error(t, err)
}

func TestRedisStore_GetSetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend, mr := newTestRedisBackend(t, "pv")
	store := backend.Open()
	t.Cleanup(func() { _ = store.Close() })

	_, found, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "token", "abc"))
	value, found, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc", value)

	raw, err := mr.Get("pv:token")
	require.NoError(t, err)
	assert.Equal(t, "abc", raw)

	require.NoError(t, store.Delete(ctx, "token"))
	assert.False(t, mr.Exists("pv:token"))
}

func TestRedisStore_WatchAcrossHandles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend, _ := newTestRedisBackend(t, "")
	a, b := backend.Open(), backend.Open()
	t.Cleanup(func() {
		_ = a.Close()
		_ = b.Close()
	})

	var seenByA, seenByB recorder
	_, err := a.Watch(seenByA.handle)
	require.NoError(t, err)
	_, err = b.Watch(seenByB.handle)
	require.NoError(t, err)

	require.NoError(t, a.Set(ctx, "cart:anonymous", `[{"productId":1,"quantity":2}]`))
	require.NoError(t, a.Delete(ctx, "cart:anonymous"))

	require.Eventually(t, func() bool { return len(seenByB.list()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []repository.Change{
		{Key: "cart:anonymous", Value: `[{"productId":1,"quantity":2}]`},
		{Key: "cart:anonymous", Deleted: true},
	}, seenByB.list())
	assert.Empty(t, seenByA.list())
}

func TestRedisStore_CloseStopsWatchers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend, _ := newTestRedisBackend(t, "")
	a, b := backend.Open(), backend.Open()
	t.Cleanup(func() { _ = a.Close() })

	var seen recorder
	stop, err := b.Watch(seen.handle)
	require.NoError(t, err)
	stop()
	require.NoError(t, b.Close())

	require.NoError(t, a.Set(ctx, "k", "v"))
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, seen.list())

	require.ErrorIs(t, b.Set(ctx, "k", "v"), repository.ErrStoreClosed)
}
