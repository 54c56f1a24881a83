package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/storage"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func persistedLines(t *testing.T, store repository.KVStore, owner string) ([]entity.CartLine, bool) {
	t.Helper()

	raw, found, err := store.Get(context.Background(), repository.CartKey(owner))
	require.NoError(t, err)
	if !found {
		return nil, false
	}

	var lines []entity.CartLine
	require.NoError(t, json.Unmarshal([]byte(raw), &lines))

	return lines, true
}

func seedCart(t *testing.T, store repository.KVStore, owner string, lines ...entity.CartLine) {
	t.Helper()

	payload, err := json.Marshal(lines)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), repository.CartKey(owner), string(payload)))
}

func TestCartStore_RepeatedAddsAccumulate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	split := newTestCart(t, newBackend(t).Open())
	split.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 2})
	split.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 3})

	single := newTestCart(t, newBackend(t).Open())
	single.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 5})

	assert.Equal(t, single.Items(), split.Items())
	assert.Equal(t, 5, split.TotalItems())
	require.Len(t, split.Items(), 1)
}

func TestCartStore_AddRefreshesCachedFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cart := newTestCart(t, newBackend(t).Open())

	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 1, Name: "Paracetamol", Price: price(3.5)})
	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 1})
	assert.Equal(t, "Paracetamol", cart.Items()[0].Name)
	assert.InDelta(t, 3.5, *cart.Items()[0].Price, 0.001)

	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 1, Name: "Paracetamol 500mg", Price: price(4)})
	assert.Equal(t, "Paracetamol 500mg", cart.Items()[0].Name)
	assert.InDelta(t, 4.0, *cart.Items()[0].Price, 0.001)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCartStore_NonPositiveAddIgnored(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newBackend(t).Open()
	cart := newTestCart(t, store)

	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 0})
	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: -2})

	assert.Empty(t, cart.Items())
	_, found := persistedLines(t, store, entity.AnonymousOwner)
	assert.False(t, found)
}

func TestCartStore_QuantityIsCapped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newBackend(t).Open()
	cart := newTestCart(t, store)

	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: math.MaxInt})
	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 1})
	cart.AddToCart(ctx, entity.CartLine{ProductID: 2, Quantity: entity.MaxLineQuantity - 1})
	cart.AddToCart(ctx, entity.CartLine{ProductID: 2, Quantity: math.MaxInt})

	require.Len(t, cart.Items(), 2)
	assert.Equal(t, entity.MaxLineQuantity, cart.Items()[0].Quantity)
	assert.Equal(t, entity.MaxLineQuantity, cart.Items()[1].Quantity)
	assert.Equal(t, 2*entity.MaxLineQuantity, cart.TotalItems())

	cart.UpdateQuantity(ctx, 1, math.MaxInt)
	assert.Equal(t, entity.MaxLineQuantity, cart.Items()[0].Quantity)

	lines, found := persistedLines(t, store, entity.AnonymousOwner)
	require.True(t, found)
	for _, line := range lines {
		assert.Equal(t, entity.MaxLineQuantity, line.Quantity)
	}
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newBackend(t).Open()
	cart := newTestCart(t, store)
	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 2})
	cart.AddToCart(ctx, entity.CartLine{ProductID: 2, Quantity: 4})

	cart.UpdateQuantity(ctx, 2, 7)
	assert.Equal(t, 9, cart.TotalItems())

	cart.UpdateQuantity(ctx, 99, 3)
	assert.Equal(t, 9, cart.TotalItems())

	before := cart.TotalItems()
	cart.UpdateQuantity(ctx, 2, 0)
	assert.Equal(t, before-7, cart.TotalItems())
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 2}}, cart.Items())

	lines, found := persistedLines(t, store, entity.AnonymousOwner)
	require.True(t, found)
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 2}}, lines)
}

func TestCartStore_EmptyCartIsNeverPersisted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newBackend(t).Open()
	cart := newTestCart(t, store)

	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 1})
	_, found := persistedLines(t, store, entity.AnonymousOwner)
	require.True(t, found)

	cart.RemoveFromCart(ctx, 1)
	_, found = persistedLines(t, store, entity.AnonymousOwner)
	assert.False(t, found)

	cart.AddToCart(ctx, entity.CartLine{ProductID: 2, Quantity: 1})
	cart.ClearCart(ctx)
	_, found = persistedLines(t, store, entity.AnonymousOwner)
	assert.False(t, found)
	assert.Equal(t, 0, cart.TotalItems())
	assert.NotNil(t, cart.Items())
}

func TestCartStore_LoadsAnonymousCartOnStart(t *testing.T) {
	t.Parallel()

	store := newBackend(t).Open()
	seedCart(t, store, entity.AnonymousOwner, entity.CartLine{ProductID: 3, Quantity: 2})

	cart := newTestCart(t, store)
	assert.Equal(t, entity.AnonymousOwner, cart.Owner())
	assert.Equal(t, 2, cart.TotalItems())
}

func TestCartStore_CorruptPersistedCartStartsEmpty(t *testing.T) {
	t.Parallel()

	store := newBackend(t).Open()
	require.NoError(t, store.Set(context.Background(), repository.CartKey(entity.AnonymousOwner), `{"oops"`))

	cart := newTestCart(t, store)
	assert.Empty(t, cart.Items())
}

func TestCartStore_MigratesAnonymousCart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newBackend(t).Open()
	cart := newTestCart(t, store)
	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 2})

	transition := cart.SwitchOwner(ctx, "12345678")

	assert.Equal(t, entity.TransitionMigrated, transition)
	assert.Equal(t, "12345678", cart.Owner())
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 2}}, cart.Items())

	lines, found := persistedLines(t, store, "12345678")
	require.True(t, found)
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 2}}, lines)
	_, found = persistedLines(t, store, entity.AnonymousOwner)
	assert.False(t, found)

	// Repeating the transition is a no-op
	assert.Equal(t, entity.TransitionNone, cart.SwitchOwner(ctx, "12345678"))
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 2}}, cart.Items())
}

func TestCartStore_ExistingUserCartWinsWithoutMerge(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newBackend(t).Open()
	seedCart(t, store, "12345678", entity.CartLine{ProductID: 2, Quantity: 1})
	cart := newTestCart(t, store)
	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 2})

	transition := cart.SwitchOwner(ctx, "12345678")

	assert.Equal(t, entity.TransitionAdopted, transition)
	assert.Equal(t, []entity.CartLine{{ProductID: 2, Quantity: 1}}, cart.Items())

	// The anonymous cart is left untouched
	lines, found := persistedLines(t, store, entity.AnonymousOwner)
	require.True(t, found)
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 2}}, lines)
}

func TestCartStore_EmptyOrCorruptUserCartCountsAsMissing(t *testing.T) {
	t.Parallel()

	for name, raw := range map[string]string{"empty": `[]`, "corrupt": `[{`} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			store := newBackend(t).Open()
			require.NoError(t, store.Set(ctx, repository.CartKey("12345678"), raw))
			cart := newTestCart(t, store)
			cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 2})

			assert.Equal(t, entity.TransitionMigrated, cart.SwitchOwner(ctx, "12345678"))
			assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 2}}, cart.Items())
		})
	}
}

func TestCartStore_SignInWithNothingAnywhere(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cart := newTestCart(t, newBackend(t).Open())

	assert.Equal(t, entity.TransitionEmpty, cart.SwitchOwner(ctx, "12345678"))
	assert.Empty(t, cart.Items())
	assert.Equal(t, "12345678", cart.Owner())
}

func TestCartStore_SignOutLoadsAnonymousCart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newBackend(t).Open()
	cart := newTestCart(t, store)
	cart.SwitchOwner(ctx, "12345678")
	cart.AddToCart(ctx, entity.CartLine{ProductID: 5, Quantity: 1})

	seedCart(t, store, entity.AnonymousOwner, entity.CartLine{ProductID: 9, Quantity: 4})

	assert.Equal(t, entity.TransitionSignedOut, cart.SwitchOwner(ctx, ""))
	assert.Equal(t, entity.AnonymousOwner, cart.Owner())
	assert.Equal(t, []entity.CartLine{{ProductID: 9, Quantity: 4}}, cart.Items())

	// The user's cart stays persisted for the next sign-in
	lines, found := persistedLines(t, store, "12345678")
	require.True(t, found)
	assert.Equal(t, []entity.CartLine{{ProductID: 5, Quantity: 1}}, lines)
	assert.Equal(t, entity.TransitionAdopted, cart.SwitchOwner(ctx, "12345678"))
}

func TestCartStore_SyncsAcrossHandles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newBackend(t)
	tabA := newTestCart(t, backend.Open())
	tabB := newTestCart(t, backend.Open())

	tabA.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 1})
	backend.Flush()
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 1}}, tabB.Items())

	tabA.UpdateQuantity(ctx, 1, 3)
	backend.Flush()
	assert.Equal(t, 3, tabB.TotalItems())

	tabA.ClearCart(ctx)
	backend.Flush()
	assert.Empty(t, tabB.Items())
}

// racingStore runs afterGet once, right after the first read of key returns.
type racingStore struct {
	repository.KVStore

	key      string
	once     sync.Once
	afterGet func()
}

func (s *racingStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, found, err := s.KVStore.Get(ctx, key)
	if key == s.key {
		s.once.Do(s.afterGet)
	}

	return value, found, err
}

func TestCartStore_RemoteWriteDuringOwnerSwitchWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newBackend(t)
	other := backend.Open()
	seedCart(t, other, "12345678", entity.CartLine{ProductID: 1, Quantity: 1})

	store := &racingStore{
		KVStore: backend.Open(),
		key:     repository.CartKey("12345678"),
		afterGet: func() {
			seedCart(t, other, "12345678", entity.CartLine{ProductID: 1, Quantity: 5})
			backend.Flush()
		},
	}
	cart := newTestCart(t, store)

	transition := cart.SwitchOwner(ctx, "12345678")

	assert.Equal(t, entity.TransitionAdopted, transition)
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 5}}, cart.Items())
}

func TestCartStore_IgnoresChangesForOtherOwners(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newBackend(t)
	tabA := newTestCart(t, backend.Open())
	tabB := newTestCart(t, backend.Open())
	tabB.SwitchOwner(ctx, "12345678")
	backend.Flush()

	tabA.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 1})
	backend.Flush()
	assert.Empty(t, tabB.Items())
}

func TestCartStore_IgnoresUnparsableRemoteWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newBackend(t)
	other := backend.Open()
	cart := newTestCart(t, backend.Open())
	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 2})

	require.NoError(t, other.Set(ctx, repository.CartKey(entity.AnonymousOwner), `garbage`))
	backend.Flush()

	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 2}}, cart.Items())
}

func TestCartStore_CloseStopsSync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := newBackend(t)
	tabA := newTestCart(t, backend.Open())
	tabB := newTestCart(t, backend.Open())
	require.NoError(t, tabB.Close())

	tabA.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 1})
	backend.Flush()
	assert.Empty(t, tabB.Items())
}

func TestCartStore_SyncsAcrossRedisProcesses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mr := miniredis.RunT(t)

	open := func() repository.KVStore {
		backend, err := storage.NewRedisBackend(ctx, storage.RedisOptions{Addr: mr.Addr(), Namespace: "pv"}, slog.Default())
		require.NoError(t, err)
		store := backend.Open()
		t.Cleanup(func() {
			_ = store.Close()
			_ = backend.Close()
		})

		return store
	}

	tabA := newTestCart(t, open())
	tabB := newTestCart(t, open())

	tabA.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 1})
	require.Eventually(t, func() bool { return tabB.TotalItems() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 1}}, tabB.Items())
}

func TestCartStore_StorageUnavailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := &flakyStore{KVStore: newBackend(t).Open()}
	cart := newTestCart(t, store)
	store.setBroken(true)

	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 2})
	cart.AddToCart(ctx, entity.CartLine{ProductID: 2, Quantity: 1})
	cart.RemoveFromCart(ctx, 2)
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 2}}, cart.Items())

	// Storage comes back before sign-in: the in-memory cart is carried over
	store.setBroken(false)
	assert.Equal(t, entity.TransitionMigrated, cart.SwitchOwner(ctx, "12345678"))
	lines, found := persistedLines(t, store, "12345678")
	require.True(t, found)
	assert.Equal(t, []entity.CartLine{{ProductID: 1, Quantity: 2}}, lines)
}

func TestCartStore_FollowsSessionIdentity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newTestClock()
	store := newBackend(t).Open()
	session := newTestSession(store, clock)
	cart := newTestCart(t, store)
	session.OnIdentityChange(func(ctx context.Context, subject string) { cart.SwitchOwner(ctx, subject) })

	session.Hydrate(ctx)
	cart.AddToCart(ctx, entity.CartLine{ProductID: 1, Quantity: 2})

	_, err := session.Login(ctx, mintToken(t, "12345678", "CLIENTE", clock.Now().Add(time.Hour)), anaProfile)
	require.NoError(t, err)
	assert.Equal(t, "12345678", cart.Owner())
	assert.Equal(t, 2, cart.TotalItems())

	session.Logout(ctx)
	assert.Equal(t, entity.AnonymousOwner, cart.Owner())
	assert.Empty(t, cart.Items())
}
