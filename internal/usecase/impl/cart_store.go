package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartStoreParams holds dependencies for the cart store, injected by Fx.
type CartStoreParams struct {
	fx.In

	Lc     fx.Lifecycle `optional:"true"`
	Store  repository.KVStore
	Logger *slog.Logger
}

// cartStore implements the CartUsecase interface.
//
// writeMu serializes every operation that persists, so writes reach the store
// in the order they were applied in memory. mu guards owner and cart and is
// never held across a store call, which keeps change notifications from other
// handles free to land while a write is in flight.
type cartStore struct {
	store  repository.KVStore
	logger *slog.Logger

	writeMu sync.Mutex

	mu    sync.RWMutex
	owner string
	cart  entity.Cart
	// changes counts remote changes applied to the active owner's key.
	changes uint64

	unwatch func()
}

// NewCartStore loads the anonymous cart and starts following changes made by other handles.
func NewCartStore(params CartStoreParams) (usecase.CartUsecase, error) {
	s := &cartStore{
		store:  params.Store,
		logger: params.Logger,
		owner:  entity.AnonymousOwner,
	}

	if cart, ok := s.load(context.Background(), entity.AnonymousOwner); ok {
		s.cart = cart
	}

	unwatch, err := params.Store.Watch(s.onChange)
	if err != nil {
		return nil, errors.Wrap(err, "watch cart changes")
	}
	s.unwatch = unwatch

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return s.Close()
			},
		})
	}

	return s, nil
}

func (s *cartStore) Items() []entity.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.cart.Clone().Lines
	if lines == nil {
		lines = []entity.CartLine{}
	}

	return lines
}

func (s *cartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cart.TotalItems()
}

func (s *cartStore) Owner() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.owner
}

func (s *cartStore) Snapshot() entity.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cart.Clone()
}

func (s *cartStore) AddToCart(ctx context.Context, line entity.CartLine) {
	// Non-positive quantities never reach the cart, so quantity >= 1 holds for every line
	if line.Quantity <= 0 {
		s.logger.Debug("Ignoring non-positive add", slog.Int64("product_id", line.ProductID), slog.Int("quantity", line.Quantity))

		return
	}

	s.mutate(ctx, func(cart *entity.Cart) { cart.Add(line) })
}

func (s *cartStore) RemoveFromCart(ctx context.Context, productID int64) {
	s.mutate(ctx, func(cart *entity.Cart) { cart.Remove(productID) })
}

func (s *cartStore) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	s.mutate(ctx, func(cart *entity.Cart) { cart.SetQuantity(productID, quantity) })
}

func (s *cartStore) ClearCart(ctx context.Context) {
	s.mutate(ctx, func(cart *entity.Cart) { *cart = entity.Cart{} })
}

// SwitchOwner runs the owner transition once per identity change:
//   - signing out reloads whatever is persisted for the anonymous owner;
//   - a non-empty cart already persisted for the user becomes active and the anonymous cart is left alone;
//   - otherwise the anonymous cart moves under the user's key and the anonymous entry is deleted.
//
// Two non-empty carts are never merged.
func (s *cartStore) SwitchOwner(ctx context.Context, subjectID string) entity.CartTransition {
	owner := subjectID
	if owner == "" {
		owner = entity.AnonymousOwner
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	current := s.owner
	inMemory := s.cart.Clone()
	s.mu.RUnlock()

	if owner == current {
		return entity.TransitionNone
	}

	since := s.retarget(owner)
	transition := s.transition(ctx, current, owner, inMemory, since)
	s.logger.Info("Cart owner changed",
		slog.String("from", current),
		slog.String("to", owner),
		slog.String("transition", transition.String()),
	)

	return transition
}

func (s *cartStore) transition(ctx context.Context, current, owner string, inMemory entity.Cart, since uint64) entity.CartTransition {
	if owner == entity.AnonymousOwner {
		cart, _ := s.load(ctx, entity.AnonymousOwner)
		s.install(ctx, owner, cart, since)

		return entity.TransitionSignedOut
	}

	if cart, ok := s.load(ctx, owner); ok {
		s.install(ctx, owner, cart, since)

		return entity.TransitionAdopted
	}

	if cart, ok := s.load(ctx, entity.AnonymousOwner); ok {
		// Only drop the anonymous entry once the user's copy is durable
		if s.save(ctx, owner, cart) {
			if err := s.store.Delete(ctx, repository.CartKey(entity.AnonymousOwner)); err != nil {
				s.logger.Warn("Failed to delete migrated anonymous cart", slog.Any("error", err))
			}
		}
		s.install(ctx, owner, cart, since)

		return entity.TransitionMigrated
	}

	// The anonymous cart only lives in memory when persisting it failed earlier
	if current == entity.AnonymousOwner && !inMemory.IsEmpty() {
		s.save(ctx, owner, inMemory)
		s.install(ctx, owner, inMemory, since)

		return entity.TransitionMigrated
	}

	s.install(ctx, owner, entity.Cart{}, since)

	return entity.TransitionEmpty
}

func (s *cartStore) Close() error {
	s.mu.Lock()
	unwatch := s.unwatch
	s.unwatch = nil
	s.mu.Unlock()

	if unwatch != nil {
		unwatch()
	}

	return nil
}

// mutate applies fn to the active cart and persists the result under the current owner.
func (s *cartStore) mutate(ctx context.Context, fn func(*entity.Cart)) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	fn(&s.cart)
	owner := s.owner
	snapshot := s.cart.Clone()
	s.mu.Unlock()

	s.save(ctx, owner, snapshot)
}

// retarget points change notifications at owner before its cart is read,
// returning the change count to hand to install.
func (s *cartStore) retarget(owner string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.owner = owner

	return s.changes
}

// install makes cart active unless a remote change for owner landed after
// since; then the store holds the newer value and is read again.
func (s *cartStore) install(ctx context.Context, owner string, cart entity.Cart, since uint64) {
	for {
		s.mu.Lock()
		if s.changes == since {
			s.cart = cart
			s.mu.Unlock()

			return
		}
		since = s.changes
		s.mu.Unlock()

		cart, _ = s.load(ctx, owner)
	}
}

// onChange replaces the active cart when another handle wrote its key.
func (s *cartStore) onChange(change repository.Change) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if change.Key != repository.CartKey(s.owner) {
		return
	}

	if change.Deleted {
		s.cart = entity.Cart{}
		s.changes++

		return
	}

	lines, err := decodeLines(change.Value)
	if err != nil {
		s.logger.Warn("Ignoring unparsable cart change", slog.String("key", change.Key), slog.Any("error", err))

		return
	}
	s.cart = entity.NewCart(lines)
	s.changes++
}

// save persists cart under owner; an empty cart deletes the entry instead.
// It reports whether the store accepted the write.
func (s *cartStore) save(ctx context.Context, owner string, cart entity.Cart) bool {
	key := repository.CartKey(owner)

	if cart.IsEmpty() {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to delete cart", slog.String("key", key), slog.Any("error", err))

			return false
		}

		return true
	}

	payload, err := json.Marshal(cart.Lines)
	if err != nil {
		s.logger.Warn("Failed to encode cart", slog.String("key", key), slog.Any("error", err))

		return false
	}
	if err := s.store.Set(ctx, key, string(payload)); err != nil {
		s.logger.Warn("Failed to persist cart", slog.String("key", key), slog.Any("error", err))

		return false
	}

	return true
}

// load reads the cart persisted for owner. Read failures, corrupt payloads
// and empty carts all count as no cart.
func (s *cartStore) load(ctx context.Context, owner string) (entity.Cart, bool) {
	key := repository.CartKey(owner)

	raw, found, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Failed to read cart", slog.String("key", key), slog.Any("error", err))

		return entity.Cart{}, false
	}
	if !found {
		return entity.Cart{}, false
	}

	lines, err := decodeLines(raw)
	if err != nil {
		s.logger.Warn("Ignoring unparsable cart", slog.String("key", key), slog.Any("error", err))

		return entity.Cart{}, false
	}

	cart := entity.NewCart(lines)
	if cart.IsEmpty() {
		return entity.Cart{}, false
	}

	return cart, true
}

func decodeLines(raw string) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, errors.Wrap(err, "decode cart lines")
	}

	return lines, nil
}
