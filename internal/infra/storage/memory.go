// Package storage provides the key-value store adapters behind repository.KVStore.
package storage

import (
	"context"
	"sync"

	"storefront/internal/domain/repository"

	evbus "github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const changeTopic = "storage:change"

// MemoryBackend is a process-local store shared by every handle opened on it.
// Change notifications are fanned out asynchronously and in publish order.
type MemoryBackend struct {
	// writeMu spans a write and its publish, so notifications go out in the
	// order values were stored. Handlers must not write through the backend.
	writeMu sync.Mutex

	mu   sync.RWMutex
	data map[string]string

	bus evbus.Bus

	watchMu  sync.RWMutex
	watchers map[string]map[uint64]repository.ChangeHandler
	nextID   uint64
}

// NewMemoryBackend creates an empty backend.
func NewMemoryBackend() (*MemoryBackend, error) {
	b := &MemoryBackend{
		data:     make(map[string]string),
		bus:      evbus.New(),
		watchers: make(map[string]map[uint64]repository.ChangeHandler),
	}

	// One transactional subscriber keeps deliveries serialized in publish order.
	if err := b.bus.SubscribeAsync(changeTopic, b.fanout, true); err != nil {
		return nil, errors.Wrap(err, "subscribe change topic")
	}

	return b, nil
}

// Open returns a new handle, the equivalent of opening another tab.
func (b *MemoryBackend) Open() repository.KVStore {
	return &memoryStore{
		backend: b,
		origin:  uuid.NewString(),
	}
}

// Flush blocks until every pending change notification has been delivered.
func (b *MemoryBackend) Flush() {
	b.bus.WaitAsync()
}

// Len returns the number of stored keys.
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.data)
}

func (b *MemoryBackend) publish(origin string, change repository.Change) {
	b.bus.Publish(changeTopic, origin, change)
}

func (b *MemoryBackend) fanout(origin string, change repository.Change) {
	b.watchMu.RLock()
	var handlers []repository.ChangeHandler
	for watcherOrigin, byID := range b.watchers {
		if watcherOrigin == origin {
			continue
		}
		for _, fn := range byID {
			handlers = append(handlers, fn)
		}
	}
	b.watchMu.RUnlock()

	for _, fn := range handlers {
		fn(change)
	}
}

func (b *MemoryBackend) addWatcher(origin string, fn repository.ChangeHandler) uint64 {
	b.watchMu.Lock()
	defer b.watchMu.Unlock()

	b.nextID++
	if b.watchers[origin] == nil {
		b.watchers[origin] = make(map[uint64]repository.ChangeHandler)
	}
	b.watchers[origin][b.nextID] = fn

	return b.nextID
}

func (b *MemoryBackend) removeWatcher(origin string, id uint64) {
	b.watchMu.Lock()
	defer b.watchMu.Unlock()

	delete(b.watchers[origin], id)
	if len(b.watchers[origin]) == 0 {
		delete(b.watchers, origin)
	}
}

func (b *MemoryBackend) removeOrigin(origin string) {
	b.watchMu.Lock()
	defer b.watchMu.Unlock()

	delete(b.watchers, origin)
}

// memoryStore is one handle on a MemoryBackend.
type memoryStore struct {
	backend *MemoryBackend
	origin  string

	mu     sync.RWMutex
	closed bool
}

func (s *memoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := s.check(ctx); err != nil {
		return "", false, err
	}

	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	value, ok := s.backend.data[key]

	return value, ok, nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	if err := s.check(ctx); err != nil {
		return err
	}

	s.backend.writeMu.Lock()
	defer s.backend.writeMu.Unlock()

	s.backend.mu.Lock()
	s.backend.data[key] = value
	s.backend.mu.Unlock()

	s.backend.publish(s.origin, repository.Change{Key: key, Value: value})

	return nil
}

func (s *memoryStore) Delete(ctx context.Context, keys ...string) error {
	if err := s.check(ctx); err != nil {
		return err
	}

	s.backend.writeMu.Lock()
	defer s.backend.writeMu.Unlock()

	var removed []string
	s.backend.mu.Lock()
	for _, key := range keys {
		if _, ok := s.backend.data[key]; ok {
			delete(s.backend.data, key)
			removed = append(removed, key)
		}
	}
	s.backend.mu.Unlock()

	for _, key := range removed {
		s.backend.publish(s.origin, repository.Change{Key: key, Deleted: true})
	}

	return nil
}

func (s *memoryStore) Watch(fn repository.ChangeHandler) (func(), error) {
	if err := s.check(context.Background()); err != nil {
		return nil, err
	}

	id := s.backend.addWatcher(s.origin, fn)
	var once sync.Once

	return func() {
		once.Do(func() { s.backend.removeWatcher(s.origin, id) })
	}, nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.backend.removeOrigin(s.origin)

	return nil
}

func (s *memoryStore) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return repository.ErrStoreClosed
	}

	return nil
}
