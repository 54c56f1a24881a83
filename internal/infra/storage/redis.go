package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultChannel = "storage:changes"

// RedisOptions configures a RedisBackend.
type RedisOptions struct {
	Addr     string
	Username string
	Password string
	DB       int

	// Namespace prefixes every key.
	Namespace string

	// Channel carries change notifications; derived from Namespace when empty.
	Channel string
}

// changeMessage is the wire form of a change on the notification channel.
type changeMessage struct {
	Origin  string `json:"origin"`
	Key     string `json:"key"`
	Value   string `json:"value,omitempty"`
	Deleted bool   `json:"deleted,omitempty"`
}

// RedisBackend shares state between processes through one Redis database.
type RedisBackend struct {
	client    *redis.Client
	namespace string
	channel   string
	logger    *slog.Logger
}

// NewRedisBackend connects to Redis and verifies the connection.
func NewRedisBackend(ctx context.Context, opts RedisOptions, logger *slog.Logger) (*RedisBackend, error) {
	if opts.Addr == "" {
		return nil, errors.New("redis address required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "redis ping")
	}

	channel := opts.Channel
	if channel == "" {
		channel = defaultChannel
		if opts.Namespace != "" {
			channel = opts.Namespace + ":" + defaultChannel
		}
	}

	return &RedisBackend{
		client:    client,
		namespace: opts.Namespace,
		channel:   channel,
		logger:    logger,
	}, nil
}

// Open returns a new handle with its own origin.
func (b *RedisBackend) Open() repository.KVStore {
	return &redisStore{
		backend: b,
		origin:  uuid.NewString(),
		subs:    make(map[*redis.PubSub]chan struct{}),
	}
}

// Close closes the underlying client.
func (b *RedisBackend) Close() error {
	return errors.Wrap(b.client.Close(), "close redis client")
}

func (b *RedisBackend) key(key string) string {
	if b.namespace == "" {
		return key
	}

	return b.namespace + ":" + key
}

func (b *RedisBackend) publish(ctx context.Context, msg changeMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "marshal change")
	}

	return errors.Wrap(b.client.Publish(ctx, b.channel, payload).Err(), "publish change")
}

// redisStore is one handle on a RedisBackend.
type redisStore struct {
	backend *RedisBackend
	origin  string

	mu     sync.Mutex
	closed bool
	subs   map[*redis.PubSub]chan struct{}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := s.check(); err != nil {
		return "", false, err
	}

	value, err := s.backend.client.Get(ctx, s.backend.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis get %s", key)
	}

	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.check(); err != nil {
		return err
	}

	if err := s.backend.client.Set(ctx, s.backend.key(key), value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return s.backend.publish(ctx, changeMessage{Origin: s.origin, Key: key, Value: value})
}

func (s *redisStore) Delete(ctx context.Context, keys ...string) error {
	if err := s.check(); err != nil {
		return err
	}

	for _, key := range keys {
		removed, err := s.backend.client.Del(ctx, s.backend.key(key)).Result()
		if err != nil {
			return errors.Wrapf(err, "redis del %s", key)
		}
		if removed == 0 {
			continue
		}
		if err := s.backend.publish(ctx, changeMessage{Origin: s.origin, Key: key, Deleted: true}); err != nil {
			return err
		}
	}

	return nil
}

func (s *redisStore) Watch(fn repository.ChangeHandler) (func(), error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	sub := s.backend.client.Subscribe(ctx, s.backend.channel)

	// Wait for the subscription to be confirmed so no later write is missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return nil, errors.Wrap(err, "redis subscribe")
	}

	done := make(chan struct{})
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = sub.Close()

		return nil, repository.ErrStoreClosed
	}
	s.subs[sub] = done
	s.mu.Unlock()

	go s.consume(sub, fn, done)

	var once sync.Once

	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, sub)
			s.mu.Unlock()

			_ = sub.Close()
			<-done
		})
	}, nil
}

func (s *redisStore) consume(sub *redis.PubSub, fn repository.ChangeHandler, done chan struct{}) {
	defer close(done)

	for msg := range sub.Channel() {
		var change changeMessage
		if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
			if s.backend.logger != nil {
				s.backend.logger.Warn("Dropping malformed change notification",
					slog.String("channel", msg.Channel),
					slog.Any("error", err),
				)
			}

			continue
		}
		if change.Origin == s.origin {
			continue
		}

		fn(repository.Change{Key: change.Key, Value: change.Value, Deleted: change.Deleted})
	}
}

func (s *redisStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return nil
	}
	s.closed = true
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	var firstErr error
	for sub, done := range subs {
		if err := sub.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrap(err, "close subscription")
		}
		<-done
	}

	return firstErr
}

func (s *redisStore) check() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return repository.ErrStoreClosed
	}

	return nil
}
