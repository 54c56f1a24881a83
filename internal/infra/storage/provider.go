package storage

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the KVStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewStore opens a KVStore handle on the configured backend
func NewStore(params StoreParams) (repository.KVStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	provider := config.StorageMemory
	namespace := ""
	if cfg != nil {
		namespace = cfg.Namespace
		if cfg.Provider != "" {
			provider = cfg.Provider
		}
	}

	var (
		store   repository.KVStore
		release func() error
	)

	switch provider {
	case config.StorageMemory:
		logger.Info("Using in-process storage")

		backend, err := NewMemoryBackend()
		if err != nil {
			return nil, err
		}
		store = backend.Open()
		release = func() error { return nil }

	case config.StorageRedis:
		if cfg.Redis == nil {
			return nil, errors.New("redis configuration is required for redis provider")
		}
		logger.Info("Using Redis storage",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("namespace", namespace),
		)

		backend, err := NewRedisBackend(params.Ctx, RedisOptions{
			Addr:      cfg.Redis.Addr,
			Username:  cfg.Redis.Username,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			Namespace: namespace,
			Channel:   cfg.Redis.Channel,
		}, logger)
		if err != nil {
			return nil, err
		}
		store = backend.Open()
		release = backend.Close

	default:
		return nil, errors.Errorf("unknown storage provider: %s", provider)
	}

	// Register lifecycle hook to close the store on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing storage")

			if err := store.Close(); err != nil {
				return err
			}

			return release()
		},
	})

	return store, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
