package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"provider": "memory",
			"redis": map[string]any{
				"addr": "",
			},
		},
		"services": map[string]any{
			"orquestador": "",
		},
		"http": map[string]any{
			"maxRequestBodySize": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_PROVIDER", want: "storage.provider"},
		{envKey: "STORAGE_REDIS_ADDR", want: "storage.redis.addr"},
		{envKey: "SERVICES_ORQUESTADOR", want: "services.orquestador"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
services:
  usuarios: http://users.local
  timeout: 3s
storage:
  provider: memory
  redis:
    addr: localhost:6379
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("STORAGE_PROVIDER", "redis")
	t.Setenv("STORAGE_REDIS_ADDR", "cache:6380")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "http://users.local", cfg.Services.Usuarios)
	assert.Equal(t, 3*time.Second, cfg.Services.Timeout)
	assert.Equal(t, "redis", cfg.Storage.Provider)
	assert.Equal(t, "cache:6380", cfg.Storage.Redis.Addr)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in any search path")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultServiceTimeout, cfg.Services.Timeout)
	assert.Equal(t, StorageMemory, cfg.Storage.Provider)

	cfg = &Config{Storage: &StorageConfig{Provider: " Redis "}}
	applyDefaults(cfg)
	assert.Equal(t, StorageRedis, cfg.Storage.Provider)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:   "absolute service URLs",
			mutate: func(cfg *Config) { cfg.Services.Usuarios = "https://usuarios.example.com/api" },
		},
		{
			name:    "relative service URL",
			mutate:  func(cfg *Config) { cfg.Services.Recetas = "/recetas" },
			wantErr: "services.recetas",
		},
		{
			name:    "redis without address",
			mutate:  func(cfg *Config) { cfg.Storage.Provider = StorageRedis },
			wantErr: "storage.redis.addr",
		},
		{
			name: "redis with address",
			mutate: func(cfg *Config) {
				cfg.Storage.Provider = StorageRedis
				cfg.Storage.Redis = &RedisConfig{Addr: "localhost:6379"}
			},
		},
		{
			name:    "unknown provider",
			mutate:  func(cfg *Config) { cfg.Storage.Provider = "sqlite" },
			wantErr: "unknown provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
