package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultServiceTimeout     = 15 * time.Second
	defaultPort               = 5173
)

// Storage providers.
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Services holds the base URLs of the backend collaborators
	Services *ServicesConfig `json:"services" yaml:"services"`

	// Storage selects where session and cart state is persisted
	Storage *StorageConfig `json:"storage" yaml:"storage"`
}

// ServicesConfig defines the backend services the storefront delegates to
type ServicesConfig struct {
	Usuarios    string `json:"usuarios" yaml:"usuarios"`
	Productos   string `json:"productos" yaml:"productos"`
	Recetas     string `json:"recetas" yaml:"recetas"`
	Analitica   string `json:"analitica" yaml:"analitica"`
	Orquestador string `json:"orquestador" yaml:"orquestador"`

	// Timeout applied to every backend request
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// urls lists every configured base URL by service name.
func (s *ServicesConfig) urls() map[string]string {
	return map[string]string{
		"usuarios":    s.Usuarios,
		"productos":   s.Productos,
		"recetas":     s.Recetas,
		"analitica":   s.Analitica,
		"orquestador": s.Orquestador,
	}
}

// StorageConfig defines the persistent key-value store
type StorageConfig struct {
	// Provider is "memory" (process-local) or "redis" (shared between processes)
	Provider string `json:"provider" yaml:"provider"`

	// Namespace is prepended to every key, so several storefronts can share one Redis
	Namespace string `json:"namespace" yaml:"namespace"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines the Redis connection used by the redis storage provider
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	// Channel carries change notifications between storefront processes
	Channel string `json:"channel" yaml:"channel"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv reads <currEnv>.yaml from the first search path holding it,
// then lays environment variables over the YAML keys.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	configFile, err := locateConfigFile(currEnv, configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// STORAGE_REDIS_ADDR -> storage.redis.addr, HTTP_MAXREQUESTBODYSIZE -> http.maxRequestBodySize
	existing := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, existing), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func locateConfigFile(currEnv string, configPath []string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

// decoderConfig matches keys case-insensitively so env overrides land on camelCase fields.
func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
		MatchName: strings.EqualFold,
	}
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills the values the storefront cannot run without.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}

	if cfg.Services == nil {
		cfg.Services = &ServicesConfig{}
	}
	if cfg.Services.Timeout <= 0 {
		cfg.Services.Timeout = defaultServiceTimeout
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	cfg.Storage.Provider = strings.ToLower(strings.TrimSpace(cfg.Storage.Provider))
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = StorageMemory
	}
}

// Validate rejects configurations the storefront would only fail on later.
// Defaults are expected to have been applied.
func (c *Config) Validate() error {
	for name, raw := range c.Services.urls() {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.Errorf("services.%s: %q is not an absolute http(s) URL", name, raw)
		}
	}

	switch c.Storage.Provider {
	case StorageMemory:
	case StorageRedis:
		if c.Storage.Redis == nil || c.Storage.Redis.Addr == "" {
			return errors.New("storage.redis.addr is required for the redis provider")
		}
	default:
		return errors.Errorf("storage.provider: unknown provider %q", c.Storage.Provider)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		matched, next, ok := findExistingSegment(current, segment)
		if !ok {
			matched, next = segment, nil
		}
		canonical = append(canonical, matched)
		current = next
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

// normalizeToken keeps only lower-cased letters and digits.
func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}
