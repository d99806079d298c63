// ABOUTME: Configuration loader for the storefront CLI and TUI
// ABOUTME: Loads an optional .env file, then environment variables with defaults

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/shopdemo/storefront/internal/session"
)

// DefaultAPIBase is used when neither STOREFRONT_API_BASE nor STOREFRONT_API_HOST is set
const DefaultAPIBase = "http://localhost:8080/api"

// Session backends
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	// Backend
	APIBase  string        `env:"STOREFRONT_API_BASE"`
	APIHost  string        `env:"STOREFRONT_API_HOST"`
	Timeout  time.Duration `env:"STOREFRONT_TIMEOUT, default=30s"`
	AllProxy string        `env:"STOREFRONT_ALL_PROXY"` // ssh+socks5://user@host:port?private-key=path

	// Session persistence
	ConfigDir      string `env:"STOREFRONT_CONFIG_DIR"`
	SessionBackend string `env:"STOREFRONT_SESSION_BACKEND, default=file"`
	Redis          RedisConfig

	// Logging
	LogLevel  string `env:"STOREFRONT_LOG_LEVEL, default=info"`
	LogFormat string `env:"STOREFRONT_LOG_FORMAT, default=text"`
}

type RedisConfig struct {
	Addr   string `env:"STOREFRONT_REDIS_ADDR, default=localhost:6379"`
	DB     int    `env:"STOREFRONT_REDIS_DB, default=0"`
	Prefix string `env:"STOREFRONT_REDIS_PREFIX, default=storefront:"`
}

// Load reads .env files (when present) and then the process environment.
// Variables already set in the environment win over .env values.
func Load(ctx context.Context, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
	}
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.ConfigDir == "" {
		cfg.ConfigDir = session.DefaultConfigDir()
	}
	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot
func (c *Config) Validate() error {
	switch c.SessionBackend {
	case BackendFile, BackendRedis:
	default:
		return fmt.Errorf("STOREFRONT_SESSION_BACKEND must be %q or %q, got %q", BackendFile, BackendRedis, c.SessionBackend)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("STOREFRONT_TIMEOUT must be positive, got %s", c.Timeout)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("STOREFRONT_REDIS_DB must not be negative, got %d", c.Redis.DB)
	}
	return nil
}

// APIBaseURL resolves the backend address: explicit base, then https://host,
// then the local default
func (c *Config) APIBaseURL() string {
	if c.APIBase != "" {
		return strings.TrimRight(c.APIBase, "/")
	}
	if c.APIHost != "" {
		return "https://" + strings.TrimRight(c.APIHost, "/")
	}
	return DefaultAPIBase
}

// RedisSession returns the persister settings for the redis backend
func (c *Config) RedisSession() session.RedisConfig {
	return session.RedisConfig{
		Addr:    c.Redis.Addr,
		DB:      c.Redis.DB,
		Prefix:  c.Redis.Prefix,
		Timeout: c.Timeout,
	}
}
