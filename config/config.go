// Package config loads wayfinder settings.
//
// Sources are applied in order, later ones winning: built-in defaults, an
// optional YAML file, a .env file (variables already set in the environment
// are not overwritten by it), and WAYFINDER_* environment variables. The
// result is validated before it is returned.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a setting is out of range or unknown.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Directory backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the complete application configuration.
type Config struct {
	Directory DirectoryConfig `yaml:"directory"`
	Server    ServerConfig    `yaml:"server"`
	Route     RouteConfig     `yaml:"route"`
	Log       LogConfig       `yaml:"log"`
}

// DirectoryConfig selects where locations come from.
type DirectoryConfig struct {
	// Backend is BackendMemory or BackendSQLite.
	Backend string `yaml:"backend"`
	// Dataset is a preset name or a YAML building file, used by the memory
	// backend and by the seed command.
	Dataset      string        `yaml:"dataset"`
	DBPath       string        `yaml:"db_path"`
	CacheSize    int           `yaml:"cache_size"`
	QueryTimeout time.Duration `yaml:"query_timeout"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type RouteConfig struct {
	// Locale picks the description language: "en" or "de".
	Locale string `yaml:"locale"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Directory: DirectoryConfig{
			Backend:      BackendMemory,
			Dataset:      "hub",
			DBPath:       "wayfinder.db",
			CacheSize:    256,
			QueryTimeout: 2 * time.Second,
		},
		Server: ServerConfig{Addr: ":8080"},
		Route:  RouteConfig{Locale: "en"},
		Log:    LogConfig{Level: "info", Format: FormatConsole},
	}
}

// Load builds the configuration from path (skipped when empty) and the
// environment. envFiles are loaded with godotenv; with none given, a .env
// in the working directory is used if present.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if err := decode(f, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("WAYFINDER_BACKEND", &c.Directory.Backend)
	str("WAYFINDER_DATASET", &c.Directory.Dataset)
	str("WAYFINDER_DB_PATH", &c.Directory.DBPath)
	str("WAYFINDER_ADDR", &c.Server.Addr)
	str("WAYFINDER_LOCALE", &c.Route.Locale)
	str("WAYFINDER_LOG_LEVEL", &c.Log.Level)
	str("WAYFINDER_LOG_FORMAT", &c.Log.Format)

	if v, ok := lookup("WAYFINDER_CACHE_SIZE"); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: WAYFINDER_CACHE_SIZE=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Directory.CacheSize = n
	}
	if v, ok := lookup("WAYFINDER_QUERY_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: WAYFINDER_QUERY_TIMEOUT=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Directory.QueryTimeout = d
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Directory.Backend {
	case BackendMemory:
		if c.Directory.Dataset == "" {
			return fmt.Errorf("%w: directory.dataset is required for the memory backend", ErrInvalidConfig)
		}
	case BackendSQLite:
		if c.Directory.DBPath == "" {
			return fmt.Errorf("%w: directory.db_path is required for the sqlite backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: directory.backend %q (want %s or %s)",
			ErrInvalidConfig, c.Directory.Backend, BackendMemory, BackendSQLite)
	}
	if c.Directory.CacheSize <= 0 {
		return fmt.Errorf("%w: directory.cache_size must be positive, got %d", ErrInvalidConfig, c.Directory.CacheSize)
	}
	if c.Directory.QueryTimeout <= 0 {
		return fmt.Errorf("%w: directory.query_timeout must be positive, got %s", ErrInvalidConfig, c.Directory.QueryTimeout)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	switch c.Route.Locale {
	case "en", "de":
	default:
		return fmt.Errorf("%w: route.locale %q (want en or de)", ErrInvalidConfig, c.Route.Locale)
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q (want %s or %s)", ErrInvalidConfig, c.Log.Format, FormatConsole, FormatJSON)
	}
	if _, err := zapLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}
