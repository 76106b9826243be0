// Package config loads shortpath settings.
//
// Settings come from three layers, later ones winning:
//
//  1. Built-in defaults ([Default]).
//  2. A TOML file, by default $XDG_CONFIG_HOME/shortpath/config.toml.
//  3. SHORTPATH_* environment variables.
//
// Command-line flags are applied on top by the CLI. A missing file at the
// default location is not an error; a missing file named explicitly is.
//
// Example file:
//
//	[log]
//	level = "debug"
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//	redis_addr = "localhost:6379"
//
//	[engine]
//	parallel_threshold = 4096
//
//	[server]
//	addr = ":8080"
//	max_vertices = 5000
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	sperrors "github.com/matzehuels/shortpath/pkg/errors"
	"github.com/matzehuels/shortpath/pkg/graph"
)

// AppName names the configuration and cache directories.
const AppName = "shortpath"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config aggregates application configuration values.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Cache  CacheConfig  `toml:"cache"`
	Engine EngineConfig `toml:"engine"`
	Server ServerConfig `toml:"server"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// CacheConfig selects and tunes the result cache.
type CacheConfig struct {
	Backend     string        `toml:"backend"`
	Dir         string        `toml:"dir"`
	TTL         time.Duration `toml:"ttl"`
	RedisAddr   string        `toml:"redis_addr"`
	RedisDB     int           `toml:"redis_db"`
	RedisPrefix string        `toml:"redis_prefix"`
}

// EngineConfig tunes the shortest path engine.
type EngineConfig struct {
	// ParallelThreshold is the vertex count from which the selection scan
	// is split across goroutines. Zero disables the parallel scan.
	ParallelThreshold int `toml:"parallel_threshold"`
}

// ServerConfig governs the HTTP server.
type ServerConfig struct {
	Addr            string        `toml:"addr"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
	MaxBodyBytes    int64         `toml:"max_body_bytes"`
	MaxVertices     int           `toml:"max_vertices"`
}

const (
	defaultLogLevel        = "info"
	defaultCacheTTL        = 7 * 24 * time.Hour
	defaultRedisAddr       = "localhost:6379"
	defaultRedisPrefix     = "shortpath:"
	defaultServerAddr      = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxBodyBytes    = 1 << 20
	defaultMaxVertices     = 50 * graph.SoftMaxVertices
)

// Default returns the built-in configuration. The cache directory is left
// empty and resolved by [CacheDir] when needed.
func Default() Config {
	return Config{
		Log: LogConfig{Level: defaultLogLevel},
		Cache: CacheConfig{
			Backend:     BackendFile,
			TTL:         defaultCacheTTL,
			RedisAddr:   defaultRedisAddr,
			RedisPrefix: defaultRedisPrefix,
		},
		Server: ServerConfig{
			Addr:            defaultServerAddr,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			MaxBodyBytes:    defaultMaxBodyBytes,
			MaxVertices:     defaultMaxVertices,
		},
	}
}

// Load builds the configuration from defaults, the file at path and the
// environment. An empty path means [DefaultPath], which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.readFile(path, explicit); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string, required bool) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return sperrors.Wrap(sperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return sperrors.New(sperrors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Log.Level = valueOrDefault("SHORTPATH_LOG_LEVEL", c.Log.Level)
	c.Cache.Backend = valueOrDefault("SHORTPATH_CACHE_BACKEND", c.Cache.Backend)
	c.Cache.Dir = valueOrDefault("SHORTPATH_CACHE_DIR", c.Cache.Dir)
	c.Cache.RedisAddr = valueOrDefault("SHORTPATH_REDIS_ADDR", c.Cache.RedisAddr)
	c.Server.Addr = valueOrDefault("SHORTPATH_SERVER_ADDR", c.Server.Addr)

	var err error
	if c.Cache.TTL, err = parseDuration("SHORTPATH_CACHE_TTL", c.Cache.TTL); err != nil {
		return err
	}
	if c.Cache.RedisDB, err = parseInt("SHORTPATH_REDIS_DB", c.Cache.RedisDB); err != nil {
		return err
	}
	if c.Engine.ParallelThreshold, err = parseInt("SHORTPATH_PARALLEL_THRESHOLD", c.Engine.ParallelThreshold); err != nil {
		return err
	}
	if c.Server.MaxVertices, err = parseInt("SHORTPATH_SERVER_MAX_VERTICES", c.Server.MaxVertices); err != nil {
		return err
	}
	return nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return sperrors.Wrap(sperrors.ErrCodeInvalidConfig, err, "log level")
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return sperrors.New(sperrors.ErrCodeInvalidConfig, "unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return sperrors.New(sperrors.ErrCodeInvalidConfig, "cache ttl cannot be negative")
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return sperrors.New(sperrors.ErrCodeInvalidConfig, "redis cache backend needs redis_addr")
	}
	if c.Engine.ParallelThreshold < 0 {
		return sperrors.New(sperrors.ErrCodeInvalidConfig, "parallel_threshold cannot be negative")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return sperrors.New(sperrors.ErrCodeInvalidConfig, "max_body_bytes must be positive")
	}
	if c.Server.MaxVertices <= 0 {
		return sperrors.New(sperrors.ErrCodeInvalidConfig, "max_vertices must be positive")
	}
	return nil
}

// LogLevel returns the parsed log level. Call after [Config.Validate].
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/shortpath/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the file cache directory: the configured one, or the
// XDG cache directory (~/.cache/shortpath/).
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, sperrors.Wrap(sperrors.ErrCodeInvalidConfig, err, "invalid %s value %q", key, v)
	}
	return n, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, sperrors.Wrap(sperrors.ErrCodeInvalidConfig, err, "invalid %s value %q", key, v)
	}
	return d, nil
}
