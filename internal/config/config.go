// Package config loads the pokedex settings file
package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pokedex-tui/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-tui/internal/errors"
	"github.com/KirkDiggler/pokedex-tui/internal/generation"
	"github.com/KirkDiggler/pokedex-tui/internal/sprites"
)

const appName = "pokedex"

// Store backends
const (
	StoreNone   = "none"
	StoreRedis  = "redis"
	StoreBadger = "badger"
)

// Sprite color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the full settings file
type Config struct {
	// Generation is the generation the session starts in
	Generation int           `yaml:"generation"`
	API        APIConfig     `yaml:"api"`
	Cache      CacheConfig   `yaml:"cache"`
	Store      StoreConfig   `yaml:"store"`
	Sprites    SpritesConfig `yaml:"sprites"`
	Log        LogConfig     `yaml:"log"`
	Metrics    MetricsConfig `yaml:"metrics"`
}

// APIConfig configures the catalog client
type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	UserAgent         string        `yaml:"user_agent"`
}

// CacheConfig holds in-memory cache capacities. Zero disables a cache.
type CacheConfig struct {
	Pokemon   int `yaml:"pokemon"`
	Species   int `yaml:"species"`
	Moves     int `yaml:"moves"`
	Abilities int `yaml:"abilities"`
	Evolution int `yaml:"evolution"`
	Sprites   int `yaml:"sprites"`
}

// StoreConfig selects the persistent response store
type StoreConfig struct {
	Backend       string        `yaml:"backend"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	BadgerPath    string        `yaml:"badger_path"`
	TTL           time.Duration `yaml:"ttl"`
}

// SpritesConfig configures the sprite converter
type SpritesConfig struct {
	Enabled bool     `yaml:"enabled"`
	Binary  string   `yaml:"binary"`
	Args    []string `yaml:"args"`
	Width   int      `yaml:"width"`
	Color   string   `yaml:"color"`
}

// LogConfig configures the log file
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// MetricsConfig configures the prometheus endpoint. An empty address
// disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the settings used when no file is present
func Default() *Config {
	capacities := pokeapi.DefaultCapacities()
	return &Config{
		Generation: generation.Max,
		API: APIConfig{
			BaseURL:           pokeapi.DefaultBaseURL,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 20,
			Burst:             10,
			UserAgent:         appName,
		},
		Cache: CacheConfig{
			Pokemon:   capacities.Pokemon,
			Species:   capacities.Species,
			Moves:     capacities.Moves,
			Abilities: capacities.Abilities,
			Evolution: capacities.Evolution,
			Sprites:   sprites.DefaultCacheSize,
		},
		Store: StoreConfig{
			Backend:    StoreBadger,
			RedisAddr:  "localhost:6379",
			BadgerPath: filepath.Join(cacheDir(), appName, "responses"),
			TTL:        7 * 24 * time.Hour,
		},
		Sprites: SpritesConfig{
			Enabled: true,
			Binary:  sprites.DefaultBinary,
			Width:   sprites.DefaultWidth,
			Color:   ColorAuto,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   filepath.Join(stateDir(), appName, appName+".log"),
		},
	}
}

// DefaultPath is the settings file location under the user config dir
func DefaultPath() string {
	return filepath.Join(configDir(), appName, "config.yaml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("generation", c.Generation, generation.Min, generation.Max, vb)

	errors.ValidateRequired("api.base_url", c.API.BaseURL, vb)
	if c.API.Timeout < 0 {
		vb.InvalidField("api.timeout", "cannot be negative")
	}
	if c.API.RequestsPerSecond < 0 {
		vb.InvalidField("api.requests_per_second", "cannot be negative")
	}
	errors.ValidateNonNegative("api.burst", c.API.Burst, vb)

	errors.ValidateNonNegative("cache.pokemon", c.Cache.Pokemon, vb)
	errors.ValidateNonNegative("cache.species", c.Cache.Species, vb)
	errors.ValidateNonNegative("cache.moves", c.Cache.Moves, vb)
	errors.ValidateNonNegative("cache.abilities", c.Cache.Abilities, vb)
	errors.ValidateNonNegative("cache.evolution", c.Cache.Evolution, vb)
	errors.ValidateNonNegative("cache.sprites", c.Cache.Sprites, vb)

	errors.ValidateEnum("store.backend", c.Store.Backend, []string{StoreNone, StoreRedis, StoreBadger}, vb)
	if c.Store.Backend == StoreRedis {
		errors.ValidateRequired("store.redis_addr", c.Store.RedisAddr, vb)
	}
	if c.Store.TTL < 0 {
		vb.InvalidField("store.ttl", "cannot be negative")
	}

	if c.Sprites.Enabled {
		errors.ValidateRequired("sprites.binary", c.Sprites.Binary, vb)
		errors.ValidatePositive("sprites.width", c.Sprites.Width, vb)
	}
	errors.ValidateEnum("sprites.color", c.Sprites.Color, []string{ColorAuto, ColorAlways, ColorNever}, vb)

	if _, err := ParseLevel(c.Log.Level); err != nil {
		vb.InvalidField("log.level", err.Error())
	}
	errors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)

	return vb.Build()
}

// SpriteColor returns the forced color setting, nil for auto
func (c *Config) SpriteColor() *bool {
	var on bool
	switch c.Sprites.Color {
	case ColorAlways:
		on = true
	case ColorNever:
		on = false
	default:
		return nil
	}
	return &on
}

// ParseLevel maps a level name onto a slog level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", name)
	}
	return level, nil
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return os.TempDir()
}

func cacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir
	}
	return os.TempDir()
}

// stateDir follows XDG_STATE_HOME, which the standard library has no helper for
func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}
	return os.TempDir()
}
