package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/KirkDiggler/pokedex-tui/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-tui/internal/config"
	"github.com/KirkDiggler/pokedex-tui/internal/errors"
	"github.com/KirkDiggler/pokedex-tui/internal/generation"
	"github.com/KirkDiggler/pokedex-tui/internal/orchestrators/pokedex"
	redisclient "github.com/KirkDiggler/pokedex-tui/internal/redis"
	"github.com/KirkDiggler/pokedex-tui/internal/repositories/responses"
	"github.com/KirkDiggler/pokedex-tui/internal/sprites"
)

const redisDialTimeout = 2 * time.Second

// app is the wired dependency graph shared by every command
type app struct {
	cfg      *config.Config
	service  pokedex.Service
	sprites  sprites.Renderer
	registry *prometheus.Registry
	closers  []func() error
}

// newApp loads the config, applies flag overrides and wires the service.
// interactive sends logs to the log file so they do not corrupt the screen.
func newApp(ctx context.Context, opts *options, stderr io.Writer, interactive bool) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.generation != 0 {
		cfg.Generation = opts.generation
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}

	a := &app{cfg: cfg}

	closeLog, err := setupLogging(cfg.Log, stderr, interactive)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closeLog)

	session := generation.NewSession()
	if err := session.SetCurrent(cfg.Generation); err != nil {
		a.Close()
		return nil, err
	}

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := pokeapi.NewMetrics(a.registry)

	upstream, err := pokeapi.New(&pokeapi.Config{
		BaseURL:           cfg.API.BaseURL,
		HTTPTimeout:       cfg.API.Timeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Burst:             cfg.API.Burst,
		UserAgent:         cfg.API.UserAgent,
		Metrics:           metrics,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create catalog client")
	}

	store, closeStore := openStore(ctx, cfg.Store)
	if closeStore != nil {
		a.closers = append(a.closers, closeStore)
	}

	client, err := pokeapi.NewCached(&pokeapi.CachedConfig{
		Client: upstream,
		Store:  store,
		Capacities: pokeapi.Capacities{
			Pokemon:   cfg.Cache.Pokemon,
			Species:   cfg.Cache.Species,
			Moves:     cfg.Cache.Moves,
			Abilities: cfg.Cache.Abilities,
			Evolution: cfg.Cache.Evolution,
		},
		Metrics: metrics,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create catalog cache")
	}

	a.service, err = pokedex.NewOrchestrator(&pokedex.Config{
		Client:  client,
		Session: session,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create pokedex")
	}

	if cfg.Sprites.Enabled {
		a.sprites, err = sprites.New(&sprites.Config{
			Binary:    cfg.Sprites.Binary,
			Args:      cfg.Sprites.Args,
			Color:     cfg.SpriteColor(),
			CacheSize: cfg.Cache.Sprites,
		})
		if err != nil {
			a.Close()
			return nil, errors.Wrap(err, "failed to create sprite renderer")
		}
	}

	slog.DebugContext(ctx, "pokedex ready",
		"generation", session.Current(),
		"store", cfg.Store.Backend,
		"sprites", cfg.Sprites.Enabled)

	return a, nil
}

// Close releases the store and the log file, last opened first
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("failed to close resource", "error", err)
		}
	}
	a.closers = nil
}

// openStore opens the configured response store. The store only saves
// refetching, so a store that cannot be opened is logged and skipped.
func openStore(ctx context.Context, cfg config.StoreConfig) (responses.Repository, func() error) {
	switch cfg.Backend {
	case config.StoreRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			DialTimeout: redisDialTimeout,
		})
		if err != nil {
			slog.WarnContext(ctx, "response store disabled", "backend", cfg.Backend, "error", err)
			return nil, nil
		}
		if err := client.Ping(ctx).Err(); err != nil {
			slog.WarnContext(ctx, "response store unreachable", "backend", cfg.Backend, "addr", cfg.RedisAddr, "error", err)
			_ = client.Close()
			return nil, nil
		}
		repo, err := responses.NewRedis(&responses.RedisConfig{Client: client, TTL: cfg.TTL})
		if err != nil {
			slog.WarnContext(ctx, "response store disabled", "backend", cfg.Backend, "error", err)
			_ = client.Close()
			return nil, nil
		}
		return repo, client.Close

	case config.StoreBadger:
		db, err := responses.OpenBadger(cfg.BadgerPath)
		if err != nil {
			slog.WarnContext(ctx, "response store disabled", "backend", cfg.Backend, "path", cfg.BadgerPath, "error", err)
			return nil, nil
		}
		repo, err := responses.NewBadger(&responses.BadgerConfig{DB: db, TTL: cfg.TTL})
		if err != nil {
			slog.WarnContext(ctx, "response store disabled", "backend", cfg.Backend, "error", err)
			_ = db.Close()
			return nil, nil
		}
		return repo, db.Close

	default:
		return nil, nil
	}
}

// setupLogging installs the default slog logger. Interactive sessions log
// to the configured file, everything else logs to stderr.
func setupLogging(cfg config.LogConfig, stderr io.Writer, interactive bool) (func() error, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := stderr
	closeFn := func() error { return nil }

	if interactive {
		if cfg.File == "" {
			out = io.Discard
		} else {
			if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
				return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to create log dir for %s", cfg.File)
			}
			f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to open log file %s", cfg.File)
			}
			out = f
			closeFn = f.Close
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}
	slog.SetDefault(slog.New(handler))

	return closeFn, nil
}
