// Package sprites turns sprite images into terminal art by running an
// external image-to-text converter
package sprites

//go:generate mockgen -destination=mock/mock_renderer.go -package=spritesmock github.com/KirkDiggler/pokedex-tui/internal/sprites Renderer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/KirkDiggler/pokedex-tui/internal/cache"
	"github.com/KirkDiggler/pokedex-tui/internal/errors"
)

const (
	// DefaultBinary is the converter looked up on PATH
	DefaultBinary = "ascii-image-converter"
	// DefaultWidth is the art width in columns
	DefaultWidth = 40
	// DefaultCacheSize is how many rendered sprites are kept
	DefaultCacheSize = 64
	// DefaultTimeout bounds a single conversion
	DefaultTimeout = 10 * time.Second
)

// Renderer renders the image at url as text art width columns wide
type Renderer interface {
	Render(ctx context.Context, url string, width int) (string, error)
}

// Config configures the converter renderer
type Config struct {
	// Binary is the converter executable
	Binary string
	// Args are extra arguments placed after the generated ones
	Args []string
	// Color forces color on or off. Nil detects it from the terminal.
	Color     *bool
	CacheSize int
	Timeout   time.Duration
}

// Validate fills defaults and checks ranges
func (c *Config) Validate() error {
	if c.Binary == "" {
		c.Binary = DefaultBinary
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("CacheSize", c.CacheSize, vb)
	if c.Timeout < 0 {
		vb.InvalidField("Timeout", "cannot be negative")
	}

	return vb.Build()
}

type renderer struct {
	binary  string
	args    []string
	color   bool
	timeout time.Duration
	cache   *cache.LRU[string, string]
}

// New creates a renderer that shells out to cfg.Binary
func New(cfg *Config) (Renderer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	color := ColorSupported()
	if cfg.Color != nil {
		color = *cfg.Color
	}

	return &renderer{
		binary:  cfg.Binary,
		args:    append([]string(nil), cfg.Args...),
		color:   color,
		timeout: cfg.Timeout,
		cache:   cache.New[string, string](cfg.CacheSize),
	}, nil
}

func (r *renderer) Render(ctx context.Context, url string, width int) (string, error) {
	if url == "" {
		return "", errors.InvalidArgument("sprite url is required")
	}
	if width <= 0 {
		width = DefaultWidth
	}

	key := cacheKey(url, width, r.color)
	if art, ok := r.cache.Get(key); ok {
		return art, nil
	}

	args := []string{url, "--width", strconv.Itoa(width)}
	if r.color {
		args = append(args, "--color")
	}
	args = append(args, r.args...)

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", errors.WrapWithCode(ctxErr, errors.CodeCanceled, "sprite render canceled")
	}
	if err != nil {
		slog.DebugContext(ctx, "sprite converter failed",
			"binary", r.binary,
			"url", url,
			"stderr", strings.TrimSpace(stderr.String()),
			"error", err)
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "sprite converter failed").
			WithMeta("binary", r.binary)
	}

	art := strings.TrimRight(stdout.String(), "\n")
	r.cache.Set(key, art)
	return art, nil
}

func cacheKey(url string, width int, color bool) string {
	return fmt.Sprintf("%s|%d|%t", url, width, color)
}

// ColorSupported reports whether stdout can show ANSI color: it is a
// terminal, NO_COLOR is unset and TERM is not dumb
func ColorSupported() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
