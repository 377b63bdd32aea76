// Package pokeapi is the client for the public PokéAPI catalog.
// Documents are parsed into strict entity records at this boundary.
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokedex-tui/internal/clients/pokeapi Client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/errors"
)

// DefaultBaseURL is the public v2 API
const DefaultBaseURL = "https://pokeapi.co/api/v2/"

const (
	defaultTimeout           = 30 * time.Second
	defaultRequestsPerSecond = 20
	defaultBurst             = 10
	defaultUserAgent         = "pokedex-tui"

	// maxBodyBytes bounds a single document; the largest pokemon documents are a few hundred KB
	maxBodyBytes = 16 << 20

	listLimit = 100000
)

// Client defines the catalog operations the viewer needs
type Client interface {
	// GetPokemon fetches a pokemon (or alternate form) by dex number or name
	GetPokemon(ctx context.Context, idOrName string) (*pokemon.Pokemon, error)

	// GetSpecies fetches species metadata by dex number or name
	GetSpecies(ctx context.Context, idOrName string) (*pokemon.Species, error)

	// GetMove fetches move metadata by name
	GetMove(ctx context.Context, name string) (*pokemon.Move, error)

	// GetAbility fetches ability metadata by name
	GetAbility(ctx context.Context, name string) (*pokemon.Ability, error)

	// GetEvolutionChain fetches an evolution chain by id
	GetEvolutionChain(ctx context.Context, id int) (*pokemon.EvolutionChain, error)

	// ListPokemon returns every species ordered by dex number
	ListPokemon(ctx context.Context) ([]pokemon.Ref, error)
}

// Config contains configuration options for the catalog client.
type Config struct {
	// BaseURL of the API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// RequestsPerSecond sustained request rate (optional, defaults to 20)
	RequestsPerSecond float64
	// Burst of requests allowed above the sustained rate (optional, defaults to 10)
	Burst int
	// UserAgent sent with every request
	UserAgent string
	// HTTPClient replaces the default client, HTTPTimeout is then ignored
	HTTPClient *http.Client
	// Metrics is optional
	Metrics *Metrics
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if u, err := url.Parse(cfg.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		vb.InvalidField("BaseURL", "must be an absolute http(s) url")
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}

	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	} else if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultTimeout
	}

	if cfg.RequestsPerSecond < 0 {
		vb.Field("RequestsPerSecond", "must not be negative")
	} else if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}

	errors.ValidateNonNegative("Burst", cfg.Burst, vb)
	if cfg.Burst == 0 {
		cfg.Burst = defaultBurst
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	return vb.Build()
}

type client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	metrics   *Metrics
}

// New creates a new catalog client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		http:      httpClient,
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		metrics:   cfg.Metrics,
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, idOrName string) (*pokemon.Pokemon, error) {
	key := normalizeKey(idOrName)
	data, err := c.get(ctx, ResourcePokemon, key, ResourcePokemon+"/"+url.PathEscape(key)+"/")
	if err != nil {
		return nil, err
	}
	return parsePokemon(key, data)
}

func (c *client) GetSpecies(ctx context.Context, idOrName string) (*pokemon.Species, error) {
	key := normalizeKey(idOrName)
	data, err := c.get(ctx, ResourceSpecies, key, ResourceSpecies+"/"+url.PathEscape(key)+"/")
	if err != nil {
		return nil, err
	}
	return parseSpecies(key, data)
}

func (c *client) GetMove(ctx context.Context, name string) (*pokemon.Move, error) {
	key := normalizeKey(name)
	data, err := c.get(ctx, ResourceMove, key, ResourceMove+"/"+url.PathEscape(key)+"/")
	if err != nil {
		return nil, err
	}
	return parseMove(key, data)
}

func (c *client) GetAbility(ctx context.Context, name string) (*pokemon.Ability, error) {
	key := normalizeKey(name)
	data, err := c.get(ctx, ResourceAbility, key, ResourceAbility+"/"+url.PathEscape(key)+"/")
	if err != nil {
		return nil, err
	}
	return parseAbility(key, data)
}

func (c *client) GetEvolutionChain(ctx context.Context, id int) (*pokemon.EvolutionChain, error) {
	key := strconv.Itoa(id)
	if id <= 0 {
		return nil, errors.InvalidArgumentf("evolution chain id must be positive, got %d", id)
	}
	data, err := c.get(ctx, ResourceEvolutionChain, key, ResourceEvolutionChain+"/"+key+"/")
	if err != nil {
		return nil, err
	}
	return parseEvolutionChain(key, data)
}

func (c *client) ListPokemon(ctx context.Context) ([]pokemon.Ref, error) {
	path := fmt.Sprintf("%s/?limit=%d", ResourceSpecies, listLimit)
	data, err := c.get(ctx, ResourceSpecies, "list", path)
	if err != nil {
		return nil, err
	}
	return parseList(data)
}

// get performs one rate limited GET and returns the body of a 200 response
func (c *client) get(ctx context.Context, resource, key, path string) ([]byte, error) {
	if key == "" {
		return nil, errors.InvalidArgumentf("%s key is required", resource)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, contextError(ctx, err, resource, key)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s %q", resource, key)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.request(resource, errors.CodeUnavailable.String(), time.Since(start).Seconds())
		return nil, contextError(ctx, err, resource, key)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		code := errors.CodeFromHTTPStatus(resp.StatusCode)
		c.metrics.request(resource, code.String(), time.Since(start).Seconds())
		slog.DebugContext(ctx, "catalog request failed",
			"resource", resource,
			"key", key,
			"status", resp.StatusCode)
		return nil, errors.UpstreamStatus(resp.StatusCode, resource, key)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.metrics.request(resource, errors.CodeUnavailable.String(), time.Since(start).Seconds())
		return nil, errors.Upstream(err, resource, key)
	}

	c.metrics.request(resource, errors.CodeOK.String(), time.Since(start).Seconds())
	slog.DebugContext(ctx, "catalog request",
		"resource", resource,
		"key", key,
		"bytes", len(data),
		"elapsed", time.Since(start))

	return data, nil
}

// contextError keeps cancellation distinguishable from an unreachable upstream
func contextError(ctx context.Context, err error, resource, key string) error {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		return errors.WrapWithCode(err, errors.CodeCanceled, "request canceled").
			WithMeta(errors.MetaResource, resource).
			WithMeta(errors.MetaKey, key)
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "request deadline exceeded").
			WithMeta(errors.MetaResource, resource).
			WithMeta(errors.MetaKey, key)
	default:
		return errors.Upstream(err, resource, key)
	}
}

func normalizeKey(idOrName string) string {
	return strings.ToLower(strings.TrimSpace(idOrName))
}
