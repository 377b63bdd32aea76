package pokeapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/pokedex-tui/internal/cache"
	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/errors"
	"github.com/KirkDiggler/pokedex-tui/internal/repositories/responses"
)

const listKey = "all"

// Capacities bounds the in-process cache for each resource. Zero disables
// caching for that resource.
type Capacities struct {
	Pokemon   int
	Species   int
	Moves     int
	Abilities int
	Evolution int
}

// DefaultCapacities sizes the caches for a browsing session
func DefaultCapacities() Capacities {
	return Capacities{
		Pokemon:   200,
		Species:   200,
		Moves:     1000,
		Abilities: 400,
		Evolution: 100,
	}
}

// CachedConfig configures the caching client
type CachedConfig struct {
	// Client fetches on a miss (required)
	Client Client
	// Store persists documents between runs (optional)
	Store responses.Repository
	// Capacities of the in-process caches
	Capacities Capacities
	// Metrics is optional
	Metrics *Metrics
}

// Validate ensures all required dependencies are provided
func (cfg *CachedConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	errors.ValidateNonNegative("Capacities.Pokemon", cfg.Capacities.Pokemon, vb)
	errors.ValidateNonNegative("Capacities.Species", cfg.Capacities.Species, vb)
	errors.ValidateNonNegative("Capacities.Moves", cfg.Capacities.Moves, vb)
	errors.ValidateNonNegative("Capacities.Abilities", cfg.Capacities.Abilities, vb)
	errors.ValidateNonNegative("Capacities.Evolution", cfg.Capacities.Evolution, vb)

	return vb.Build()
}

// cachedClient checks memory, then the store, then upstream. Returned
// records are shared between callers and must not be modified.
type cachedClient struct {
	upstream Client
	store    responses.Repository
	metrics  *Metrics
	group    singleflight.Group

	pokemon   *cache.LRU[string, *pokemon.Pokemon]
	species   *cache.LRU[string, *pokemon.Species]
	moves     *cache.LRU[string, *pokemon.Move]
	abilities *cache.LRU[string, *pokemon.Ability]
	evolution *cache.LRU[string, *pokemon.EvolutionChain]
	list      *cache.LRU[string, *[]pokemon.Ref]
}

// NewCached wraps cfg.Client with caching
func NewCached(cfg *CachedConfig) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cachedClient{
		upstream:  cfg.Client,
		store:     cfg.Store,
		metrics:   cfg.Metrics,
		pokemon:   cache.New[string, *pokemon.Pokemon](cfg.Capacities.Pokemon),
		species:   cache.New[string, *pokemon.Species](cfg.Capacities.Species),
		moves:     cache.New[string, *pokemon.Move](cfg.Capacities.Moves),
		abilities: cache.New[string, *pokemon.Ability](cfg.Capacities.Abilities),
		evolution: cache.New[string, *pokemon.EvolutionChain](cfg.Capacities.Evolution),
		list:      cache.New[string, *[]pokemon.Ref](1),
	}, nil
}

// Ensure cachedClient implements Client
var _ Client = (*cachedClient)(nil)

func (c *cachedClient) GetPokemon(ctx context.Context, idOrName string) (*pokemon.Pokemon, error) {
	key := normalizeKey(idOrName)
	return fetch(ctx, c, c.pokemon, ResourcePokemon, key, func(ctx context.Context) (*pokemon.Pokemon, error) {
		return c.upstream.GetPokemon(ctx, key)
	})
}

func (c *cachedClient) GetSpecies(ctx context.Context, idOrName string) (*pokemon.Species, error) {
	key := normalizeKey(idOrName)
	return fetch(ctx, c, c.species, ResourceSpecies, key, func(ctx context.Context) (*pokemon.Species, error) {
		return c.upstream.GetSpecies(ctx, key)
	})
}

func (c *cachedClient) GetMove(ctx context.Context, name string) (*pokemon.Move, error) {
	key := normalizeKey(name)
	return fetch(ctx, c, c.moves, ResourceMove, key, func(ctx context.Context) (*pokemon.Move, error) {
		return c.upstream.GetMove(ctx, key)
	})
}

func (c *cachedClient) GetAbility(ctx context.Context, name string) (*pokemon.Ability, error) {
	key := normalizeKey(name)
	return fetch(ctx, c, c.abilities, ResourceAbility, key, func(ctx context.Context) (*pokemon.Ability, error) {
		return c.upstream.GetAbility(ctx, key)
	})
}

func (c *cachedClient) GetEvolutionChain(ctx context.Context, id int) (*pokemon.EvolutionChain, error) {
	return fetch(ctx, c, c.evolution, ResourceEvolutionChain, strconv.Itoa(id), func(ctx context.Context) (*pokemon.EvolutionChain, error) {
		return c.upstream.GetEvolutionChain(ctx, id)
	})
}

func (c *cachedClient) ListPokemon(ctx context.Context) ([]pokemon.Ref, error) {
	refs, err := fetch(ctx, c, c.list, ResourceSpecies, listKey, func(ctx context.Context) (*[]pokemon.Ref, error) {
		refs, err := c.upstream.ListPokemon(ctx)
		if err != nil {
			return nil, err
		}
		return &refs, nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]pokemon.Ref, len(*refs))
	copy(out, *refs)
	return out, nil
}

// fetch resolves resource/key through memory, the store and upstream.
// Concurrent misses for the same key share one load.
func fetch[T any](
	ctx context.Context,
	c *cachedClient,
	lru *cache.LRU[string, *T],
	resource, key string,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	if v, ok := lru.Get(key); ok {
		c.metrics.lookup(resource, layerMemory, true)
		return v, nil
	}
	c.metrics.lookup(resource, layerMemory, false)

	// The shared load must outlive any one caller, so it runs detached and
	// each caller waits on its own context.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(resource+":"+key, func() (any, error) {
		// Another caller may have filled the cache while we waited
		if v, ok := lru.Get(key); ok {
			return v, nil
		}

		if v, ok := loadStored[T](loadCtx, c, resource, key); ok {
			lru.Set(key, v)
			return v, nil
		}

		v, err := load(loadCtx)
		if err != nil {
			return nil, err
		}

		c.persist(loadCtx, resource, key, v)
		lru.Set(key, v)
		return v, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, contextError(ctx, ctx.Err(), resource, key)
	case res = <-ch:
	}
	if res.Shared {
		c.metrics.sharedFetch(resource)
	}
	if res.Err != nil {
		return nil, res.Err
	}

	v, ok := res.Val.(*T)
	if !ok {
		return nil, errors.Internalf("unexpected type %T cached for %s %q", res.Val, resource, key)
	}
	return v, nil
}

// loadStored reads a document from the store. Store failures are logged
// and treated as a miss so a broken store never blocks browsing.
func loadStored[T any](ctx context.Context, c *cachedClient, resource, key string) (*T, bool) {
	if c.store == nil {
		return nil, false
	}

	out, err := c.store.Get(ctx, responses.GetInput{Resource: resource, Key: key})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.WarnContext(ctx, "document store read failed",
				"resource", resource,
				"key", key,
				"error", err)
		}
		c.metrics.lookup(resource, layerStore, false)
		return nil, false
	}

	var v T
	if err := json.Unmarshal(out.Body, &v); err != nil {
		slog.WarnContext(ctx, "discarding unreadable stored document",
			"resource", resource,
			"key", key,
			"error", err)
		c.metrics.lookup(resource, layerStore, false)
		return nil, false
	}

	c.metrics.lookup(resource, layerStore, true)
	return &v, true
}

func (c *cachedClient) persist(ctx context.Context, resource, key string, v any) {
	if c.store == nil {
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		slog.WarnContext(ctx, "failed to encode document for store",
			"resource", resource,
			"key", key,
			"error", err)
		return
	}

	if _, err := c.store.Put(ctx, responses.PutInput{Resource: resource, Key: key, Body: body}); err != nil {
		slog.WarnContext(ctx, "document store write failed",
			"resource", resource,
			"key", key,
			"error", err)
	}
}
