// Package pokedex implements the pokedex orchestrator: it fetches catalog
// records and resolves them for the generation being viewed
package pokedex

//go:generate mockgen -destination=mock/mock_service.go -package=pokedexmock github.com/KirkDiggler/pokedex-tui/internal/orchestrators/pokedex Service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokedex-tui/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/errors"
	"github.com/KirkDiggler/pokedex-tui/internal/generation"
	"github.com/KirkDiggler/pokedex-tui/internal/search"
)

// UnavailableDescription replaces an ability description that failed to load
const UnavailableDescription = "Description unavailable."

// Service defines the interface for pokedex operations
type Service interface {
	// Detail views
	GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error)
	GetMoves(ctx context.Context, input *GetMovesInput) (*GetMovesOutput, error)
	GetEvolutionChain(ctx context.Context, input *GetEvolutionChainInput) (*GetEvolutionChainOutput, error)

	// Browsing
	ListPokemon(ctx context.Context, input *ListPokemonInput) (*ListPokemonOutput, error)
	SearchPokemon(ctx context.Context, input *SearchPokemonInput) (*SearchPokemonOutput, error)

	// Generation selection
	SetGeneration(ctx context.Context, input *SetGenerationInput) (*SetGenerationOutput, error)
	Generation() int
}

// Config holds the dependencies for the pokedex orchestrator
type Config struct {
	Client  pokeapi.Client
	Session *generation.Session
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Session == nil {
		vb.RequiredField("Session")
	}

	return vb.Build()
}

type orchestrator struct {
	client  pokeapi.Client
	session *generation.Session

	indexMu sync.Mutex
	index   *search.Index
}

// NewOrchestrator creates a new pokedex orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:  cfg.Client,
		session: cfg.Session,
	}, nil
}

func (o *orchestrator) GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p, species, err := o.fetch(ctx, input.IDOrName, input.Generation)
	if err != nil {
		return nil, err
	}

	effective := o.effective(input.Generation, IntroducedIn(p, species))
	display := Transform(p, species, &effective)

	o.describeAbilities(ctx, display.Abilities)

	slog.DebugContext(ctx, "resolved pokemon",
		"pokemon", p.Name,
		"generation", effective,
		"types", display.Types)

	return &GetPokemonOutput{Pokemon: display}, nil
}

func (o *orchestrator) GetMoves(ctx context.Context, input *GetMovesInput) (*GetMovesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	p, species, err := o.fetch(ctx, input.IDOrName, input.Generation)
	if err != nil {
		return nil, err
	}

	// Resolved independently of the detail view, with the same floor
	effective := o.effective(input.Generation, IntroducedIn(p, species))
	records := ResolveMoves(p.Moves, effective)

	if err := enrichMoves(ctx, o.client, records); err != nil {
		return nil, errors.Wrapf(err, "failed to load moves for %s", p.Name)
	}

	slog.DebugContext(ctx, "resolved moves",
		"pokemon", p.Name,
		"generation", effective,
		"learnable", len(p.Moves),
		"resolved", len(records))

	return &GetMovesOutput{
		Moves:      records,
		Generation: effective,
	}, nil
}

func (o *orchestrator) GetEvolutionChain(ctx context.Context, input *GetEvolutionChainInput) (*GetEvolutionChainOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	key, err := validateKey(input.IDOrName)
	if err != nil {
		return nil, err
	}

	p, err := o.client.GetPokemon(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %s", key)
	}

	species, err := o.client.GetSpecies(ctx, p.SpeciesName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get species %s", p.SpeciesName)
	}
	if species.EvolutionChainID == 0 {
		return nil, errors.NotFoundf("%s has no evolution chain", p.SpeciesName)
	}

	chain, err := o.client.GetEvolutionChain(ctx, species.EvolutionChainID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get evolution chain %d", species.EvolutionChainID)
	}

	return &GetEvolutionChainOutput{
		ChainID: chain.ID,
		Stages:  FlattenChain(chain),
	}, nil
}

func (o *orchestrator) ListPokemon(ctx context.Context, _ *ListPokemonInput) (*ListPokemonOutput, error) {
	index, err := o.searchIndex(ctx)
	if err != nil {
		return nil, err
	}
	return &ListPokemonOutput{Pokemon: index.Refs()}, nil
}

func (o *orchestrator) SearchPokemon(ctx context.Context, input *SearchPokemonInput) (*SearchPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	index, err := o.searchIndex(ctx)
	if err != nil {
		return nil, err
	}

	return &SearchPokemonOutput{Results: index.Find(input.Query, input.Limit)}, nil
}

func (o *orchestrator) SetGeneration(_ context.Context, input *SetGenerationInput) (*SetGenerationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.session.SetCurrent(input.Generation); err != nil {
		return nil, err
	}
	return &SetGenerationOutput{Generation: o.session.Current()}, nil
}

func (o *orchestrator) Generation() int {
	return o.session.Current()
}

// fetch loads a pokemon and its species. A missing or failed species only
// costs the display its metadata, so that error is logged and dropped.
func (o *orchestrator) fetch(ctx context.Context, idOrName string, gen *int) (*pokemon.Pokemon, *pokemon.Species, error) {
	key, err := validateKey(idOrName)
	if err != nil {
		return nil, nil, err
	}
	if gen != nil && !generation.Valid(*gen) {
		return nil, nil, errors.InvalidGeneration(*gen, generation.Min, generation.Max)
	}

	p, err := o.client.GetPokemon(ctx, key)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to get pokemon %s", key)
	}

	species, err := o.client.GetSpecies(ctx, p.SpeciesName)
	if err != nil {
		slog.WarnContext(ctx, "species unavailable, using defaults",
			"pokemon", p.Name,
			"species", p.SpeciesName,
			"error", err)
		species = nil
	}

	return p, species, nil
}

// effective floors the requested (or session) generation at introducedIn
func (o *orchestrator) effective(requested *int, introducedIn int) int {
	if requested != nil {
		return generation.Effective(*requested, introducedIn)
	}
	return o.session.Effective(introducedIn)
}

// describeAbilities fills in descriptions concurrently. A failed lookup
// leaves a placeholder instead of failing the view.
func (o *orchestrator) describeAbilities(ctx context.Context, abilities []pokemon.DisplayAbility) {
	var eg errgroup.Group
	eg.SetLimit(maxConcurrentLookups)

	for i := range abilities {
		eg.Go(func() error {
			ability, err := o.client.GetAbility(ctx, abilities[i].Name)
			if err != nil || ability.ShortEffect == "" {
				if err != nil {
					slog.DebugContext(ctx, "ability description unavailable",
						"ability", abilities[i].Name,
						"error", err)
				}
				abilities[i].Description = UnavailableDescription
				return nil
			}
			abilities[i].Description = ability.ShortEffect
			return nil
		})
	}

	_ = eg.Wait()
}

// searchIndex builds the name index on first use. A failed load is not
// remembered so the next call retries.
func (o *orchestrator) searchIndex(ctx context.Context) (*search.Index, error) {
	o.indexMu.Lock()
	defer o.indexMu.Unlock()

	if o.index != nil {
		return o.index, nil
	}

	refs, err := o.client.ListPokemon(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pokemon")
	}

	o.index = search.NewIndex(refs)
	slog.DebugContext(ctx, "built search index", "entries", len(refs))
	return o.index, nil
}

func validateKey(idOrName string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(idOrName))
	key = strings.TrimPrefix(key, "#")
	if key == "" {
		return "", errors.InvalidArgument("pokemon id or name is required")
	}
	if id, err := strconv.Atoi(key); err == nil {
		if id <= 0 {
			return "", errors.InvalidArgumentf("pokemon id must be positive, got %d", id)
		}
		return strconv.Itoa(id), nil
	}
	return key, nil
}
