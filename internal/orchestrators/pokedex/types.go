package pokedex

import (
	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/search"
)

// GetPokemonInput defines the request for a pokemon detail view
type GetPokemonInput struct {
	IDOrName string
	// Generation overrides the session generation when set
	Generation *int
}

// GetPokemonOutput defines the response for a pokemon detail view
type GetPokemonOutput struct {
	Pokemon *pokemon.DisplayPokemon
}

// GetMovesInput defines the request for a pokemon's learnable moves
type GetMovesInput struct {
	IDOrName string
	// Generation overrides the session generation when set
	Generation *int
}

// GetMovesOutput defines the response for a pokemon's learnable moves
type GetMovesOutput struct {
	Moves []pokemon.MoveRecord `json:"moves"`
	// Generation the moves were resolved for
	Generation int `json:"generation"`
}

// GetEvolutionChainInput defines the request for a pokemon's evolution chain
type GetEvolutionChainInput struct {
	IDOrName string
}

// GetEvolutionChainOutput defines the response for a pokemon's evolution chain
type GetEvolutionChainOutput struct {
	ChainID int                      `json:"chain_id"`
	Stages  []pokemon.EvolutionStage `json:"stages"`
}

// ListPokemonInput defines the request for listing every pokemon
type ListPokemonInput struct{}

// ListPokemonOutput defines the response for listing every pokemon
type ListPokemonOutput struct {
	Pokemon []pokemon.Ref
}

// SearchPokemonInput defines the request for a name search
type SearchPokemonInput struct {
	Query string
	Limit int // <= 0 means no limit
}

// SearchPokemonOutput defines the response for a name search
type SearchPokemonOutput struct {
	Results []search.Result
}

// SetGenerationInput defines the request for changing the viewed generation
type SetGenerationInput struct {
	Generation int
}

// SetGenerationOutput defines the response for changing the viewed generation
type SetGenerationOutput struct {
	Generation int
}
