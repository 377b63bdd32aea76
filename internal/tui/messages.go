package tui

import (
	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-tui/internal/search"
)

// Every fetch result carries the request id it was issued under. Only the
// result of the latest request is applied.

type listLoadedMsg struct {
	id   uint64
	refs []pokemon.Ref
	err  error
}

type searchResultsMsg struct {
	id      uint64
	query   string
	results []search.Result
	err     error
}

type detailLoadedMsg struct {
	id      uint64
	pokemon *pokemon.DisplayPokemon
	sprite  string
	err     error
}

type movesLoadedMsg struct {
	id  uint64
	out *pokedex.GetMovesOutput
	err error
}

type evolutionLoadedMsg struct {
	id  uint64
	out *pokedex.GetEvolutionChainOutput
	err error
}
