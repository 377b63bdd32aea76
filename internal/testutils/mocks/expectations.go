// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"strconv"

	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokedex-tui/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
)

// ExpectPokemonFetch sets up expectations for fetching a pokemon by id and its
// species. A nil species makes the species fetch fail with speciesErr.
func ExpectPokemonFetch(
	mockClient *pokeapimock.MockClient,
	p *pokemon.Pokemon, species *pokemon.Species, speciesErr error,
) {
	mockClient.EXPECT().
		GetPokemon(gomock.Any(), strconv.Itoa(p.ID)).
		Return(p, nil).
		AnyTimes()

	mockClient.EXPECT().
		GetSpecies(gomock.Any(), p.SpeciesName).
		Return(species, speciesErr).
		AnyTimes()
}

// ExpectAbilityDescriptions returns a one-line description for every ability name
func ExpectAbilityDescriptions(mockClient *pokeapimock.MockClient) {
	mockClient.EXPECT().
		GetAbility(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (*pokemon.Ability, error) {
			return &pokemon.Ability{Name: name, ShortEffect: "Effect of " + name + "."}, nil
		}).
		AnyTimes()
}

// ExpectMoveLookups returns metadata from moves, keyed by move name
func ExpectMoveLookups(mockClient *pokeapimock.MockClient, moves map[string]*pokemon.Move) {
	for name, move := range moves {
		mockClient.EXPECT().
			GetMove(gomock.Any(), name).
			Return(move, nil).
			AnyTimes()
	}
}
