package testutils

import (
	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/testutils/builders"
)

// Dex numbers of the fixture pokemon
const (
	BulbasaurID = 1
	ClefairyID  = 35
	GengarID    = 94
	MarillID    = 183
	RowletID    = 722
)

// Bulbasaur is a plain gen 1 pokemon with a hidden ability and a level-up move
func Bulbasaur() *pokemon.Pokemon {
	return builders.NewPokemonBuilder().
		WithID(BulbasaurID).
		WithName("bulbasaur").
		WithTypes("grass", "poison").
		WithAbility("overgrow").
		WithHiddenAbility("chlorophyll").
		WithStat("hp", 45, 0).
		WithStat("special-attack", 65, 1).
		WithLevelUpMove("tackle", "red-blue", 1).
		Build()
}

// Gengar has an ability override in generation 7
func Gengar() *pokemon.Pokemon {
	return builders.NewPokemonBuilder().
		WithID(GengarID).
		WithName("gengar").
		WithTypes("ghost", "poison").
		WithAbility("cursed-body").
		WithStat("special-attack", 130, 3).
		Build()
}

// Clefairy was pure normal type until fairy arrived in generation 6
func Clefairy() *pokemon.Pokemon {
	return builders.NewPokemonBuilder().
		WithID(ClefairyID).
		WithName("clefairy").
		WithTypes("fairy").
		WithPastTypes(6, "normal").
		WithAbility("cute-charm").
		WithAbility("magic-guard").
		WithHiddenAbility("friend-guard").
		WithStat("hp", 70, 2).
		Build()
}

// Marill was pure water type until generation 6
func Marill() *pokemon.Pokemon {
	return builders.NewPokemonBuilder().
		WithID(MarillID).
		WithName("marill").
		WithTypes("water", "fairy").
		WithPastTypes(6, "water").
		WithAbility("thick-fat").
		WithAbility("huge-power").
		WithHiddenAbility("sap-sipper").
		Build()
}

// Rowlet was introduced in generation 7
func Rowlet() *pokemon.Pokemon {
	return builders.NewPokemonBuilder().
		WithID(RowletID).
		WithName("rowlet").
		WithTypes("grass", "flying").
		WithAbility("overgrow").
		WithHiddenAbility("long-reach").
		Build()
}

// SpeciesFor returns species metadata introduced in gen
func SpeciesFor(p *pokemon.Pokemon, gen int) *pokemon.Species {
	return &pokemon.Species{
		ID:               p.ID,
		Name:             p.SpeciesName,
		Generation:       gen,
		Genus:            "Test Pokémon",
		FlavorText:       "A pokemon used in tests.",
		EvolutionChainID: p.ID,
	}
}

// Move returns move metadata with the given type
func Move(name, moveType string) *pokemon.Move {
	power := 40
	accuracy := 100
	return &pokemon.Move{
		Name:        name,
		Type:        moveType,
		DamageClass: "physical",
		Power:       &power,
		Accuracy:    &accuracy,
		PP:          35,
		ShortEffect: "Inflicts regular damage.",
	}
}
