// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
)

// PokemonBuilder provides a fluent interface for building test Pokemon instances
type PokemonBuilder struct {
	p *pokemon.Pokemon
}

// NewPokemonBuilder creates a new builder with minimal defaults
func NewPokemonBuilder() *PokemonBuilder {
	return &PokemonBuilder{
		p: &pokemon.Pokemon{
			ID:          1,
			Name:        "testmon",
			SpeciesName: "testmon",
			Height:      7,
			Weight:      69,
			Types:       []string{"normal"},
		},
	}
}

// WithID sets the dex number
func (b *PokemonBuilder) WithID(id int) *PokemonBuilder {
	b.p.ID = id
	return b
}

// WithName sets the name and the species name
func (b *PokemonBuilder) WithName(name string) *PokemonBuilder {
	b.p.Name = name
	b.p.SpeciesName = name
	return b
}

// WithTypes replaces the current types
func (b *PokemonBuilder) WithTypes(types ...string) *PokemonBuilder {
	b.p.Types = types
	return b
}

// WithPastTypes records the types used before epoch
func (b *PokemonBuilder) WithPastTypes(epoch int, types ...string) *PokemonBuilder {
	b.p.PastTypes = append(b.p.PastTypes, pokemon.TypeOverride{Epoch: epoch, Types: types})
	return b
}

// WithAbility appends a regular ability in the next slot
func (b *PokemonBuilder) WithAbility(name string) *PokemonBuilder {
	b.p.Abilities = append(b.p.Abilities, pokemon.AbilitySlot{
		Name: name,
		Slot: len(b.p.Abilities) + 1,
	})
	return b
}

// WithHiddenAbility appends the hidden ability in slot 3
func (b *PokemonBuilder) WithHiddenAbility(name string) *PokemonBuilder {
	b.p.Abilities = append(b.p.Abilities, pokemon.AbilitySlot{
		Name:     name,
		IsHidden: true,
		Slot:     3,
	})
	return b
}

// WithStat appends a base stat
func (b *PokemonBuilder) WithStat(name string, base, effort int) *PokemonBuilder {
	b.p.Stats = append(b.p.Stats, pokemon.Stat{Name: name, Base: base, Effort: effort})
	return b
}

// WithMove appends a move with the given learn records
func (b *PokemonBuilder) WithMove(name string, records ...pokemon.LearnRecord) *PokemonBuilder {
	b.p.Moves = append(b.p.Moves, pokemon.LearnableMove{Name: name, Details: records})
	return b
}

// WithLevelUpMove appends a move learned by level-up in one release
func (b *PokemonBuilder) WithLevelUpMove(name, versionGroup string, level int) *PokemonBuilder {
	return b.WithMove(name, LevelUp(versionGroup, level))
}

// WithSprite sets the sprite url
func (b *PokemonBuilder) WithSprite(url string) *PokemonBuilder {
	b.p.SpriteURL = url
	return b
}

// Build returns the built Pokemon
func (b *PokemonBuilder) Build() *pokemon.Pokemon {
	return b.p
}

// LevelUp is a level-up learn record
func LevelUp(versionGroup string, level int) pokemon.LearnRecord {
	return pokemon.LearnRecord{VersionGroup: versionGroup, Method: pokemon.LearnMethodLevelUp, Level: level}
}

// Learned is a learn record for a method without a level
func Learned(versionGroup string, method pokemon.LearnMethod) pokemon.LearnRecord {
	return pokemon.LearnRecord{VersionGroup: versionGroup, Method: method}
}
