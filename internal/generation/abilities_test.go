package generation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/generation"
)

type AbilitiesTestSuite struct {
	suite.Suite
}

func TestAbilitiesSuite(t *testing.T) {
	suite.Run(t, new(AbilitiesTestSuite))
}

func (s *AbilitiesTestSuite) TestTableInvariants() {
	names := make(map[int]string)
	for _, o := range generation.AbilityOverrides() {
		s.NotEqual(o.OldAbility, o.NewAbility, o.PokemonName)
		s.True(generation.Valid(o.ChangeGeneration), o.PokemonName)
		s.Contains([]generation.AbilitySlotKind{
			generation.AbilitySlotFirst, generation.AbilitySlotSecond, generation.AbilitySlotHidden,
		}, o.Slot)

		if existing, ok := names[o.PokemonID]; ok {
			s.Equal(existing, o.PokemonName, "id %d must map to one name", o.PokemonID)
		}
		names[o.PokemonID] = o.PokemonName
	}
}

func (s *AbilitiesTestSuite) TestFindOverridesOnlyReturnsPendingChanges() {
	s.Len(generation.FindOverrides(94, "gengar", 6), 1)
	s.Empty(generation.FindOverrides(94, "gengar", 7))
	s.Empty(generation.FindOverrides(94, "gengar", 9))
}

func (s *AbilitiesTestSuite) TestFindOverridesMatchesByIDOrName() {
	s.Len(generation.FindOverrides(94, "", 3), 1)
	s.Len(generation.FindOverrides(0, "gengar", 3), 1)
	s.Empty(generation.FindOverrides(1, "bulbasaur", 3))
}

func (s *AbilitiesTestSuite) TestFormOverridesMatchOnlyTheirForm() {
	base := generation.AbilityOverride{PokemonID: 26, PokemonName: "raichu"}
	alola := generation.AbilityOverride{PokemonID: 26, PokemonName: "raichu", Form: "alola"}

	testCases := []struct {
		name     string
		override generation.AbilityOverride
		id       int
		pokemon  string
		expected bool
	}{
		{"base by id", base, 26, "", true},
		{"base by name", base, 0, "raichu", true},
		{"base skips form", base, 10100, "raichu-alola", false},
		{"form by name", alola, 10100, "raichu-alola", true},
		{"form skips base id", alola, 26, "raichu", false},
		{"form skips other form", alola, 0, "raichu-galar", false},
		{"form needs a name", alola, 26, "", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.override.Matches(tc.id, tc.pokemon))
		})
	}
}

func (s *AbilitiesTestSuite) TestGengarAcrossGenerations() {
	current := []pokemon.AbilitySlot{{Name: "cursed-body", Slot: 1}}

	s.Equal([]pokemon.ResolvedAbility{{Name: "levitate"}},
		generation.ApplyOverrides(94, "gengar", current, 6))
	s.Equal([]pokemon.ResolvedAbility{{Name: "cursed-body"}},
		generation.ApplyOverrides(94, "gengar", current, 7))
}

func (s *AbilitiesTestSuite) TestEveryOverrideFlipsAtItsChangeGeneration() {
	for _, o := range generation.AbilityOverrides() {
		s.Run(o.PokemonName, func() {
			hidden := o.Slot == generation.AbilitySlotHidden
			current := []pokemon.AbilitySlot{
				{Name: "placeholder-ability", Slot: 1},
				{Name: o.NewAbility, IsHidden: hidden, Slot: 3},
			}

			before := generation.ApplyOverrides(o.PokemonID, o.PokemonName, current, o.ChangeGeneration-1)
			s.Equal([]pokemon.ResolvedAbility{
				{Name: "placeholder-ability"},
				{Name: o.OldAbility, IsHidden: hidden},
			}, before)

			after := generation.ApplyOverrides(o.PokemonID, o.PokemonName, current, o.ChangeGeneration)
			s.Equal([]pokemon.ResolvedAbility{
				{Name: "placeholder-ability"},
				{Name: o.NewAbility, IsHidden: hidden},
			}, after)
		})
	}
}

func (s *AbilitiesTestSuite) TestNoOverridesPassesThroughWithoutSlots() {
	current := []pokemon.AbilitySlot{
		{Name: "overgrow", Slot: 1},
		{Name: "chlorophyll", IsHidden: true, Slot: 3},
	}

	s.Equal([]pokemon.ResolvedAbility{
		{Name: "overgrow"},
		{Name: "chlorophyll", IsHidden: true},
	}, generation.ApplyOverrides(1, "bulbasaur", current, 5))
}

func (s *AbilitiesTestSuite) TestEmptyAbilities() {
	resolved := generation.ApplyOverrides(94, "gengar", nil, 3)
	s.NotNil(resolved)
	s.Empty(resolved)
}
