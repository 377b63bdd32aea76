package generation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-tui/internal/generation"
)

type VersionsTestSuite struct {
	suite.Suite
}

func TestVersionsSuite(t *testing.T) {
	suite.Run(t, new(VersionsTestSuite))
}

func (s *VersionsTestSuite) TestKnownVersionGroups() {
	testCases := []struct {
		versionGroup string
		want         int
	}{
		{"red-blue", 1},
		{"yellow", 1},
		{"crystal", 2},
		{"emerald", 3},
		{"xd", 3},
		{"platinum", 4},
		{"black-2-white-2", 5},
		{"x-y", 6},
		{"ultra-sun-ultra-moon", 7},
		{"lets-go-pikachu-lets-go-eevee", 7},
		{"sword-shield", 8},
		{"legends-arceus", 8},
		{"scarlet-violet", 9},
		{"the-indigo-disk", 9},
	}

	for _, tc := range testCases {
		s.Run(tc.versionGroup, func() {
			s.Equal(tc.want, generation.GenerationOf(tc.versionGroup))
		})
	}
}

func (s *VersionsTestSuite) TestUnknownAssumesLatest() {
	s.Equal(generation.Latest, generation.GenerationOf("pokemon-champions"))
	s.Equal(generation.Latest, generation.GenerationOf(""))

	_, ok := generation.LookupVersionGroup("pokemon-champions")
	s.False(ok)
}

func (s *VersionsTestSuite) TestEveryEntryInRangeAndMonotonic() {
	groups := generation.VersionGroups()
	s.GreaterOrEqual(len(groups), 27)

	previous := generation.Min
	for i, vg := range groups {
		s.True(generation.Valid(vg.Generation), vg.Name)
		s.GreaterOrEqual(vg.Generation, previous, "table must be ordered by generation")
		s.Equal(i, vg.Order)
		previous = vg.Generation

		for gen := generation.Min; gen <= generation.Max; gen++ {
			s.Equal(generation.GenerationOf(vg.Name) <= gen, generation.IsAtOrBefore(vg.Name, gen),
				"%s at or before %d", vg.Name, gen)
		}
	}
}

func (s *VersionsTestSuite) TestLatestVersionGroupPerGeneration() {
	for gen := generation.Min; gen <= generation.Max; gen++ {
		vg, ok := generation.LatestVersionGroup(gen)
		s.Require().True(ok)
		s.Equal(gen, generation.GenerationOf(vg), "representative of gen %d", gen)
		s.True(generation.IsRepresentative(vg))

		_, known := generation.LookupVersionGroup(vg)
		s.True(known, vg)
	}

	_, ok := generation.LatestVersionGroup(10)
	s.False(ok)
	s.False(generation.IsRepresentative("red-blue"))
}

func (s *VersionsTestSuite) TestVersionGroupsReturnsCopy() {
	groups := generation.VersionGroups()
	groups[0].Generation = 9

	s.Equal(1, generation.GenerationOf(groups[0].Name))
}
