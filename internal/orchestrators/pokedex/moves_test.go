package pokedex_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-tui/internal/testutils/builders"
)

type MoveResolverTestSuite struct {
	suite.Suite
}

func TestMoveResolverSuite(t *testing.T) {
	suite.Run(t, new(MoveResolverTestSuite))
}

func moveNames(records []pokemon.MoveRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}

func (s *MoveResolverTestSuite) TestMostAdvancedValidRuleWins() {
	moves := []pokemon.LearnableMove{{
		Name: "ember",
		Details: []pokemon.LearnRecord{
			builders.LevelUp("red-blue", 10),
			builders.LevelUp("gold-silver", 8),
			builders.LevelUp("sword-shield", 1),
		},
	}}

	records := pokedex.ResolveMoves(moves, 4)
	s.Require().Len(records, 1)
	s.Equal(8, records[0].Level)
	s.Equal("gold-silver", records[0].VersionGroup)

	records = pokedex.ResolveMoves(moves, 1)
	s.Require().Len(records, 1)
	s.Equal(10, records[0].Level)
}

func (s *MoveResolverTestSuite) TestMovesWithoutValidRecordsAreExcluded() {
	moves := []pokemon.LearnableMove{
		{Name: "tackle", Details: []pokemon.LearnRecord{builders.LevelUp("red-blue", 1)}},
		{Name: "leafage", Details: []pokemon.LearnRecord{builders.LevelUp("sun-moon", 1)}},
		{Name: "nothing"},
	}

	s.Equal([]string{"tackle"}, moveNames(pokedex.ResolveMoves(moves, 6)))
	s.Equal([]string{"leafage", "tackle"}, moveNames(pokedex.ResolveMoves(moves, 7)))
}

func (s *MoveResolverTestSuite) TestMethodCanChangeBetweenGenerations() {
	moves := []pokemon.LearnableMove{{
		Name: "flamethrower",
		Details: []pokemon.LearnRecord{
			builders.Learned("red-blue", pokemon.LearnMethodMachine),
			builders.LevelUp("x-y", 38),
		},
	}}

	old := pokedex.ResolveMoves(moves, 5)
	s.Equal(pokemon.LearnMethodMachine, old[0].Method)
	s.Zero(old[0].Level)

	current := pokedex.ResolveMoves(moves, 6)
	s.Equal(pokemon.LearnMethodLevelUp, current[0].Method)
	s.Equal(38, current[0].Level)
}

func (s *MoveResolverTestSuite) TestSameGenerationPrefersLaterRelease() {
	moves := []pokemon.LearnableMove{{
		Name: "thunder-shock",
		Details: []pokemon.LearnRecord{
			builders.LevelUp("yellow", 1),
			builders.LevelUp("red-blue", 5),
		},
	}}

	records := pokedex.ResolveMoves(moves, 1)
	s.Equal("yellow", records[0].VersionGroup)
	s.Equal(1, records[0].Level)
}

func (s *MoveResolverTestSuite) TestSameReleasePrefersHigherPriorityMethod() {
	moves := []pokemon.LearnableMove{{
		Name: "swift",
		Details: []pokemon.LearnRecord{
			builders.Learned("sword-shield", pokemon.LearnMethodTutor),
			builders.LevelUp("sword-shield", 20),
			builders.Learned("sword-shield", pokemon.LearnMethodMachine),
		},
	}}

	records := pokedex.ResolveMoves(moves, 8)
	s.Equal(pokemon.LearnMethodLevelUp, records[0].Method)
	s.Equal(20, records[0].Level)
}

func (s *MoveResolverTestSuite) TestUnknownReleaseCountsAsLatest() {
	moves := []pokemon.LearnableMove{{
		Name: "tera-blast",
		Details: []pokemon.LearnRecord{
			builders.Learned("some-future-release", pokemon.LearnMethodMachine),
		},
	}}

	s.Empty(pokedex.ResolveMoves(moves, 8))
	s.Len(pokedex.ResolveMoves(moves, 9), 1)
}

func (s *MoveResolverTestSuite) TestDisplayOrder() {
	moves := []pokemon.LearnableMove{
		{Name: "zap-cannon", Details: []pokemon.LearnRecord{builders.Learned("crystal", pokemon.LearnMethodTutor)}},
		{Name: "growl", Details: []pokemon.LearnRecord{builders.LevelUp("crystal", 1)}},
		{Name: "wish", Details: []pokemon.LearnRecord{builders.Learned("crystal", pokemon.LearnMethodEgg)}},
		{Name: "thunder", Details: []pokemon.LearnRecord{builders.Learned("crystal", pokemon.LearnMethodMachine)}},
		{Name: "agility", Details: []pokemon.LearnRecord{builders.LevelUp("crystal", 20)}},
		{Name: "attract", Details: []pokemon.LearnRecord{builders.Learned("crystal", pokemon.LearnMethodMachine)}},
		{Name: "bide", Details: []pokemon.LearnRecord{builders.Learned("crystal", pokemon.LearnMethodOther)}},
		{Name: "charm", Details: []pokemon.LearnRecord{builders.LevelUp("crystal", 1)}},
	}

	records := pokedex.ResolveMoves(moves, 2)
	s.Equal([]string{
		"charm", "growl", "agility",
		"attract", "thunder",
		"wish",
		"zap-cannon",
		"bide",
	}, moveNames(records))
	s.Equal("Zap Cannon", records[6].DisplayName)
}

func (s *MoveResolverTestSuite) TestInputIsNotModified() {
	moves := []pokemon.LearnableMove{{
		Name:    "tackle",
		Details: []pokemon.LearnRecord{builders.LevelUp("red-blue", 1), builders.LevelUp("x-y", 1)},
	}}

	pokedex.ResolveMoves(moves, 3)
	s.Len(moves[0].Details, 2)
}
