package pokedex

import (
	"sort"

	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
)

// typeOrder is the canonical type order used for display
var typeOrder = []string{
	"normal", "fire", "water", "electric", "grass", "ice",
	"fighting", "poison", "ground", "flying", "psychic", "bug",
	"rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// typeIntroduced lists types that did not exist from the first generation
var typeIntroduced = map[string]int{
	"dark":  2,
	"steel": 2,
	"fairy": 6,
}

// effectiveness holds every attacker/defender pair that is not neutral, as of
// generation 6 onward
var effectiveness = map[string]map[string]float64{
	"normal":   {"rock": 0.5, "ghost": 0, "steel": 0.5},
	"fire":     {"fire": 0.5, "water": 0.5, "grass": 2, "ice": 2, "bug": 2, "rock": 0.5, "dragon": 0.5, "steel": 2},
	"water":    {"fire": 2, "water": 0.5, "grass": 0.5, "ground": 2, "rock": 2, "dragon": 0.5},
	"electric": {"water": 2, "electric": 0.5, "grass": 0.5, "ground": 0, "flying": 2, "dragon": 0.5},
	"grass": {
		"fire": 0.5, "water": 2, "grass": 0.5, "poison": 0.5, "ground": 2,
		"flying": 0.5, "bug": 0.5, "rock": 2, "dragon": 0.5, "steel": 0.5,
	},
	"ice": {"fire": 0.5, "water": 0.5, "grass": 2, "ice": 0.5, "ground": 2, "flying": 2, "dragon": 2, "steel": 0.5},
	"fighting": {
		"normal": 2, "ice": 2, "poison": 0.5, "flying": 0.5, "psychic": 0.5, "bug": 0.5,
		"rock": 2, "ghost": 0, "dark": 2, "steel": 2, "fairy": 0.5,
	},
	"poison":  {"grass": 2, "poison": 0.5, "ground": 0.5, "rock": 0.5, "ghost": 0.5, "steel": 0, "fairy": 2},
	"ground":  {"fire": 2, "electric": 2, "grass": 0.5, "poison": 2, "flying": 0, "bug": 0.5, "rock": 2, "steel": 2},
	"flying":  {"electric": 0.5, "grass": 2, "fighting": 2, "bug": 2, "rock": 0.5, "steel": 0.5},
	"psychic": {"fighting": 2, "poison": 2, "psychic": 0.5, "dark": 0, "steel": 0.5},
	"bug": {
		"fire": 0.5, "grass": 2, "fighting": 0.5, "poison": 0.5, "flying": 0.5,
		"psychic": 2, "ghost": 0.5, "dark": 2, "steel": 0.5, "fairy": 0.5,
	},
	"rock":   {"fire": 2, "ice": 2, "fighting": 0.5, "ground": 0.5, "flying": 2, "bug": 2, "steel": 0.5},
	"ghost":  {"normal": 0, "psychic": 2, "ghost": 2, "dark": 0.5},
	"dragon": {"dragon": 2, "steel": 0.5, "fairy": 0},
	"dark":   {"fighting": 0.5, "psychic": 2, "ghost": 2, "dark": 0.5, "fairy": 0.5},
	"steel":  {"fire": 0.5, "water": 0.5, "electric": 0.5, "ice": 2, "rock": 2, "steel": 0.5, "fairy": 2},
	"fairy":  {"fire": 0.5, "fighting": 2, "poison": 0.5, "dragon": 2, "dark": 2, "steel": 0.5},
}

// firstGenerationChart holds the generation 1 pairs that differ from the
// later chart
var firstGenerationChart = map[string]map[string]float64{
	"ghost":  {"psychic": 0},
	"bug":    {"poison": 2},
	"poison": {"bug": 2},
	"ice":    {"fire": 1},
}

// typeExists reports whether a type was in the games as of gen
func typeExists(t string, gen int) bool {
	if _, known := effectiveness[t]; !known {
		return false
	}
	return gen >= typeIntroduced[t]
}

func multiplier(attacker, defender string, gen int) float64 {
	if gen == 1 {
		if m, ok := firstGenerationChart[attacker][defender]; ok {
			return m
		}
	}
	// Steel lost its ghost and dark resistances when fairy arrived
	if gen < 6 && defender == "steel" && (attacker == "ghost" || attacker == "dark") {
		return 0.5
	}
	if m, ok := effectiveness[attacker][defender]; ok {
		return m
	}
	return 1
}

// ComputeMatchups returns the damage multipliers a pokemon with types takes
// from each attacking type in gen. Types that did not exist in gen are left
// out on both sides.
func ComputeMatchups(types []string, gen int) *pokemon.TypeMatchups {
	var defenders []string
	for _, t := range types {
		if typeExists(t, gen) {
			defenders = append(defenders, t)
		}
	}

	matchups := &pokemon.TypeMatchups{}
	if len(defenders) == 0 {
		return matchups
	}

	for _, attacker := range typeOrder {
		if !typeExists(attacker, gen) {
			continue
		}

		m := 1.0
		for _, d := range defenders {
			m *= multiplier(attacker, d, gen)
		}

		entry := pokemon.Matchup{Type: attacker, Multiplier: m}
		switch {
		case m == 0:
			matchups.Immunities = append(matchups.Immunities, entry)
		case m > 1:
			matchups.Weaknesses = append(matchups.Weaknesses, entry)
		case m < 1:
			matchups.Resistances = append(matchups.Resistances, entry)
		}
	}

	sort.SliceStable(matchups.Weaknesses, func(i, j int) bool {
		return matchups.Weaknesses[i].Multiplier > matchups.Weaknesses[j].Multiplier
	})
	sort.SliceStable(matchups.Resistances, func(i, j int) bool {
		return matchups.Resistances[i].Multiplier < matchups.Resistances[j].Multiplier
	})

	return matchups
}
