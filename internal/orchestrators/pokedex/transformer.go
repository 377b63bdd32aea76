package pokedex

import (
	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/generation"
)

// DefaultFlavorText is shown when species metadata has no description
const DefaultFlavorText = "No description available."

// IntroducedIn returns the generation p first appeared in. Species metadata
// is preferred; without it the national dex number decides.
func IntroducedIn(p *pokemon.Pokemon, species *pokemon.Species) int {
	if species != nil {
		if generation.Valid(species.Generation) {
			return species.Generation
		}
		if species.ID > 0 {
			return generation.FromNationalID(species.ID)
		}
	}
	return generation.FromNationalID(p.ID)
}

// Transform builds the display record for raw as it was in target. A nil
// target shows current data without any historical rewriting. raw and
// species are never modified, so repeated calls give identical results.
func Transform(raw *pokemon.Pokemon, species *pokemon.Species, target *int) *pokemon.DisplayPokemon {
	display := &pokemon.DisplayPokemon{
		ID:           raw.ID,
		Name:         raw.Name,
		DisplayName:  pokemon.DisplayName(raw.Name),
		IntroducedIn: IntroducedIn(raw, species),
		Height:       pokemon.FormatHeight(raw.Height),
		Weight:       pokemon.FormatWeight(raw.Weight),
		EVYield:      pokemon.FormatEVYield(raw.Stats),
		FlavorText:   DefaultFlavorText,
		SpriteURL:    raw.SpriteURL,
		ArtworkURL:   raw.ArtworkURL,
	}

	matchupGeneration := generation.Latest
	if target != nil {
		display.Generation = *target
		matchupGeneration = *target
		display.Types = resolveTypes(raw, *target)
		display.Abilities = resolveAbilities(raw, *target)
	} else {
		display.Types = append([]string(nil), raw.Types...)
		display.Abilities = currentAbilities(raw)
	}
	display.Matchups = ComputeMatchups(display.Types, matchupGeneration)

	for _, st := range raw.Stats {
		display.Stats = append(display.Stats, pokemon.DisplayStat{
			Name:   st.Name,
			Label:  pokemon.StatLabel(st.Name),
			Base:   st.Base,
			Effort: st.Effort,
		})
		display.StatTotal += st.Base
	}

	if species != nil {
		display.IsLegendary = species.IsLegendary
		display.IsMythical = species.IsMythical
		display.Genus = species.Genus
		display.EvolutionChainID = species.EvolutionChainID
		if species.FlavorText != "" {
			display.FlavorText = species.FlavorText
		}
	}

	return display
}

// resolveTypes applies the earliest type override whose epoch is still in
// the future as of target. Only one override is ever applied.
func resolveTypes(raw *pokemon.Pokemon, target int) []string {
	var applied *pokemon.TypeOverride
	for i := range raw.PastTypes {
		o := &raw.PastTypes[i]
		if target < o.Epoch && (applied == nil || o.Epoch < applied.Epoch) {
			applied = o
		}
	}

	if applied == nil {
		return append([]string(nil), raw.Types...)
	}
	return append([]string(nil), applied.Types...)
}

func resolveAbilities(raw *pokemon.Pokemon, target int) []pokemon.DisplayAbility {
	resolved := generation.ApplyOverrides(raw.ID, raw.Name, raw.Abilities, target)

	abilities := make([]pokemon.DisplayAbility, 0, len(resolved))
	for _, a := range resolved {
		if a.IsHidden && target < generation.FirstWithHiddenAbilities {
			continue
		}
		abilities = append(abilities, displayAbility(a.Name, a.IsHidden))
	}
	return abilities
}

func currentAbilities(raw *pokemon.Pokemon) []pokemon.DisplayAbility {
	abilities := make([]pokemon.DisplayAbility, 0, len(raw.Abilities))
	for _, a := range raw.Abilities {
		abilities = append(abilities, displayAbility(a.Name, a.IsHidden))
	}
	return abilities
}

func displayAbility(name string, hidden bool) pokemon.DisplayAbility {
	return pokemon.DisplayAbility{
		Name:        name,
		DisplayName: pokemon.DisplayName(name),
		IsHidden:    hidden,
	}
}
