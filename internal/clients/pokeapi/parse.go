package pokeapi

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/errors"
	"github.com/KirkDiggler/pokedex-tui/internal/generation"
)

// Resource names as they appear in the API path
const (
	ResourcePokemon        = "pokemon"
	ResourceSpecies        = "pokemon-species"
	ResourceMove           = "move"
	ResourceAbility        = "ability"
	ResourceEvolutionChain = "evolution-chain"
)

const language = "en"

func decode(resource, key string, data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode %s %q", resource, key).
			WithMeta(errors.MetaResource, resource).
			WithMeta(errors.MetaKey, key)
	}
	return nil
}

func parsePokemon(key string, data []byte) (*pokemon.Pokemon, error) {
	var raw pokemonResponse
	if err := decode(ResourcePokemon, key, data, &raw); err != nil {
		return nil, err
	}

	switch {
	case raw.ID == nil:
		return nil, errors.Malformed(ResourcePokemon, key, "id")
	case raw.Name == "":
		return nil, errors.Malformed(ResourcePokemon, key, "name")
	case len(raw.Types) == 0:
		return nil, errors.Malformed(ResourcePokemon, key, "types")
	}

	p := &pokemon.Pokemon{
		ID:          *raw.ID,
		Name:        raw.Name,
		SpeciesName: raw.Species.Name,
		Height:      raw.Height,
		Weight:      raw.Weight,
		Types:       typeNames(raw.Types),
	}
	if raw.BaseExperience != nil {
		p.BaseExperience = *raw.BaseExperience
	}
	if p.SpeciesName == "" {
		p.SpeciesName = raw.Name
	}
	if raw.Sprites.FrontDefault != nil {
		p.SpriteURL = *raw.Sprites.FrontDefault
	}
	if raw.Sprites.Other.OfficialArtwork.FrontDefault != nil {
		p.ArtworkURL = *raw.Sprites.Other.OfficialArtwork.FrontDefault
	}

	for _, past := range raw.PastTypes {
		lastGen, ok := generation.ParseName(past.Generation.Name)
		if !ok || len(past.Types) == 0 {
			slog.Warn("skipping unreadable past types",
				"pokemon", raw.Name,
				"generation", past.Generation.Name)
			continue
		}
		// past_types names the last generation the old types were used in
		p.PastTypes = append(p.PastTypes, pokemon.TypeOverride{
			Epoch: lastGen + 1,
			Types: typeNames(past.Types),
		})
	}
	sort.SliceStable(p.PastTypes, func(i, j int) bool {
		return p.PastTypes[i].Epoch < p.PastTypes[j].Epoch
	})

	for _, a := range raw.Abilities {
		if a.Ability.Name == "" {
			continue
		}
		p.Abilities = append(p.Abilities, pokemon.AbilitySlot{
			Name:     a.Ability.Name,
			IsHidden: a.IsHidden,
			Slot:     a.Slot,
		})
	}

	for _, s := range raw.Stats {
		p.Stats = append(p.Stats, pokemon.Stat{
			Name:   s.Stat.Name,
			Base:   s.BaseStat,
			Effort: s.Effort,
		})
	}

	for _, m := range raw.Moves {
		if m.Move.Name == "" {
			continue
		}
		move := pokemon.LearnableMove{Name: m.Move.Name}
		for _, d := range m.VersionGroupDetails {
			move.Details = append(move.Details, pokemon.LearnRecord{
				VersionGroup: d.VersionGroup.Name,
				Method:       pokemon.ParseLearnMethod(d.MoveLearnMethod.Name),
				Level:        d.LevelLearnedAt,
			})
		}
		p.Moves = append(p.Moves, move)
	}

	return p, nil
}

// parseSpecies never rejects a decodable document; missing metadata is left
// at its zero value for the display layer to default.
func parseSpecies(key string, data []byte) (*pokemon.Species, error) {
	var raw speciesResponse
	if err := decode(ResourceSpecies, key, data, &raw); err != nil {
		return nil, err
	}

	s := &pokemon.Species{
		ID:          raw.ID,
		Name:        raw.Name,
		IsLegendary: raw.IsLegendary,
		IsMythical:  raw.IsMythical,
		FlavorText:  latestFlavorText(raw.FlavorTextEntries),
	}
	if s.Name == "" {
		s.Name = key
	}
	if raw.Generation != nil {
		if gen, ok := generation.ParseName(raw.Generation.Name); ok {
			s.Generation = gen
		}
	}
	for _, g := range raw.Genera {
		if g.Language.Name == language {
			s.Genus = g.Genus
			break
		}
	}
	if raw.EvolutionChain != nil {
		s.EvolutionChainID = idFromURL(raw.EvolutionChain.URL)
	}
	for _, v := range raw.Varieties {
		s.Varieties = append(s.Varieties, v.Pokemon.Name)
	}

	return s, nil
}

func parseMove(key string, data []byte) (*pokemon.Move, error) {
	var raw moveResponse
	if err := decode(ResourceMove, key, data, &raw); err != nil {
		return nil, err
	}
	if raw.Name == "" {
		return nil, errors.Malformed(ResourceMove, key, "name")
	}

	m := &pokemon.Move{
		Name:        raw.Name,
		Type:        raw.Type.Name,
		DamageClass: raw.DamageClass.Name,
		Power:       raw.Power,
		Accuracy:    raw.Accuracy,
	}
	if raw.PP != nil {
		m.PP = *raw.PP
	}

	m.ShortEffect = shortEffect(raw.EffectEntries)
	if raw.EffectChance != nil {
		m.ShortEffect = strings.ReplaceAll(m.ShortEffect, "$effect_chance", strconv.Itoa(*raw.EffectChance))
	}
	if m.ShortEffect == "" {
		m.ShortEffect = latestFlavorText(raw.FlavorTextEntries)
	}

	return m, nil
}

func parseAbility(key string, data []byte) (*pokemon.Ability, error) {
	var raw abilityResponse
	if err := decode(ResourceAbility, key, data, &raw); err != nil {
		return nil, err
	}
	if raw.Name == "" {
		return nil, errors.Malformed(ResourceAbility, key, "name")
	}

	a := &pokemon.Ability{
		Name:        raw.Name,
		ShortEffect: shortEffect(raw.EffectEntries),
	}
	if a.ShortEffect == "" {
		a.ShortEffect = latestFlavorText(raw.FlavorTextEntries)
	}
	return a, nil
}

func parseEvolutionChain(key string, data []byte) (*pokemon.EvolutionChain, error) {
	var raw evolutionChainResponse
	if err := decode(ResourceEvolutionChain, key, data, &raw); err != nil {
		return nil, err
	}
	if raw.ID == nil {
		return nil, errors.Malformed(ResourceEvolutionChain, key, "id")
	}
	if raw.Chain.Species.Name == "" {
		return nil, errors.Malformed(ResourceEvolutionChain, key, "chain.species")
	}

	return &pokemon.EvolutionChain{
		ID:   *raw.ID,
		Root: convertLink(raw.Chain),
	}, nil
}

func convertLink(link chainLink) *pokemon.EvolutionNode {
	node := &pokemon.EvolutionNode{Species: link.Species.Name}

	// A species can evolve several ways; the first listed condition is shown
	if len(link.EvolutionDetails) > 0 {
		d := link.EvolutionDetails[0]
		node.Trigger = d.Trigger.Name
		if d.MinLevel != nil {
			node.MinLevel = *d.MinLevel
		}
		if d.Item != nil {
			node.Item = d.Item.Name
		}
	}

	for _, next := range link.EvolvesTo {
		node.EvolvesTo = append(node.EvolvesTo, convertLink(next))
	}
	return node
}

func parseList(data []byte) ([]pokemon.Ref, error) {
	var raw listResponse
	if err := decode(ResourceSpecies, "list", data, &raw); err != nil {
		return nil, err
	}

	refs := make([]pokemon.Ref, 0, len(raw.Results))
	for _, r := range raw.Results {
		id := idFromURL(r.URL)
		if id == 0 || r.Name == "" {
			continue
		}
		refs = append(refs, pokemon.Ref{ID: id, Name: r.Name})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })

	return refs, nil
}

func typeNames(slots []typeSlot) []string {
	sorted := make([]typeSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Slot < sorted[j].Slot })

	names := make([]string, 0, len(sorted))
	for _, t := range sorted {
		names = append(names, t.Type.Name)
	}
	return names
}

// idFromURL extracts the trailing numeric id from a resource url such as
// https://pokeapi.co/api/v2/evolution-chain/10/
func idFromURL(url string) int {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0
	}
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil {
		return 0
	}
	return id
}

func shortEffect(entries []effectEntry) string {
	for _, e := range entries {
		if e.Language.Name == language {
			return cleanText(e.ShortEffect)
		}
	}
	return ""
}

// latestFlavorText returns the most recent English entry
func latestFlavorText(entries []flavorTextEntry) string {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Language.Name == language {
			return cleanText(entries[i].FlavorText)
		}
	}
	return ""
}

// cleanText flattens the form feeds, soft hyphens and hard wraps the game
// text carries into single spaces.
func cleanText(s string) string {
	s = strings.NewReplacer("\u00ad\n", "", "\f", " ", "\n", " ", "\u00ad", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
