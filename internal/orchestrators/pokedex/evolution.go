package pokedex

import (
	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
)

// FlattenChain lists every species in chain depth first, root first, with
// the condition to reach it
func FlattenChain(chain *pokemon.EvolutionChain) []pokemon.EvolutionStage {
	if chain == nil || chain.Root == nil {
		return nil
	}

	var stages []pokemon.EvolutionStage
	var walk func(node *pokemon.EvolutionNode, depth int)
	walk = func(node *pokemon.EvolutionNode, depth int) {
		stages = append(stages, pokemon.EvolutionStage{
			Depth:       depth,
			Species:     node.Species,
			DisplayName: pokemon.DisplayName(node.Species),
			Trigger:     node.Trigger,
			MinLevel:    node.MinLevel,
			Item:        node.Item,
		})
		for _, next := range node.EvolvesTo {
			walk(next, depth+1)
		}
	}
	walk(chain.Root, 0)

	return stages
}
