package pokedex

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokedex-tui/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-tui/internal/generation"
)

// maxConcurrentLookups bounds metadata fetches for one move list
const maxConcurrentLookups = 8

// unknownOrder ranks releases missing from the table after every known one
var unknownOrder = len(generation.VersionGroups())

// candidate is a learn record with the position data used to rank it
type candidate struct {
	record     pokemon.LearnRecord
	generation int
	order      int
}

// better reports whether c should replace the current pick. Later
// generations win, then later releases in the same generation, then the
// higher priority learn method. Equal candidates keep the earlier input.
func (c candidate) better(than candidate) bool {
	if c.generation != than.generation {
		return c.generation > than.generation
	}
	if c.order != than.order {
		return c.order > than.order
	}
	return c.record.Method.Priority() < than.record.Method.Priority()
}

func newCandidate(record pokemon.LearnRecord) candidate {
	c := candidate{record: record, generation: generation.GenerationOf(record.VersionGroup)}
	if vg, ok := generation.LookupVersionGroup(record.VersionGroup); ok {
		c.order = vg.Order
	} else {
		c.order = unknownOrder
	}
	return c
}

// ResolveMoves picks, for every move, the learn record that applied in gen
// and returns the moves in display order. Moves with no record at or before
// gen are left out. Records are not enriched with move metadata.
func ResolveMoves(moves []pokemon.LearnableMove, gen int) []pokemon.MoveRecord {
	records := make([]pokemon.MoveRecord, 0, len(moves))

	for _, m := range moves {
		var (
			picked candidate
			found  bool
		)
		for _, d := range m.Details {
			c := newCandidate(d)
			if c.generation > gen {
				continue
			}
			if !found || c.better(picked) {
				picked, found = c, true
			}
		}
		if !found {
			continue
		}

		rec := pokemon.MoveRecord{
			Name:         m.Name,
			DisplayName:  pokemon.DisplayName(m.Name),
			Method:       picked.record.Method,
			VersionGroup: picked.record.VersionGroup,
		}
		if rec.Method == pokemon.LearnMethodLevelUp {
			rec.Level = picked.record.Level
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if pa, pb := a.Method.Priority(), b.Method.Priority(); pa != pb {
			return pa < pb
		}
		if a.Method == pokemon.LearnMethodLevelUp && a.Level != b.Level {
			return a.Level < b.Level
		}
		return a.Name < b.Name
	})

	return records
}

// enrichMoves fills in move metadata concurrently. Any failed lookup fails
// the whole list; order is unchanged.
func enrichMoves(ctx context.Context, client pokeapi.Client, records []pokemon.MoveRecord) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentLookups)

	for i := range records {
		eg.Go(func() error {
			move, err := client.GetMove(ctx, records[i].Name)
			if err != nil {
				return err
			}
			records[i].Type = move.Type
			records[i].Category = move.DamageClass
			records[i].Power = move.Power
			records[i].Accuracy = move.Accuracy
			records[i].PP = move.PP
			records[i].Description = move.ShortEffect
			return nil
		})
	}

	return eg.Wait()
}
