// Package search ranks pokemon names against a typed query
package search

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/KirkDiggler/pokedex-tui/internal/entities/pokemon"
)

// Result is a matching entry. MatchedIndexes are the byte offsets in the
// name that matched the query, for highlighting.
type Result struct {
	Ref            pokemon.Ref
	MatchedIndexes []int
}

// Index is an immutable, id ordered list of refs. Safe for concurrent use.
type Index struct {
	refs []pokemon.Ref
	byID map[int]int
}

// NewIndex copies refs and orders them by dex number
func NewIndex(refs []pokemon.Ref) *Index {
	sorted := make([]pokemon.Ref, len(refs))
	copy(sorted, refs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int]int, len(sorted))
	for i, r := range sorted {
		if _, dup := byID[r.ID]; !dup {
			byID[r.ID] = i
		}
	}

	return &Index{refs: sorted, byID: byID}
}

// String implements fuzzy.Source
func (x *Index) String(i int) string {
	return x.refs[i].Name
}

// Len implements fuzzy.Source
func (x *Index) Len() int {
	return len(x.refs)
}

// Refs returns a copy of every entry in id order
func (x *Index) Refs() []pokemon.Ref {
	out := make([]pokemon.Ref, len(x.refs))
	copy(out, x.refs)
	return out
}

// Find returns up to limit entries ranked by how well they match query. An
// empty query lists entries in id order. A numeric query ("25" or "#25")
// puts the exact dex number first. limit <= 0 means no limit.
func (x *Index) Find(query string, limit int) []Result {
	query = normalize(query)

	if query == "" {
		results := make([]Result, 0, capped(len(x.refs), limit))
		for _, r := range x.refs {
			if limit > 0 && len(results) == limit {
				break
			}
			results = append(results, Result{Ref: r})
		}
		return results
	}

	var results []Result
	exact := -1
	if id, err := strconv.Atoi(strings.TrimPrefix(query, "#")); err == nil {
		if i, ok := x.byID[id]; ok {
			exact = i
			results = append(results, Result{Ref: x.refs[i]})
		}
	}

	for _, m := range fuzzy.FindFrom(query, x) {
		if limit > 0 && len(results) >= limit {
			break
		}
		if m.Index == exact {
			continue
		}
		results = append(results, Result{Ref: x.refs[m.Index], MatchedIndexes: m.MatchedIndexes})
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// normalize makes "Mr. Mime" and "mr mime" match the slug "mr-mime"
func normalize(query string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	query = strings.ReplaceAll(query, ".", "")
	return strings.Join(strings.Fields(query), "-")
}

func capped(n, limit int) int {
	if limit > 0 && limit < n {
		return limit
	}
	return n
}
