// Package match implements MatchDocument from the original
// search_server.h: given a parsed query and a document id, it returns
// the positive terms present in that document, or an empty set if any
// negative term matches.
package match

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wizenheimer/searchcore/internal/query"
	"github.com/wizenheimer/searchcore/policy"
)

// FrequencyLookup is the minimal surface Match needs from the index
// store.
type FrequencyLookup interface {
	WordFrequencies(id int) map[string]float64
}

// Match returns the positive terms of q present in id's vocabulary, or
// an empty slice if any negative term of q is present. The sequential
// policy walks q's sorted positive terms directly; the parallel policy
// tests membership concurrently and deduplicates the surviving terms
// before returning them (spec §4.5: "Parallel policy additionally
// deduplicates the result").
func Match(store FrequencyLookup, q query.Query, id int, pol policy.Policy) []string {
	freqs := store.WordFrequencies(id)

	for m := range q.Minus {
		if _, ok := freqs[m]; ok {
			return []string{}
		}
	}

	plus := q.PlusSorted()
	if pol != policy.Parallel {
		result := make([]string, 0, len(plus))
		for _, p := range plus {
			if _, ok := freqs[p]; ok {
				result = append(result, p)
			}
		}
		return result
	}

	found := make([]bool, len(plus))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range plus {
		i, p := i, p
		g.Go(func() error {
			if _, ok := freqs[p]; ok {
				found[i] = true
			}
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]struct{}, len(plus))
	result := make([]string, 0, len(plus))
	for i, p := range plus {
		if !found[i] {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}
