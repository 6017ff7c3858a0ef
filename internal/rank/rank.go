// Package rank computes TF-IDF relevance for a parsed query against the
// inverted index, applies a caller predicate and negative-term
// filtering, and orders results deterministically. It is the Go
// counterpart of SearchServer::FindAllDocuments /
// SearchServer::FindTopDocuments in the original search_server.h: plus
// terms accumulate tf*idf under the predicate, minus terms erase,
// and BuildOrdinaryMap's merge becomes concurrent.Aggregator.BuildOrdered
// for the parallel path.
package rank

import (
	"math"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wizenheimer/searchcore/internal/concurrent"
	"github.com/wizenheimer/searchcore/internal/index"
	"github.com/wizenheimer/searchcore/internal/query"
	"github.com/wizenheimer/searchcore/policy"
)

// TopK is the maximum number of results FindTop ever returns.
const TopK = 5

// Epsilon is the floating-point tie-break tolerance on relevance.
const Epsilon = 1e-6

// Result is a single ranked document.
type Result struct {
	ID        int
	Relevance float64
	Rating    int
}

// Predicate decides whether a document is eligible for a given query.
type Predicate func(id int, status index.Status, rating int) bool

// ActualOnly is the default predicate: only ACTUAL-status documents match.
func ActualOnly(id int, status index.Status, rating int) bool {
	return status == index.Actual
}

// FindTop ranks the documents matching q under pred and returns the top
// TopK by (relevance desc, rating desc), with ties within Epsilon broken
// by rating.
func FindTop(store *index.Store, q query.Query, pred Predicate, pol policy.Policy) []Result {
	total := store.DocumentCount()

	var acc map[int]float64
	if pol == policy.Parallel {
		acc = findTopParallel(store, q, pred, total)
	} else {
		acc = findTopSequential(store, q, pred, total)
	}

	results := make([]Result, 0, len(acc))
	for id, rel := range acc {
		meta, ok := store.Metadata(id)
		if !ok {
			continue
		}
		results = append(results, Result{ID: id, Relevance: rel, Rating: meta.Rating})
	}

	sort.Slice(results, func(i, j int) bool {
		if math.Abs(results[i].Relevance-results[j].Relevance) < Epsilon {
			return results[i].Rating > results[j].Rating
		}
		return results[i].Relevance > results[j].Relevance
	})
	if len(results) > TopK {
		results = results[:TopK]
	}
	return results
}

func idf(total, df int) float64 {
	if df == 0 {
		return 0
	}
	return math.Log(float64(total) / float64(df))
}

func findTopSequential(store *index.Store, q query.Query, pred Predicate, total int) map[int]float64 {
	acc := make(map[int]float64)
	for p := range q.Plus {
		postings, ok := store.Postings(p)
		if !ok {
			continue
		}
		w := idf(total, len(postings))
		for d, tf := range postings {
			meta, ok := store.Metadata(d)
			if !ok {
				continue
			}
			if pred != nil && !pred(d, meta.Status, meta.Rating) {
				continue
			}
			acc[d] += tf * w
		}
	}
	for m := range q.Minus {
		postings, ok := store.Postings(m)
		if !ok {
			continue
		}
		for d := range postings {
			delete(acc, d)
		}
	}
	return acc
}

func findTopParallel(store *index.Store, q query.Query, pred Predicate, total int) map[int]float64 {
	agg := concurrent.New(concurrent.DefaultStripes)

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for p := range q.Plus {
		p := p
		g.Go(func() error {
			postings, ok := store.Postings(p)
			if !ok {
				return nil
			}
			w := idf(total, len(postings))
			for d, tf := range postings {
				meta, ok := store.Metadata(d)
				if !ok {
					continue
				}
				if pred != nil && !pred(d, meta.Status, meta.Rating) {
					continue
				}
				agg.Add(d, tf*w)
			}
			return nil
		})
	}
	_ = g.Wait()

	acc := agg.BuildOrdered()

	// Negative-term removal happens strictly after positive
	// accumulation, per FindAllDocuments: plus-word loop, then
	// minus-word loop.
	g2 := new(errgroup.Group)
	g2.SetLimit(runtime.GOMAXPROCS(0))
	var mu sync.Mutex
	for m := range q.Minus {
		m := m
		g2.Go(func() error {
			postings, ok := store.Postings(m)
			if !ok {
				return nil
			}
			mu.Lock()
			for d := range postings {
				delete(acc, d)
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g2.Wait()

	return acc
}
