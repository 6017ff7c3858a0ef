// Package concurrent implements the striped aggregation map used by the
// parallel ranking path: a fixed number of independently-locked buckets
// keyed by document id, so that contributions from different terms can
// accumulate relevance without contending on a single mutex.
//
// It is the Go counterpart of the original search-server's
// ConcurrentMap<int, double>, sized the same way: the C++ source
// (search_server.h's FindAllDocuments) constructs it with 50 buckets,
// carried forward here as DefaultStripes.
package concurrent

import "sync"

// DefaultStripes is the default number of independently-guarded buckets.
const DefaultStripes = 50

type stripe struct {
	mu sync.Mutex
	m  map[int]float64
}

// Aggregator is a striped map partitioned into independently-guarded
// submaps. Key k always maps to submap k mod len(stripes), taken as a
// non-negative index also for negative k; writes to
// distinct submaps never block each other.
type Aggregator struct {
	stripes []*stripe
}

// New returns an Aggregator with the given number of stripes. A
// non-positive count falls back to DefaultStripes.
func New(stripes int) *Aggregator {
	if stripes <= 0 {
		stripes = DefaultStripes
	}
	a := &Aggregator{stripes: make([]*stripe, stripes)}
	for i := range a.stripes {
		a.stripes[i] = &stripe{m: make(map[int]float64)}
	}
	return a
}

func (a *Aggregator) stripeFor(k int) *stripe {
	idx := k % len(a.stripes)
	if idx < 0 {
		idx += len(a.stripes)
	}
	return a.stripes[idx]
}

// Add acquires the submap for k and adds delta to its entry, creating
// the entry at zero first if absent.
func (a *Aggregator) Add(k int, delta float64) {
	s := a.stripeFor(k)
	s.mu.Lock()
	s.m[k] += delta
	s.mu.Unlock()
}

// Erase acquires the submap for k and removes its entry if present.
func (a *Aggregator) Erase(k int) {
	s := a.stripeFor(k)
	s.mu.Lock()
	delete(s.m, k)
	s.mu.Unlock()
}

// BuildOrdered merges all submaps into a single map, releasing each
// submap's guard before moving to the next (per-submap critical
// sections never overlap with the merge of a different submap).
func (a *Aggregator) BuildOrdered() map[int]float64 {
	out := make(map[int]float64)
	for _, s := range a.stripes {
		s.mu.Lock()
		for k, v := range s.m {
			out[k] = v
		}
		s.mu.Unlock()
	}
	return out
}
