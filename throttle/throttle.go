// Package throttle implements the interactive request-throttling queue
// named out of core scope in spec §1: it counts empty-result queries
// over a rolling window of the most recent N find_top calls. It is a
// simple wrapper over the core (Server.FindTop's result length), not
// one of the hard-engineering parts, matching the original course's
// RequestQueue collaborator that sits in front of a SearchServer without
// touching its index.
package throttle

import "container/list"

// EmptyResultLimiter tracks whether the most recent `window` queries
// returned zero results, using a FIFO of bools rather than timestamps —
// the window is measured in query count, not wall-clock time.
type EmptyResultLimiter struct {
	window     int
	queries    *list.List
	emptyCount int
}

// New returns a limiter over the given window size. A non-positive
// window is sanitized to 1.
func New(window int) *EmptyResultLimiter {
	if window <= 0 {
		window = 1
	}
	return &EmptyResultLimiter{window: window, queries: list.New()}
}

// Record appends the outcome of one find_top call, evicting the oldest
// tracked outcome once the window is full.
func (l *EmptyResultLimiter) Record(empty bool) {
	l.queries.PushBack(empty)
	if empty {
		l.emptyCount++
	}
	if l.queries.Len() > l.window {
		evicted := l.queries.Remove(l.queries.Front()).(bool)
		if evicted {
			l.emptyCount--
		}
	}
}

// EmptyCount reports how many of the tracked (at most `window`) queries
// returned no results.
func (l *EmptyResultLimiter) EmptyCount() int {
	return l.emptyCount
}

// Len reports how many query outcomes are currently tracked.
func (l *EmptyResultLimiter) Len() int {
	return l.queries.Len()
}
