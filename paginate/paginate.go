// Package paginate splits a ranked result slice into fixed-size pages.
// It is the result paginator named out of core scope in spec §1 — a
// simple wrapper over the core's output, not one of the hard-engineering
// parts. It is adapted from comet's limiter.go, which sanitizes and
// truncates a VectorResult slice by a caller-supplied k; here the same
// sanitize-then-slice shape truncates a search.Result slice by page
// instead of by a single top-k cut.
package paginate

import "github.com/wizenheimer/searchcore"

// sanitizeSize mirrors limiter.go's sanitizeK: a non-positive or
// too-large page size falls back to the full result count.
func sanitizeSize(size, total int) int {
	if size <= 0 || size > total {
		return total
	}
	return size
}

// Paginator steps through a fixed result slice in pages of a fixed size.
type Paginator struct {
	results  []search.Result
	pageSize int
}

// New returns a Paginator over results with the given page size. A
// non-positive or oversized pageSize is sanitized to len(results), so
// PageCount is always at least 1 for a non-empty result slice.
func New(results []search.Result, pageSize int) *Paginator {
	return &Paginator{
		results:  results,
		pageSize: sanitizeSize(pageSize, len(results)),
	}
}

// PageCount returns the number of pages, 0 if results is empty.
func (p *Paginator) PageCount() int {
	if p.pageSize == 0 {
		return 0
	}
	return (len(p.results) + p.pageSize - 1) / p.pageSize
}

// Page returns the n-th page (0-indexed), or nil if n is out of range.
func (p *Paginator) Page(n int) []search.Result {
	if p.pageSize == 0 || n < 0 {
		return nil
	}
	start := n * p.pageSize
	if start >= len(p.results) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.results) {
		end = len(p.results)
	}
	return p.results[start:end]
}
