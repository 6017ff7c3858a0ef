// Package dedup implements the duplicate detector described in spec
// §4.8: it scans a server's live documents in ascending id order and
// removes every document whose term set duplicates an earlier one. It
// is the Go counterpart of remove_duplicates.cpp, with
// std::set<std::set<std::string>> replaced by a slice of roaring
// bitmaps compared with Equals (see search.Server.TermBitmap), matching
// the DOMAIN STACK decision to wire roaring.Bitmap into vocabulary
// equality instead of map[string]struct{} equality.
package dedup

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/wizenheimer/searchcore"
)

type config struct {
	notice func(id int)
}

// Option configures RemoveDuplicates.
type Option func(*config)

// WithNotice registers a callback invoked once per removed document id,
// in removal order. remove_duplicates.cpp prints "Found duplicate
// document id <id>" for the same event; RemoveDuplicates defaults to a
// no-op so tests don't depend on stdout.
func WithNotice(fn func(id int)) Option {
	return func(c *config) { c.notice = fn }
}

// RemoveDuplicates collects srv's live ids first (iterating while
// mutating is a lifetime hazard), then removes every id whose term set
// equals an earlier one's, outside the collection loop.
func RemoveDuplicates(srv *search.Server, opts ...Option) {
	cfg := &config{notice: func(int) {}}
	for _, o := range opts {
		o(cfg)
	}

	ids := srv.IterateIDs()
	seen := make([]*roaring.Bitmap, 0, len(ids))
	var toRemove []int

	for _, id := range ids {
		bm := srv.TermBitmap(id)
		dup := false
		for _, s := range seen {
			if s.Equals(bm) {
				dup = true
				break
			}
		}
		if dup {
			toRemove = append(toRemove, id)
		} else {
			seen = append(seen, bm)
		}
	}

	for _, id := range toRemove {
		srv.Remove(id)
		cfg.notice(id)
	}
}
