// Package query turns a raw query string into a Query{Plus,Minus} pair
// of term sets, classifying each token and rejecting syntactic errors.
// It mirrors SearchServer::ParseQuery / ParseQueryWord from the original
// search-server/search_server.cpp, translated to Go's native sets
// (map[string]struct{}) in place of std::set<std::string_view>.
package query

import (
	"sort"
	"strings"

	"github.com/wizenheimer/searchcore/internal/tokenizer"
	"github.com/wizenheimer/searchcore/serrors"
)

// StopWords reports whether a term is excluded from indexing and
// querying. Implemented by internal/index.StopWords.
type StopWords interface {
	Contains(term string) bool
}

// Query is the parsed, deduplicated form of a raw query string.
type Query struct {
	Plus  map[string]struct{}
	Minus map[string]struct{}
}

func newQuery() Query {
	return Query{Plus: make(map[string]struct{}), Minus: make(map[string]struct{})}
}

// PlusSorted returns the positive terms, lexicographically sorted. The
// matcher uses this, under both policies, to produce deterministic
// output order (§5 of the spec this module implements).
func (q Query) PlusSorted() []string { return sortedKeys(q.Plus) }

// MinusSorted returns the negative terms, lexicographically sorted.
func (q Query) MinusSorted() []string { return sortedKeys(q.Minus) }

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Parse tokenizes raw on ASCII space, classifies each token as a plus
// or minus term, drops stop words regardless of polarity, and rejects
// malformed tokens.
func Parse(raw string, stop StopWords) (Query, error) {
	if raw == "" {
		return Query{}, serrors.ErrEmptyQuery
	}

	q := newQuery()
	for _, tok := range tokenizer.Split(raw) {
		isMinus := strings.HasPrefix(tok, "-")
		data := tok
		if isMinus {
			data = tok[1:]
		}
		if data == "" {
			return Query{}, &serrors.InvalidTermError{Term: tok, Reason: "empty after stripping leading '-'"}
		}
		if strings.HasPrefix(data, "-") {
			return Query{}, &serrors.InvalidTermError{Term: tok, Reason: "starts with '--'"}
		}
		if !tokenizer.ValidateWord(data) {
			return Query{}, &serrors.InvalidTermError{Term: tok, Reason: "contains a control byte"}
		}

		if stop != nil && stop.Contains(data) {
			continue
		}
		if isMinus {
			q.Minus[data] = struct{}{}
		} else {
			q.Plus[data] = struct{}{}
		}
	}
	return q, nil
}
