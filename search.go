// Package search is an in-memory full-text search engine: incremental
// document add/remove, TF-IDF ranked retrieval with stop-word and
// negative-term filtering, status- and predicate-based filtering, and
// parallel evaluation of query batches.
//
// Server is the single logical owner of the index. Concurrent reads
// (FindTop, Match, WordFrequencies, IterateIDs, DocumentCount) are safe
// without external synchronization; any mutation (Add, Remove, and
// dedup.RemoveDuplicates) requires exclusive access at the caller's
// discretion, the same contract comet's BM25SearchIndex documents for
// its own sync.RWMutex-guarded methods.
//
// This package is the Go transformation of the original C++
// SearchServer (search-server/search_server.h): AddDocument,
// FindTopDocuments, MatchDocument, RemoveDocument, GetWordFrequencies,
// GetDocumentCount and the begin()/end() id iterator all have a direct
// counterpart here.
package search

import (
	"runtime"

	"github.com/RoaringBitmap/roaring"
	"golang.org/x/sync/errgroup"

	"github.com/wizenheimer/searchcore/internal/index"
	"github.com/wizenheimer/searchcore/internal/match"
	"github.com/wizenheimer/searchcore/internal/query"
	"github.com/wizenheimer/searchcore/internal/rank"
	"github.com/wizenheimer/searchcore/internal/tokenizer"
	"github.com/wizenheimer/searchcore/policy"
	"github.com/wizenheimer/searchcore/serrors"
)

// Status is a document's lifecycle/visibility marker.
type Status = index.Status

// Recognized status values.
const (
	Actual     = index.Actual
	Irrelevant = index.Irrelevant
	Banned     = index.Banned
	Removed    = index.Removed
)

// Result is a single ranked document: its id, accumulated relevance,
// and stored rating.
type Result = rank.Result

// Predicate decides whether a document is eligible for a find_top call.
type Predicate func(id int, status Status, rating int) bool

// Server is the search engine: the inverted index, the document store,
// and the immutable stop-word set constructed at creation time.
type Server struct {
	store *index.Store
}

// NewServer constructs a Server from an explicit stop-word list. Each
// stop word must be free of control bytes; otherwise NewServer returns
// a MalformedTerm error.
func NewServer(stopWords ...string) (*Server, error) {
	if err := validateStopWords(stopWords); err != nil {
		return nil, err
	}
	return &Server{store: index.NewStore(index.NewStopWords(stopWords))}, nil
}

// NewServerFromText constructs a Server from a stop-word list given as
// a single ASCII-space-delimited string.
func NewServerFromText(stopWordsText string) (*Server, error) {
	return NewServer(tokenizer.Split(stopWordsText)...)
}

func validateStopWords(words []string) error {
	for _, w := range words {
		if !tokenizer.ValidateWord(w) {
			return &serrors.InvalidTermError{Term: w, Reason: "stop word contains a control byte"}
		}
	}
	return nil
}

// Add indexes text under id with the given status and ratings. It
// fails with InvalidId if id is negative or already live, or with
// MalformedTerm if any surviving (non-stop) token contains a control
// byte.
func (s *Server) Add(id int, text string, status Status, ratings []int) error {
	return s.store.Add(id, text, status, ratings)
}

// Remove deletes id from the index. A no-op if id is not live.
func (s *Server) Remove(id int) {
	s.store.Remove(id)
}

// RemoveWithPolicy is Remove, but under policy.Parallel it fans the
// document's posting-list erasures out across a bounded goroutine pool.
func (s *Server) RemoveWithPolicy(id int, pol policy.Policy) {
	if pol == policy.Parallel {
		s.store.RemoveParallel(id)
	} else {
		s.store.Remove(id)
	}
}

// DocumentCount returns the number of live documents.
func (s *Server) DocumentCount() int {
	return s.store.DocumentCount()
}

// IterateIDs returns live document ids in ascending order.
func (s *Server) IterateIDs() []int {
	return s.store.IterateIDs()
}

// WordFrequencies returns a copy of id's term->frequency map, or an
// empty map if id is not live.
func (s *Server) WordFrequencies(id int) map[string]float64 {
	return s.store.WordFrequencies(id)
}

// TermBitmap returns a roaring bitmap of interned term ids for id's
// vocabulary. It exists for dedup.RemoveDuplicates's vocabulary-equality
// scan.
func (s *Server) TermBitmap(id int) *roaring.Bitmap {
	return s.store.TermBitmap(id)
}

// ActualPredicate is the default find_top filter: only ACTUAL-status
// documents match.
func ActualPredicate(id int, status Status, rating int) bool {
	return status == Actual
}

// FindTop ranks documents matching raw under the default ACTUAL-status
// filter and returns at most 5 results, sequentially.
func (s *Server) FindTop(raw string) ([]Result, error) {
	return s.FindTopWithPolicy(raw, ActualPredicate, policy.Sequential)
}

// FindTopStatus ranks documents matching raw whose status equals the
// given status.
func (s *Server) FindTopStatus(raw string, status Status) ([]Result, error) {
	return s.FindTopWithPolicy(raw, func(id int, st Status, rating int) bool {
		return st == status
	}, policy.Sequential)
}

// FindTopPredicate ranks documents matching raw under a caller-supplied
// predicate.
func (s *Server) FindTopPredicate(raw string, pred Predicate) ([]Result, error) {
	return s.FindTopWithPolicy(raw, pred, policy.Sequential)
}

// FindTopWithPolicy is the fully general form: raw query, predicate,
// and execution policy.
func (s *Server) FindTopWithPolicy(raw string, pred Predicate, pol policy.Policy) ([]Result, error) {
	q, err := query.Parse(raw, s.store.StopWords())
	if err != nil {
		return nil, err
	}
	rp := rank.Predicate(func(id int, status index.Status, rating int) bool {
		if pred == nil {
			return status == Actual
		}
		return pred(id, status, rating)
	})
	return rank.FindTop(s.store, q, rp, pol), nil
}

// Match parses raw and returns the positive terms present in id's
// vocabulary (empty if any negative term matches), plus id's stored
// status. It fails with EmptyQuery, MalformedTerm, or UnknownDocument.
func (s *Server) Match(raw string, id int) ([]string, Status, error) {
	return s.MatchWithPolicy(raw, id, policy.Sequential)
}

// MatchWithPolicy is Match with an explicit execution policy.
func (s *Server) MatchWithPolicy(raw string, id int, pol policy.Policy) ([]string, Status, error) {
	q, err := query.Parse(raw, s.store.StopWords())
	if err != nil {
		return nil, "", err
	}
	meta, ok := s.store.Metadata(id)
	if !ok {
		return nil, "", &serrors.UnknownDocumentError{ID: id}
	}
	terms := match.Match(s.store, q, id, pol)
	return terms, meta.Status, nil
}

// ProcessQueries maps each raw query to FindTop, running the batch in
// parallel over a bounded goroutine pool while preserving input order.
// A malformed or empty query contributes an empty result slice at its
// position rather than aborting the batch.
func (s *Server) ProcessQueries(raws []string) [][]Result {
	results := make([][]Result, len(raws))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			res, err := s.FindTop(raw)
			if err != nil {
				results[i] = []Result{}
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ProcessQueriesJoined flattens ProcessQueries' output in input order.
func (s *Server) ProcessQueriesJoined(raws []string) []Result {
	batches := s.ProcessQueries(raws)
	out := make([]Result, 0, len(batches)*rank.TopK)
	for _, b := range batches {
		out = append(out, b...)
	}
	return out
}
