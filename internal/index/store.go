// Package index is the persistent data model of the search server: the
// inverted index (term -> document -> term frequency), the reverse
// index (document -> term -> term frequency), and document metadata,
// plus the ordered set of live document ids. It is the Go counterpart
// of SearchServer's word_to_document_freqs_, documents_, document_ids_
// and document_id_to_word_freqs_ fields in the original
// search-server/search_server.h. The live id set is a roaring.Bitmap,
// the way comet's BM25SearchIndex represents its own id sets
// (bm25_index.go); per-document vocabulary bitmaps for duplicate
// detection are built on demand by TermBitmap from the interner.
package index

import (
	"runtime"
	"sync"

	"github.com/RoaringBitmap/roaring"
	"golang.org/x/sync/errgroup"

	"github.com/wizenheimer/searchcore/internal/tokenizer"
	"github.com/wizenheimer/searchcore/serrors"
)

// Store holds the inverted index, the reverse index, and document
// metadata. It is the exclusive owner of all three; callers synchronize
// mutations at the whole-server level (the public API promises thread
// safety only for concurrent reads) but Store still guards its maps
// with a mutex so that its own parallel-policy operations are race-free.
type Store struct {
	mu sync.RWMutex

	postings map[string]map[int]float64  // term -> docID -> tf
	reverse  map[int]map[string]float64  // docID -> term -> tf
	meta     map[int]*Metadata
	liveIDs  *roaring.Bitmap

	terms *interner
	stop  *StopWords
}

// NewStore returns an empty Store backed by the given (possibly nil)
// stop words.
func NewStore(stop *StopWords) *Store {
	return &Store{
		postings: make(map[string]map[int]float64),
		reverse:  make(map[int]map[string]float64),
		meta:     make(map[int]*Metadata),
		liveIDs:  roaring.New(),
		terms:    newInterner(),
		stop:     stop,
	}
}

// StopWords returns the store's immutable stop-word set.
func (s *Store) StopWords() *StopWords { return s.stop }

// Add tokenizes text, filters stop words, validates the surviving
// tokens, and indexes them under id. See spec §4.3: N is the count of
// surviving tokens including duplicates; each occurrence of a term
// contributes 1/N to that term's frequency in the document.
func (s *Store) Add(id int, text string, status Status, ratings []int) error {
	if id < 0 {
		return &serrors.InvalidIDError{ID: id, Reason: "negative id"}
	}

	s.mu.RLock()
	_, exists := s.meta[id]
	s.mu.RUnlock()
	if exists {
		return &serrors.InvalidIDError{ID: id, Reason: "id already live"}
	}

	tokens := tokenizer.Split(text)
	terms := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !tokenizer.ValidateWord(t) {
			return &serrors.InvalidTermError{Term: t, Reason: "contains a control byte"}
		}
		if s.stop.Contains(t) {
			continue
		}
		terms = append(terms, t)
	}

	n := len(terms)
	freqs := make(map[string]float64, n)
	if n > 0 {
		inc := 1.0 / float64(n)
		for _, t := range terms {
			freqs[t] += inc
		}
	}
	rating := averageRating(ratings)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.meta[id]; exists {
		return &serrors.InvalidIDError{ID: id, Reason: "id already live"}
	}
	for t, tf := range freqs {
		if s.postings[t] == nil {
			s.postings[t] = make(map[int]float64)
		}
		s.postings[t][id] = tf
	}
	s.reverse[id] = freqs
	s.meta[id] = &Metadata{ID: id, Rating: rating, Status: status}
	s.liveIDs.Add(uint32(id))
	return nil
}

func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings) // Go integer division already truncates toward zero
}

// Remove deletes id from the reverse index, the live id set, the
// metadata map, and every posting list it appeared in. A no-op if id
// is not live.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *Store) removeLocked(id int) {
	freqs, ok := s.reverse[id]
	if !ok {
		return
	}
	for t := range freqs {
		if p := s.postings[t]; p != nil {
			delete(p, id)
		}
	}
	delete(s.reverse, id)
	delete(s.meta, id)
	s.liveIDs.Remove(uint32(id))
}

// RemoveParallel is observationally equivalent to Remove but erases the
// document's postings across a bounded pool of goroutines, one per
// term, the way FindAllDocuments fans plus/minus terms out under
// std::execution::par in the original search_server.h. Each goroutine
// only ever touches the one term's own posting submap
// (s.postings[t], a map[int]float64 distinct from every other term's),
// and no goroutine adds or removes a key of the top-level postings map
// itself, so the deletes are genuinely concurrent: no lock is needed
// beyond the whole-store mutex already held for the duration of the call.
func (s *Store) RemoveParallel(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	freqs, ok := s.reverse[id]
	if !ok {
		return
	}
	terms := make([]string, 0, len(freqs))
	for t := range freqs {
		terms = append(terms, t)
	}

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, t := range terms {
		t := t
		g.Go(func() error {
			delete(s.postings[t], id)
			return nil
		})
	}
	_ = g.Wait()

	delete(s.reverse, id)
	delete(s.meta, id)
	s.liveIDs.Remove(uint32(id))
}

// DocumentCount returns the number of live documents.
func (s *Store) DocumentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.meta)
}

// IterateIDs returns live document ids in ascending order.
func (s *Store) IterateIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int, 0, s.liveIDs.GetCardinality())
	it := s.liveIDs.Iterator()
	for it.HasNext() {
		ids = append(ids, int(it.Next()))
	}
	return ids
}

// WordFrequencies returns a copy of reverse[id], or an empty map if id
// is not live.
func (s *Store) WordFrequencies(id int) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	freqs := s.reverse[id]
	out := make(map[string]float64, len(freqs))
	for t, f := range freqs {
		out[t] = f
	}
	return out
}

// Metadata returns a copy of the stored metadata for id.
func (s *Store) Metadata(id int) (Metadata, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.meta[id]
	if !ok {
		return Metadata{}, false
	}
	return *m, true
}

// Postings returns a copy of the term's doc->tf posting list, or
// (nil, false) if the term has no live postings.
func (s *Store) Postings(term string) (map[int]float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.postings[term]
	if !ok || len(p) == 0 {
		return nil, false
	}
	out := make(map[int]float64, len(p))
	for d, tf := range p {
		out[d] = tf
	}
	return out, true
}

// TermBitmap returns a roaring.Bitmap of interned term ids for id's
// vocabulary, used by the duplicate detector to test vocabulary
// equality without comparing string sets directly.
func (s *Store) TermBitmap(id int) *roaring.Bitmap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bm := roaring.New()
	for t := range s.reverse[id] {
		bm.Add(s.terms.id(t))
	}
	return bm
}
