package index

import (
	"errors"
	"testing"

	"github.com/wizenheimer/searchcore/serrors"
)

func TestStoreAddAndWordFrequencies(t *testing.T) {
	s := NewStore(nil)
	if err := s.Add(1, "a white cat and a fashionable collar", Actual, []int{8, -3}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	freqs := s.WordFrequencies(1)
	// 7 surviving tokens ("a" appears twice), so tf(a) = 2/7.
	if got, want := freqs["a"], 2.0/7.0; abs(got-want) > 1e-9 {
		t.Errorf("freqs[a] = %v, want %v", got, want)
	}
	if got, want := freqs["cat"], 1.0/7.0; abs(got-want) > 1e-9 {
		t.Errorf("freqs[cat] = %v, want %v", got, want)
	}

	meta, ok := s.Metadata(1)
	if !ok {
		t.Fatal("Metadata(1) not found")
	}
	if meta.Rating != 2 { // (8 + -3) / 2 = 2 (truncated toward zero)
		t.Errorf("Rating = %d, want 2", meta.Rating)
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestStoreAddRejectsNegativeID(t *testing.T) {
	s := NewStore(nil)
	err := s.Add(-1, "cat", Actual, nil)
	var idErr *serrors.InvalidIDError
	if !errors.As(err, &idErr) {
		t.Fatalf("Add(-1, ...) error = %v, want InvalidIDError", err)
	}
}

func TestStoreAddRejectsDuplicateID(t *testing.T) {
	s := NewStore(nil)
	if err := s.Add(1, "cat", Actual, nil); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	err := s.Add(1, "dog", Actual, nil)
	if !errors.Is(err, serrors.ErrInvalidID) {
		t.Fatalf("second Add() error = %v, want ErrInvalidID", err)
	}
}

func TestStoreAddRejectsControlByte(t *testing.T) {
	s := NewStore(nil)
	err := s.Add(1, "ca\x01t dog", Actual, nil)
	if !errors.Is(err, serrors.ErrMalformedTerm) {
		t.Fatalf("Add() error = %v, want ErrMalformedTerm", err)
	}
}

func TestStoreAddAllStopWordsYieldsEmptyDocument(t *testing.T) {
	s := NewStore(NewStopWords([]string{"in", "the"}))
	if err := s.Add(42, "in the", Actual, nil); err != nil {
		t.Fatalf("Add() error = %v, want nil", err)
	}
	freqs := s.WordFrequencies(42)
	if len(freqs) != 0 {
		t.Errorf("WordFrequencies(42) = %v, want empty", freqs)
	}
	if s.DocumentCount() != 1 {
		t.Errorf("DocumentCount() = %d, want 1", s.DocumentCount())
	}
}

func TestStoreRemoveIsIdempotent(t *testing.T) {
	s := NewStore(nil)
	_ = s.Add(1, "cat dog", Actual, nil)

	before := s.DocumentCount()
	s.Remove(1)
	afterFirst := s.DocumentCount()
	s.Remove(1) // no-op, already gone
	afterSecond := s.DocumentCount()

	if before != 1 || afterFirst != 0 || afterSecond != 0 {
		t.Fatalf("counts = %d, %d, %d, want 1, 0, 0", before, afterFirst, afterSecond)
	}
	if _, ok := s.Postings("cat"); ok {
		t.Errorf("Postings(cat) still present after Remove")
	}
}

func TestStoreRemoveParallelMatchesSequentialRemove(t *testing.T) {
	seq := NewStore(nil)
	par := NewStore(nil)
	text := "alpha bravo charlie delta echo foxtrot golf hotel"
	_ = seq.Add(1, text, Actual, nil)
	_ = par.Add(1, text, Actual, nil)

	seq.Remove(1)
	par.RemoveParallel(1)

	if seq.DocumentCount() != par.DocumentCount() {
		t.Fatalf("document counts diverge: %d vs %d", seq.DocumentCount(), par.DocumentCount())
	}
	for _, term := range []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel"} {
		_, seqOK := seq.Postings(term)
		_, parOK := par.Postings(term)
		if seqOK || parOK {
			t.Errorf("term %q still has postings after remove: seq=%v par=%v", term, seqOK, parOK)
		}
	}
}

func TestStoreIterateIDsAscending(t *testing.T) {
	s := NewStore(nil)
	_ = s.Add(5, "cat", Actual, nil)
	_ = s.Add(1, "dog", Actual, nil)
	_ = s.Add(3, "bird", Actual, nil)

	got := s.IterateIDs()
	want := []int{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("IterateIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IterateIDs()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStoreTermBitmapEqualityForSameVocabulary(t *testing.T) {
	s := NewStore(NewStopWords([]string{"and"}))
	_ = s.Add(1, "funny pet and nasty rat", Actual, nil)
	_ = s.Add(2, "funny funny pet and nasty nasty rat", Actual, nil) // same vocabulary, different tf
	_ = s.Add(3, "funny pet with curly hair", Actual, nil)

	if !s.TermBitmap(1).Equals(s.TermBitmap(2)) {
		t.Error("TermBitmap(1) and TermBitmap(2) should be equal (identical vocabulary)")
	}
	if s.TermBitmap(1).Equals(s.TermBitmap(3)) {
		t.Error("TermBitmap(1) and TermBitmap(3) should differ (different vocabulary)")
	}
}

func TestStoreRatingsEmptyYieldsZero(t *testing.T) {
	s := NewStore(nil)
	_ = s.Add(1, "cat", Actual, nil)
	meta, _ := s.Metadata(1)
	if meta.Rating != 0 {
		t.Errorf("Rating = %d, want 0", meta.Rating)
	}
}

func TestStoreRatingsTruncateTowardZero(t *testing.T) {
	s := NewStore(nil)
	_ = s.Add(1, "cat", Actual, []int{-1, -2})
	meta, _ := s.Metadata(1)
	if meta.Rating != -1 { // -3/2 = -1, truncated toward zero
		t.Errorf("Rating = %d, want -1", meta.Rating)
	}
}
