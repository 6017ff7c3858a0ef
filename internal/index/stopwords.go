package index

import "github.com/wizenheimer/searchcore/internal/tokenizer"

// StopWords is an immutable set of terms excluded from both indexing
// and query parsing (I6: never mutated after construction).
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords interns a deduplicated, non-empty subset of words.
func NewStopWords(words []string) *StopWords {
	s := &StopWords{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return s
}

// NewStopWordsFromText splits text on ASCII space and interns the
// resulting tokens as stop words.
func NewStopWordsFromText(text string) *StopWords {
	return NewStopWords(tokenizer.Split(text))
}

// Contains reports whether term is a stop word. A nil *StopWords
// (the zero value of an unconstructed server) contains nothing.
func (s *StopWords) Contains(term string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[term]
	return ok
}
