// Package tokenizer splits raw text on ASCII space and validates that
// tokens carry no control bytes. It is intentionally narrower than
// comet's UAX#29 word segmentation (see bm25_index.go's tokenize): this
// module pins tokenization to whitespace splitting because the ranking
// invariants (term frequency, stop-word filtering) are defined over
// exact byte-for-byte tokens, not Unicode words.
package tokenizer

const spaceByte = ' '

// Split breaks text into maximal non-space substrings, in left-to-right
// order. Runs of consecutive spaces collapse to a single boundary; no
// other validation is performed here.
func Split(text string) []string {
	tokens := make([]string, 0)
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == spaceByte {
			if start >= 0 {
				tokens = append(tokens, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// ValidateWord reports whether every byte of t is >= 0x20, i.e. t
// contains no control bytes.
func ValidateWord(t string) bool {
	for i := 0; i < len(t); i++ {
		if t[i] < 0x20 {
			return false
		}
	}
	return true
}
