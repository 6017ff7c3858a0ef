// Package serrors defines the typed error values returned by the search
// server's public API. Callers branch on error kind with errors.Is /
// errors.As instead of string-matching, the way comet wraps sentinel
// conditions with fmt.Errorf("%w", ...) at each call site (see
// bm25_index_search.go's "node ID %d not found in index"), generalized
// here to typed sentinels so batch callers can branch on error kind.
package serrors

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrap one of these with errors.Is to classify a
// failure without inspecting its message.
var (
	// ErrEmptyQuery is returned by Match and FindTop when the raw query
	// string passed by the caller is empty.
	ErrEmptyQuery = errors.New("serrors: empty query")

	// ErrMalformedTerm is returned when a document or query token
	// contains a control byte, or a query token is "-", begins with
	// "--", or is empty after stripping a leading '-'.
	ErrMalformedTerm = errors.New("serrors: malformed term")

	// ErrInvalidID is returned by Add when the document id is negative
	// or already live.
	ErrInvalidID = errors.New("serrors: invalid document id")

	// ErrUnknownDocument is returned by Match when the target document
	// id is not live.
	ErrUnknownDocument = errors.New("serrors: unknown document")
)

// InvalidTermError reports the offending token and why it was rejected.
type InvalidTermError struct {
	Term   string
	Reason string
}

func (e *InvalidTermError) Error() string {
	return fmt.Sprintf("serrors: malformed term %q: %s", e.Term, e.Reason)
}

func (e *InvalidTermError) Unwrap() error { return ErrMalformedTerm }

// InvalidIDError reports the offending document id and why Add rejected it.
type InvalidIDError struct {
	ID     int
	Reason string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("serrors: invalid document id %d: %s", e.ID, e.Reason)
}

func (e *InvalidIDError) Unwrap() error { return ErrInvalidID }

// UnknownDocumentError reports the non-live id Match was asked about.
type UnknownDocumentError struct {
	ID int
}

func (e *UnknownDocumentError) Error() string {
	return fmt.Sprintf("serrors: unknown document %d", e.ID)
}

func (e *UnknownDocumentError) Unwrap() error { return ErrUnknownDocument }
