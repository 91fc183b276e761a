package scraper

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means an expected table, body or row is missing
	ErrNotFound = errors.New("not found")

	// ErrAmbiguousStructure means too few schedule tables were found to pick the second one
	ErrAmbiguousStructure = errors.New("ambiguous page structure")
)

// FetchError is returned when the schedule page cannot be retrieved
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StructureError is returned when the page no longer matches the expected layout.
// It wraps ErrNotFound or ErrAmbiguousStructure.
type StructureError struct {
	Err    error
	Detail string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("unexpected page structure: %s", e.Detail)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}

func notFound(format string, args ...interface{}) error {
	return &StructureError{Err: ErrNotFound, Detail: fmt.Sprintf(format, args...)}
}

// ShortRowWarning reports a schedule row with fewer than the expected cells.
// Extraction still succeeds; the missing fields hold the N/A sentinel.
type ShortRowWarning struct {
	Found    int
	Expected int
}

func (w *ShortRowWarning) String() string {
	return fmt.Sprintf("expected %d cells in the schedule row, found %d; missing fields are N/A", w.Expected, w.Found)
}
