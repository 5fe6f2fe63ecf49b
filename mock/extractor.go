package mock

import "github.com/fwojciec/termgate"

// Compile-time interface verification.
var (
	_ termgate.Extractor        = (*Extractor)(nil)
	_ termgate.ContentExtractor = (*ContentExtractor)(nil)
)

// Extractor is a mock implementation of termgate.Extractor.
type Extractor struct {
	ExtractFn func(page termgate.Page, documentID string) []termgate.Candidate
}

func (e *Extractor) Extract(page termgate.Page, documentID string) []termgate.Candidate {
	return e.ExtractFn(page, documentID)
}

// ContentExtractor is a mock implementation of termgate.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*termgate.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*termgate.ExtractResult, error) {
	return e.ExtractFn(html)
}
