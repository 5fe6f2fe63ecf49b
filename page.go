package termgate

import "context"

// Page is one page of raw text handed over by an upstream PDF/OCR step.
// Text is best-effort UTF-8 and may contain corruption.
type Page struct {
	Number   int      `json:"page"`
	Text     string   `json:"text"`
	Language Language `json:"language,omitempty"`
}

// DocumentReader reads the pages of a source document.
// Implementations hide the file format (plain text, JSONL, HTML).
type DocumentReader interface {
	// Read returns the document's pages in order.
	// Returns EINVALID if the format is not supported.
	Read(ctx context.Context, path string) ([]Page, error)
}
