// Package readability extracts the main content of HTML documents with
// go-readability. It serves as the fallback when trafilatura finds nothing.
package readability

import (
	"strings"

	"github.com/fwojciec/termgate"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements termgate.ContentExtractor at compile time.
var _ termgate.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND if no readable content remains.
func (e *Extractor) Extract(rawHTML string) (*termgate.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, termgate.Errorf(termgate.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, termgate.Errorf(termgate.ENOTFOUND, "no readable content")
	}

	return &termgate.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
