// Package trafilatura extracts the main content of HTML documents with
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/termgate"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements termgate.ContentExtractor at compile time.
var _ termgate.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to strip navigation, footers, and other
// boilerplate from HTML documents.
type Extractor struct {
	// Fallback is used when trafilatura finds no main content. Optional.
	Fallback termgate.ContentExtractor
}

// NewExtractor creates a new Extractor with an optional fallback.
func NewExtractor(fallback termgate.ContentExtractor) *Extractor {
	return &Extractor{Fallback: fallback}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*termgate.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, termgate.Errorf(termgate.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return e.fallback(rawHTML, err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		if contentHTML, err = renderNode(result.ContentNode); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(contentHTML) == "" {
		return e.fallback(rawHTML, termgate.Errorf(termgate.ENOTFOUND, "no main content found"))
	}

	return &termgate.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func (e *Extractor) fallback(rawHTML string, cause error) (*termgate.ExtractResult, error) {
	if e.Fallback == nil {
		return nil, cause
	}
	return e.Fallback.Extract(rawHTML)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
