// Package htmltomarkdown converts HTML content into the line-oriented text
// the term extractor reads: markdown block structure with inline markup
// removed.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/termgate"
)

// Ensure Converter implements termgate.Converter at compile time.
var _ termgate.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. Headings, lists, and paragraphs keep
// their markdown form; code blocks are dropped; links, emphasis, inline
// code, and quote marks are reduced to their text.
type Converter struct {
	conv *converter.Converter

	// KeepMarkup returns the converter's markdown unchanged.
	KeepMarkup bool
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into extraction-ready text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", termgate.Errorf(termgate.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	if c.KeepMarkup {
		return md, nil
	}
	return StripInline(md), nil
}

var (
	codeBlock  = regexp.MustCompile("(?s)```.*?```")
	link       = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	strong     = regexp.MustCompile(`(\*\*|__)([^*_\n]+?)(\*\*|__)`)
	emphasis   = regexp.MustCompile(`\*([^*\s][^*\n]*?)\*`)
	inlineCode = regexp.MustCompile("`([^`\n]+)`")
	quote      = regexp.MustCompile(`(?m)^(?:>\s?)+`)
	escape     = regexp.MustCompile(`\\([\\` + "`" + `*_{}\[\]()#+\-.!|>])`)
	blankRuns  = regexp.MustCompile(`\n{3,}`)
)

// StripInline removes code blocks and inline markdown markup from md.
func StripInline(md string) string {
	s := codeBlock.ReplaceAllString(md, "")
	s = link.ReplaceAllString(s, "$1")
	s = strong.ReplaceAllString(s, "$2")
	s = emphasis.ReplaceAllString(s, "$1")
	s = inlineCode.ReplaceAllString(s, "$1")
	s = quote.ReplaceAllString(s, "")
	s = escape.ReplaceAllString(s, "$1")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
