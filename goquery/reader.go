// Package goquery reads HTML documents into pages. Glossary structure that
// the text extractor cannot see in HTML (definition lists and two-column
// term tables) is rewritten into "Term: definition" paragraphs before the
// main content is extracted and converted to text.
package goquery

import (
	"context"
	"html"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/termgate"
)

// Ensure Reader implements termgate.DocumentReader at compile time.
var _ termgate.DocumentReader = (*Reader)(nil)

// dropped lists elements that never carry glossary text.
const dropped = "script, style, noscript, iframe, svg, sup, nav, footer"

// Reader implements termgate.DocumentReader for HTML files. Each file is
// one page.
type Reader struct {
	// Extractor strips boilerplate. When nil, or when it fails, the whole
	// body is used.
	Extractor termgate.ContentExtractor

	// Converter turns the content HTML into text.
	Converter termgate.Converter
}

// NewReader creates a new Reader.
func NewReader(extractor termgate.ContentExtractor, converter termgate.Converter) *Reader {
	return &Reader{Extractor: extractor, Converter: converter}
}

// Read returns the single page of the HTML document at path.
func (r *Reader) Read(_ context.Context, path string) ([]termgate.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	page, err := r.Page(string(data))
	if err != nil {
		return nil, err
	}
	return []termgate.Page{page}, nil
}

// Page converts an HTML document into a page. The page language is taken
// from the lang attribute of the html element when it names a supported
// language.
func (r *Reader) Page(rawHTML string) (termgate.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return termgate.Page{}, termgate.Errorf(termgate.EINVALID, "failed to parse HTML: %v", err)
	}

	page := termgate.Page{Number: 1}
	if lang, ok := doc.Find("html").Attr("lang"); ok {
		if l, err := termgate.ParseLanguage(primarySubtag(lang)); err == nil {
			page.Language = l
		}
	}

	doc.Find(dropped).Remove()
	rewriteDefinitionLists(doc)
	rewriteTermTables(doc)

	prepared, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return termgate.Page{}, err
	}

	content := ""
	if r.Extractor != nil {
		if res, err := r.Extractor.Extract(prepared); err == nil {
			content = res.ContentHTML
		}
	}
	if strings.TrimSpace(content) == "" {
		if content, err = doc.Find("body").Html(); err != nil {
			return termgate.Page{}, err
		}
	}
	if strings.TrimSpace(content) == "" {
		return page, nil
	}

	text, err := r.Converter.Convert(content)
	if err != nil {
		return termgate.Page{}, err
	}
	page.Text = text
	return page, nil
}

// rewriteDefinitionLists replaces each dl with one paragraph per dt/dd pair.
// Several dd elements following one dt each become a paragraph.
func rewriteDefinitionLists(doc *goquery.Document) {
	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		var b strings.Builder
		var term string
		dl.Find("dt, dd").Each(func(_ int, item *goquery.Selection) {
			switch goquery.NodeName(item) {
			case "dt":
				term = collapse(item.Text())
			case "dd":
				if def := collapse(item.Text()); term != "" && def != "" {
					writeDefinition(&b, term, def)
				}
			}
		})
		dl.ReplaceWithHtml(b.String())
	})
}

// rewriteTermTables replaces tables whose body rows all have exactly two
// cells with one paragraph per row. Header rows are dropped.
func rewriteTermTables(doc *goquery.Document) {
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
			return tr.Find("td").Length() > 0
		})
		if rows.Length() == 0 {
			return
		}

		var b strings.Builder
		ok := true
		rows.EachWithBreak(func(_ int, tr *goquery.Selection) bool {
			cells := tr.Find("td, th")
			if cells.Length() != 2 {
				ok = false
				return false
			}
			term := collapse(cells.First().Text())
			def := collapse(cells.Last().Text())
			if term != "" && def != "" {
				writeDefinition(&b, term, def)
			}
			return true
		})
		if ok {
			table.ReplaceWithHtml(b.String())
		}
	})
}

func writeDefinition(b *strings.Builder, term, def string) {
	b.WriteString("<p>")
	b.WriteString(html.EscapeString(strings.TrimRight(term, ": ")))
	b.WriteString(": ")
	b.WriteString(html.EscapeString(def))
	b.WriteString("</p>")
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func primarySubtag(lang string) string {
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		return lang[:i]
	}
	return lang
}
