package extract

import (
	"strings"

	"github.com/fwojciec/termgate"
)

// StripArticle removes a single leading article from span. Articles later in
// the span are kept, and a span that is nothing but an article is returned
// unchanged.
func StripArticle(span string, lang termgate.Language) string {
	span = strings.TrimSpace(span)
	first, rest, ok := strings.Cut(span, " ")
	if !ok || !lang.Articles().Has(first) {
		return span
	}
	if rest = strings.TrimSpace(rest); rest == "" {
		return span
	}
	return rest
}
