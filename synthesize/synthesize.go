// Package synthesize builds definitions for accepted terms from the text
// they were found in.
package synthesize

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/extract"
)

// DefaultWindow is the default size of the fallback excerpt, in runes.
const DefaultWindow = 250

// Compile-time interface verification.
var _ termgate.Synthesizer = (*Extractive)(nil)

// Extractive implements termgate.Synthesizer by selecting text rather than
// generating it. It prefers a complete sentence containing the term and
// falls back to a bounded excerpt of the context with a page reference.
type Extractive struct {
	// Window bounds the fallback excerpt in runes. Zero means DefaultWindow.
	Window int
}

// NewExtractive creates an Extractive synthesizer with the default window.
func NewExtractive() *Extractive {
	return &Extractive{Window: DefaultWindow}
}

// Synthesize returns a definition for req.Term.
// Returns EINVALID if the request carries no text at all.
func (s *Extractive) Synthesize(_ context.Context, req termgate.SynthesisRequest) (string, error) {
	limit := s.Window
	if limit <= 0 {
		limit = DefaultWindow
	}

	if sentence := s.pickSentence(req, 2*limit); sentence != "" {
		return sentence, nil
	}

	excerpt := Excerpt(req.Context, req.Term, limit)
	if excerpt == "" {
		excerpt = Excerpt(req.Sentence, req.Term, limit)
	}
	if excerpt == "" {
		return "", termgate.Errorf(termgate.EINVALID, "no context to define %q", req.Term)
	}
	if ref := PageRef(req.Pages); ref != "" {
		excerpt += " " + ref
	}
	return excerpt, nil
}

// pickSentence returns the best complete sentence no longer than limit, or
// "" if there is none.
func (s *Extractive) pickSentence(req termgate.SynthesisRequest, limit int) string {
	usable := func(sentence string) bool {
		return extract.IsComplete(sentence) && utf8.RuneCountInString(sentence) <= limit
	}
	mentions := func(sentence string) bool {
		return strings.Contains(strings.ToLower(sentence), strings.ToLower(req.Term))
	}

	if usable(req.Sentence) && mentions(req.Sentence) {
		return strings.TrimSpace(req.Sentence)
	}
	for _, sentence := range extract.Sentences(req.Context) {
		if usable(sentence) && mentions(sentence) {
			return sentence
		}
	}
	if usable(req.Sentence) {
		return strings.TrimSpace(req.Sentence)
	}
	return ""
}

// Excerpt returns at most limit runes of text around the first mention of
// term, cut at word boundaries. Cuts are marked with "...".
func Excerpt(text, term string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	rs := []rune(text)
	if len(rs) <= limit {
		return text
	}

	start := 0
	if i := indexFold(rs, []rune(term)); i >= 0 {
		start = max(0, i-limit/3)
	}
	end := min(len(rs), start+limit)
	if end == len(rs) {
		start = max(0, end-limit)
	}

	if start > 0 {
		for start < end && rs[start-1] != ' ' {
			start++
		}
	}
	if end < len(rs) {
		for end > start && rs[end] != ' ' {
			end--
		}
	}

	excerpt := strings.TrimSpace(string(rs[start:end]))
	if start > 0 {
		excerpt = "..." + excerpt
	}
	if end < len(rs) {
		excerpt += "..."
	}
	return excerpt
}

// indexFold returns the rune index of the first case-insensitive match of
// sub in rs, or -1. Runes are folded one by one so indexes stay aligned with
// rs even where lowercasing changes the byte length.
func indexFold(rs, sub []rune) int {
	if len(sub) == 0 {
		return -1
	}
	for i := 0; i+len(sub) <= len(rs); i++ {
		match := true
		for j, r := range sub {
			if unicode.ToLower(rs[i+j]) != unicode.ToLower(r) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// PageRef formats page numbers as "(p. 5)" or "(pp. 5, 7)".
func PageRef(pages []int) string {
	switch len(pages) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("(p. %d)", pages[0])
	}
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = fmt.Sprint(p)
	}
	return "(pp. " + strings.Join(parts, ", ") + ")"
}
