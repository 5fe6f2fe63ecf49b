// Package extract segments normalized page text into term candidates.
//
// Three structural cues are recognized, in order of confidence: colon
// definitions ("Mixing Time: the time required ..."), headings followed by
// body text, and, for unstructured prose, runs of capitalized words found by
// a small noun-phrase chunker. The extractor proposes spans only; length,
// word-count and content checks belong to the validator.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/termgate"
)

// DefaultMaxHeadingWords bounds how many words a line may have to count as
// a heading.
const DefaultMaxHeadingWords = 8

// Compile-time interface verification.
var _ termgate.Extractor = (*Extractor)(nil)

// Extractor implements termgate.Extractor using structural cues.
type Extractor struct {
	// Language is used for pages that do not declare one.
	Language termgate.Language

	// StripArticles removes one leading article from every span.
	StripArticles bool

	// MaxHeadingWords bounds heading length. Zero means DefaultMaxHeadingWords.
	MaxHeadingWords int
}

// New creates an Extractor configured from cfg.
func New(cfg termgate.ValidationConfig) *Extractor {
	return &Extractor{
		Language:        cfg.Language,
		StripArticles:   cfg.StripArticles,
		MaxHeadingWords: DefaultMaxHeadingWords,
	}
}

var (
	// leader matches list bullets, markdown heading marks, and section
	// numbering in front of a heading or definition.
	leader = regexp.MustCompile(`^(?:#{1,6}\s+|[-*•]\s+)?(?:\(?(?:\d+\.)*\d+[.)]?\s+|[a-z][.)]\s+)?`)

	colonDefinition = regexp.MustCompile(`^([^:]{2,80}):\s+(\S.*)$`)
)

// Extract returns the candidates found on page. Duplicate spans on the same
// page are reported once, keeping the first context.
func (e *Extractor) Extract(page termgate.Page, documentID string) []termgate.Candidate {
	lang := page.Language
	if lang == "" {
		lang = e.Language
	}

	c := &collector{
		extractor:  e,
		lang:       lang,
		documentID: documentID,
		page:       page.Number,
		seen:       make(map[string]bool),
	}

	paragraphs := splitParagraphs(page.Text)
	for i, lines := range paragraphs {
		var body []string
		for j, line := range lines {
			stripped, numbered := stripLeader(line)

			if m := matchDefinition(stripped); m != nil {
				definition := strings.TrimSpace(m[2] + " " + strings.Join(continuation(lines[j+1:]), " "))
				c.add(m[1], definition, firstSentence(definition))
				body = append(body, m[2])
				continue
			}

			if j == 0 || numbered {
				if context := headingContext(lines[j+1:], paragraphs[i+1:]); context != "" && e.isHeading(stripped) {
					c.add(stripped, context, firstSentence(context))
					continue
				}
			}

			body = append(body, line)
		}

		text := strings.Join(body, " ")
		for _, sentence := range Sentences(text) {
			for _, span := range capitalizedRuns(sentence) {
				c.add(span, text, sentence)
			}
		}
	}

	return c.candidates
}

// isHeading reports whether a leader-stripped line looks like a heading.
func (e *Extractor) isHeading(line string) bool {
	limit := e.MaxHeadingWords
	if limit <= 0 {
		limit = DefaultMaxHeadingWords
	}
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > limit {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(line)
	if strings.ContainsRune(".,;:!?", last) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(first)
}

// headingContext returns the body text belonging to a heading: the rest of
// its paragraph, or the next paragraph when the heading stands alone. A
// following line that starts in lowercase continues a wrapped sentence, so
// the first line was not a heading.
func headingContext(rest []string, next [][]string) string {
	if len(rest) > 0 {
		first, _ := utf8.DecodeRuneInString(rest[0])
		if unicode.IsLower(first) {
			return ""
		}
		return strings.Join(rest, " ")
	}
	if len(next) > 0 {
		return strings.Join(next[0], " ")
	}
	return ""
}

// matchDefinition matches a "Term: definition" line. The term part must not
// contain sentence punctuation.
func matchDefinition(line string) []string {
	m := colonDefinition.FindStringSubmatch(line)
	if m == nil || strings.ContainsAny(m[1], ".!?") {
		return nil
	}
	return m
}

// continuation returns the lines that continue a colon definition, stopping
// at the next definition line.
func continuation(lines []string) []string {
	for i, line := range lines {
		stripped, _ := stripLeader(line)
		if matchDefinition(stripped) != nil {
			return lines[:i]
		}
	}
	return lines
}

// stripLeader removes bullets, markdown marks, and numbering, and reports
// whether anything was removed.
func stripLeader(line string) (string, bool) {
	loc := leader.FindStringIndex(line)
	if loc == nil || loc[1] == 0 || loc[1] == len(line) {
		return line, false
	}
	return line[loc[1]:], true
}

func splitParagraphs(text string) [][]string {
	var paragraphs [][]string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}
	return paragraphs
}

func firstSentence(text string) string {
	if s := Sentences(text); len(s) > 0 {
		return s[0]
	}
	return ""
}

type collector struct {
	extractor  *Extractor
	lang       termgate.Language
	documentID string
	page       int
	seen       map[string]bool
	candidates []termgate.Candidate
}

func (c *collector) add(span, context, sentence string) {
	span = strings.TrimSpace(span)
	if span == "" {
		return
	}
	term := span
	if c.extractor.StripArticles {
		term = StripArticle(span, c.lang)
	}
	key := strings.ToLower(term)
	if c.seen[key] {
		return
	}
	c.seen[key] = true

	c.candidates = append(c.candidates, termgate.Candidate{
		Term:       term,
		Original:   span,
		Context:    context,
		Sentence:   sentence,
		Language:   c.lang,
		DocumentID: c.documentID,
		Pages:      []int{c.page},
	})
}
