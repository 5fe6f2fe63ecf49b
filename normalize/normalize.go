// Package normalize repairs encoding and OCR damage in raw page text before
// any segmentation happens.
//
// Normalize applies four passes in a fixed order:
//
//  1. encoding-artifact removal (PDF glyph markers, invisible runes, NFKC)
//  2. duplicate-character collapse (runs of 3+ identical letters)
//  3. spaced-out character joining ("T e m p" becomes "Temp")
//  4. whitespace normalization
//
// The passes are repeated until the text stops changing, so that
// Normalize(Normalize(x)) == Normalize(x) holds for every input. Every
// function in this package is pure and safe for concurrent use.
package normalize

import (
	"regexp"
	"strings"
)

// maxRounds bounds the fixpoint iteration. Each round either shrinks the
// text or leaves it unchanged, so real inputs settle in two or three rounds.
const maxRounds = 16

// Normalize repairs a single span of text. It never fails; text it does not
// recognize as damaged passes through unchanged apart from whitespace.
func Normalize(raw string) string {
	return fixpoint(raw, round)
}

func round(s string) string {
	s = RemoveArtifacts(s)
	s = CollapseRuns(s)
	s = JoinSpacedLetters(s)
	return Whitespace(s)
}

// Text normalizes a whole page while keeping its line structure, which the
// extractor relies on to find headings and colon definitions. Words split by
// a hyphenated line break are rejoined, each line is normalized, and runs of
// blank lines collapse to a single paragraph break.
func Text(raw string) string {
	return fixpoint(raw, textRound)
}

var hyphenBreak = regexp.MustCompile(`(\p{L})[-\x{2010}\x{00AD}][ \t]*\n\s*(\p{Ll})`)

func textRound(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = hyphenBreak.ReplaceAllString(s, "$1$2")

	var b strings.Builder
	blank := false
	for _, line := range strings.Split(s, "\n") {
		line = Normalize(line)
		if line == "" {
			blank = b.Len() > 0
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
			if blank {
				b.WriteByte('\n')
			}
		}
		blank = false
		b.WriteString(line)
	}
	return b.String()
}

func fixpoint(s string, fn func(string) string) string {
	for range maxRounds {
		next := fn(s)
		if next == s {
			return next
		}
		s = next
	}
	return s
}
