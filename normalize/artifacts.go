package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// glyphMarker matches PDF-internal glyph references that leak into extracted
// text when a font has no usable ToUnicode map.
var glyphMarker = regexp.MustCompile(`\(cid:\d+\)|\bcid:\d+\b|GLYPH<\d+>|/uni[0-9A-Fa-f]{4,6}\b|/g\d+\b`)

// ContainsGlyphMarker reports whether s contains a PDF glyph marker such as
// "(cid:31)" or "/uni00A0".
func ContainsGlyphMarker(s string) bool {
	return glyphMarker.MatchString(s)
}

// RemoveArtifacts replaces glyph markers with a space, drops invisible
// formatting runes and replacement characters, and applies NFKC so that
// ligatures and full-width forms become plain letters.
func RemoveArtifacts(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = glyphMarker.ReplaceAllString(s, " ")
	s = strings.Map(func(r rune) rune {
		if isInvisible(r) {
			return -1
		}
		return r
	}, s)
	return norm.NFKC.String(s)
}

func isInvisible(r rune) bool {
	switch r {
	case '\uFFFD', // replacement character
		'\u200B', // zero width space
		'\u200C', // zero width non-joiner
		'\u200D', // zero width joiner
		'\u2060', // word joiner
		'\uFEFF', // byte order mark
		'\u00AD': // soft hyphen
		return true
	}
	return unicode.Is(unicode.Cf, r)
}
