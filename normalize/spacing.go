package normalize

import (
	"strings"
	"unicode"
)

// minSpacedLetters is the shortest letter-by-letter run that gets rejoined.
const minSpacedLetters = 3

// JoinSpacedLetters rejoins words rendered letter by letter, such as
// "T e m p e r a t u r e". A run is joined only when every gap is exactly one
// space and it has at least three single-letter tokens.
func JoinSpacedLetters(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); {
		if !isSingleLetter(rs, i) {
			b.WriteRune(rs[i])
			i++
			continue
		}
		j, count := i, 1
		for j+2 < len(rs) && rs[j+1] == ' ' && isSingleLetter(rs, j+2) {
			j += 2
			count++
		}
		if count < minSpacedLetters {
			b.WriteRune(rs[i])
			i++
			continue
		}
		for k := i; k <= j; k += 2 {
			b.WriteRune(rs[k])
		}
		i = j + 1
	}
	return b.String()
}

// isSingleLetter reports whether rs[i] is a letter standing alone as a token.
func isSingleLetter(rs []rune, i int) bool {
	if !unicode.IsLetter(rs[i]) {
		return false
	}
	if i > 0 && isWordRune(rs[i-1]) {
		return false
	}
	return i+1 == len(rs) || !isWordRune(rs[i+1])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

// Whitespace turns control characters into spaces, collapses whitespace runs
// to a single space, and trims both ends.
func Whitespace(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
