package normalize

import (
	"strings"
	"unicode"
)

// runThreshold is the shortest run of one letter that cannot occur in
// English or German spelling.
const runThreshold = 3

// CollapseRuns reduces every run of three or more identical letters
// (compared case-insensitively) to its first letter. Runs of two are kept.
func CollapseRuns(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); {
		j := runEnd(rs, i)
		if j-i >= runThreshold {
			b.WriteRune(rs[i])
		} else {
			for _, r := range rs[i:j] {
				b.WriteRune(r)
			}
		}
		i = j
	}
	return b.String()
}

// HasLetterRun reports whether s contains n or more identical consecutive
// letters, compared case-insensitively.
func HasLetterRun(s string, n int) bool {
	rs := []rune(s)
	for i := 0; i < len(rs); {
		j := runEnd(rs, i)
		if j-i >= n && unicode.IsLetter(rs[i]) {
			return true
		}
		i = j
	}
	return false
}

// runEnd returns the index just past the letter run starting at i. Non-letters
// form runs of length one.
func runEnd(rs []rune, i int) int {
	if !unicode.IsLetter(rs[i]) {
		return i + 1
	}
	first := unicode.ToLower(rs[i])
	j := i + 1
	for j < len(rs) && unicode.IsLetter(rs[j]) && unicode.ToLower(rs[j]) == first {
		j++
	}
	return j
}
