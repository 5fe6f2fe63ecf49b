package extract

import (
	"strings"
	"unicode"
)

// abbreviations end with a period without ending a sentence.
var abbreviations = map[string]bool{
	"e.g": true, "i.e": true, "etc": true, "al": true, "cf": true, "vs": true,
	"fig": true, "figs": true, "eq": true, "eqs": true, "no": true, "nr": true,
	"approx": true, "ca": true, "sect": true, "vol": true, "p": true, "pp": true,
	"dr": true, "prof": true, "bzw": true, "z.b": true, "d.h": true, "usw": true,
	"vgl": true, "abb": true, "bzgl": true, "ggf": true,
}

// Sentences splits text into sentences. A sentence ends at '.', '!' or '?'
// followed by whitespace and a word that does not start in lowercase.
// Periods after common abbreviations and inside numbers do not split.
func Sentences(text string) []string {
	rs := []rune(text)
	var out []string
	start := 0
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		end := i + 1
		for end < len(rs) && strings.ContainsRune(`"')]»“”`, rs[end]) {
			end++
		}
		if end < len(rs) && !unicode.IsSpace(rs[end]) {
			continue
		}
		if r == '.' && isAbbreviation(rs[start:i]) {
			continue
		}
		if next := nextNonSpace(rs, end); next >= 0 && unicode.IsLower(rs[next]) {
			continue
		}
		if s := strings.TrimSpace(string(rs[start:end])); s != "" {
			out = append(out, s)
		}
		start = end
		i = end - 1
	}
	if tail := strings.TrimSpace(string(rs[start:])); tail != "" {
		out = append(out, tail)
	}
	return out
}

// IsComplete reports whether sentence ends with terminal punctuation.
func IsComplete(sentence string) bool {
	s := strings.TrimRight(strings.TrimSpace(sentence), `"')]»“”`)
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

func isAbbreviation(segment []rune) bool {
	word := string(segment)
	if i := strings.LastIndexFunc(word, unicode.IsSpace); i >= 0 {
		word = word[i+1:]
	}
	word = strings.TrimLeft(word, `("'[`)
	if len([]rune(word)) == 1 && unicode.IsLetter([]rune(word)[0]) {
		return true
	}
	return abbreviations[strings.ToLower(word)]
}

func nextNonSpace(rs []rune, i int) int {
	for ; i < len(rs); i++ {
		if !unicode.IsSpace(rs[i]) {
			return i
		}
	}
	return -1
}
