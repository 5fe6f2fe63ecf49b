package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	openers = `("'[“‘`
	closers = `.,;:!?)"']”’`
)

// capitalizedRuns returns runs of consecutive capitalized tokens in a
// sentence: Title Case words, acronyms, and PascalCase names. Punctuation
// after a token ends its run. A lone capitalized word at the start of the
// sentence is skipped, since capitalization there says nothing.
func capitalizedRuns(sentence string) []string {
	var runs []string
	var run []string
	runStart := -1

	flush := func() {
		if len(run) > 1 || (len(run) == 1 && runStart > 0) {
			runs = append(runs, strings.Join(run, " "))
		}
		run, runStart = nil, -1
	}

	for i, token := range strings.Fields(sentence) {
		first, _ := utf8.DecodeRuneInString(token)
		opens := strings.ContainsRune(openers, first)
		core := strings.TrimLeft(token, openers)
		trimmed := strings.TrimRight(core, closers)
		closes := len(trimmed) < len(core)

		if opens {
			flush()
		}
		if !isCapitalized(trimmed) {
			flush()
			continue
		}
		if runStart < 0 {
			runStart = i
		}
		run = append(run, trimmed)
		if closes {
			flush()
		}
	}
	flush()
	return runs
}

// isCapitalized reports whether token starts with an uppercase letter and is
// made of letters, digits, hyphens and slashes.
func isCapitalized(token string) bool {
	if token == "" {
		return false
	}
	first := []rune(token)[0]
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '/' {
			return false
		}
	}
	return true
}
