package validate

import (
	"strings"
	"unicode"

	"github.com/fwojciec/termgate"
)

// maxCaseAlternations is the number of upper/lower switches within one word
// at which casing is considered random.
const maxCaseAlternations = 4

// CapitalizationPattern accepts words shaped as Title Case, ACRONYM,
// PascalCase, lowercase, or listed in CaseExceptions. Other words are
// rejected when their case alternates four or more times. When
// AllowAllUppercase is false, all-uppercase terms longer than an acronym are
// rejected as well.
type CapitalizationPattern struct{}

func (CapitalizationPattern) Name() string { return RuleCapitalizationPattern }

func (CapitalizationPattern) Apply(term string, cfg termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	if !cfg.AllowAllUppercase && isShouting(term, cfg) {
		return false, termgate.ReasonCapitalization
	}
	for _, word := range strings.Fields(term) {
		word = trimPunct(word)
		if cfg.CaseExceptions.Has(word) {
			continue
		}
		for _, part := range strings.FieldsFunc(word, isHyphenOrSlash) {
			if cfg.CaseExceptions.Has(part) || hasKnownShape(part, cfg) {
				continue
			}
			if caseAlternations(part) >= maxCaseAlternations {
				return false, termgate.ReasonCapitalization
			}
		}
	}
	return true, ""
}

func isHyphenOrSlash(r rune) bool {
	return isHyphen(r) || r == '/'
}

// hasKnownShape reports whether word is lowercase, Title Case, an acronym,
// or PascalCase. Digits are ignored.
func hasKnownShape(word string, cfg termgate.ValidationConfig) bool {
	var letters []rune
	for _, r := range word {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return true
	}

	upper := 0
	for _, r := range letters {
		if unicode.IsUpper(r) {
			upper++
		}
	}

	switch {
	case upper == 0:
		return true
	case upper == len(letters):
		return len(letters) >= cfg.MinAcronymLength && len(letters) <= cfg.MaxAcronymLength
	case !unicode.IsUpper(letters[0]):
		return false
	case upper == 1:
		return true
	}
	return isPascalCase(letters)
}

// isPascalCase reports whether letters are capitalized segments such as
// "PowerShell" or "McDonald": every uppercase letter starts a lowercase run,
// and every run after the first has at least two letters.
func isPascalCase(letters []rune) bool {
	segment := 0
	for i, r := range letters {
		if !unicode.IsUpper(r) {
			continue
		}
		if i+1 == len(letters) || !unicode.IsLower(letters[i+1]) {
			return false
		}
		if segment > 0 && (i+2 == len(letters) || !unicode.IsLower(letters[i+2])) {
			return false
		}
		segment++
	}
	return true
}

func caseAlternations(word string) int {
	var n int
	var prev rune
	for _, r := range word {
		if !unicode.IsLetter(r) {
			continue
		}
		if prev != 0 && unicode.IsUpper(prev) != unicode.IsUpper(r) {
			n++
		}
		prev = r
	}
	return n
}

// isShouting reports whether every letter of term is uppercase and the term
// is longer than the longest acronym.
func isShouting(term string, cfg termgate.ValidationConfig) bool {
	letters := 0
	for _, r := range term {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters > cfg.MaxAcronymLength
}
