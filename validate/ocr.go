package validate

import (
	"strings"
	"unicode"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/normalize"
)

// OCRCorruption rejects terms that still carry OCR doubling damage: any run
// of three identical letters, or a word in which every letter was doubled
// ("Tthhee").
//
// Words where only some letters were doubled ("Tthe") are not detected.
// Telling them apart from legitimate double letters needs a dictionary, so
// they are accepted and left to manual review.
type OCRCorruption struct{}

func (OCRCorruption) Name() string { return RuleOCRCorruption }

func (OCRCorruption) Apply(term string, cfg termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	if !cfg.RejectOCRErrors {
		return true, ""
	}
	if normalize.HasLetterRun(term, 3) {
		return false, termgate.ReasonOCRCorruption
	}
	for _, word := range strings.Fields(term) {
		if hasPairedDoubling(word) {
			return false, termgate.ReasonOCRCorruption
		}
	}
	return true, ""
}

// minDoubledWord is the shortest word checked for paired doubling. Shorter
// words ("Aall") are too often legitimate.
const minDoubledWord = 6

// hasPairedDoubling reports whether word is made entirely of letter pairs
// that repeat the same letter, compared case-insensitively.
func hasPairedDoubling(word string) bool {
	rs := []rune(word)
	if len(rs) < minDoubledWord || len(rs)%2 != 0 {
		return false
	}
	for i := 0; i < len(rs); i += 2 {
		if !unicode.IsLetter(rs[i]) || unicode.ToLower(rs[i]) != unicode.ToLower(rs[i+1]) {
			return false
		}
	}
	return true
}
