package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/termgate"
)

// LengthBounds rejects terms whose rune count is outside the configured
// bounds.
type LengthBounds struct{}

func (LengthBounds) Name() string { return RuleLengthBounds }

func (LengthBounds) Apply(term string, cfg termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	n := utf8.RuneCountInString(term)
	if n < cfg.MinTermLength {
		return false, termgate.ReasonTooShort
	}
	if n > cfg.MaxTermLength {
		return false, termgate.ReasonTooLong
	}
	return true, ""
}

// WordCount rejects terms with too few or too many words.
type WordCount struct{}

func (WordCount) Name() string { return RuleWordCount }

func (WordCount) Apply(term string, cfg termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	n := len(strings.Fields(term))
	if n < cfg.MinWordCount {
		return false, termgate.ReasonTooFewWords
	}
	if n > cfg.MaxWordCount {
		return false, termgate.ReasonTooManyWords
	}
	return true, ""
}

var pureNumber = regexp.MustCompile(`^[+\-±]?\d+(?:[.,]\d+)*(?:\s*[-\x{2013}\x{2014}]\s*\d+(?:[.,]\d+)*)?\s*%?$`)

// PureNumber rejects numbers, number ranges, and percentages.
type PureNumber struct{}

func (PureNumber) Name() string { return RulePureNumber }

func (PureNumber) Apply(term string, cfg termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	if cfg.RejectPureNumbers && pureNumber.MatchString(strings.TrimSpace(term)) {
		return false, termgate.ReasonPureNumber
	}
	return true, ""
}

// MathNotation rejects short strings made mostly of mathematical symbols,
// such as "x+y" or "≤ 5".
type MathNotation struct{}

func (MathNotation) Name() string { return RuleMathNotation }

func (MathNotation) Apply(term string, cfg termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	if cfg.MathSymbols == "" || utf8.RuneCountInString(term) >= 5 {
		return true, ""
	}
	if strings.ContainsAny(term, cfg.MathSymbols) && countLetters(term) < 3 {
		return false, termgate.ReasonMathNotation
	}
	return true, ""
}

// FragmentDetection rejects terms that start with a conjunction or
// preposition.
type FragmentDetection struct{}

func (FragmentDetection) Name() string { return RuleFragmentDetection }

func (FragmentDetection) Apply(term string, cfg termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	if !cfg.RejectFragments {
		return true, ""
	}
	words := strings.Fields(term)
	if len(words) > 0 && cfg.FragmentWords.Has(trimPunct(words[0])) {
		return false, termgate.ReasonFragment
	}
	return true, ""
}

// HyphenFragment rejects strings that start or end with a hyphen, and very
// short hyphenated strings.
type HyphenFragment struct{}

func (HyphenFragment) Name() string { return RuleHyphenFragment }

func (HyphenFragment) Apply(term string, _ termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	term = strings.TrimSpace(term)
	if term == "" {
		return true, ""
	}
	first, _ := utf8.DecodeRuneInString(term)
	last, _ := utf8.DecodeLastRuneInString(term)
	if isHyphen(first) || isHyphen(last) {
		return false, termgate.ReasonHyphenFragment
	}
	if strings.IndexFunc(term, isHyphen) >= 0 && utf8.RuneCountInString(term) <= 3 {
		return false, termgate.ReasonHyphenFragment
	}
	return true, ""
}

// MorphemeRejection rejects standalone suffixes and prefixes such as "tion"
// or "un-".
type MorphemeRejection struct{}

func (MorphemeRejection) Name() string { return RuleMorphemeRejection }

func (MorphemeRejection) Apply(term string, cfg termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	bare := strings.TrimSpace(term)
	if r, size := utf8.DecodeRuneInString(bare); isHyphen(r) {
		bare = bare[size:]
	}
	if r, size := utf8.DecodeLastRuneInString(bare); isHyphen(r) {
		bare = bare[:len(bare)-size]
	}
	if cfg.SuffixBlacklist.Has(bare) {
		return false, termgate.ReasonMorphemeSuffix
	}
	if cfg.PrefixBlacklist.Has(bare) {
		return false, termgate.ReasonMorphemePrefix
	}
	return true, ""
}

// SymbolRatio rejects terms where too many non-space runes are neither
// letters nor numbers.
type SymbolRatio struct{}

func (SymbolRatio) Name() string { return RuleSymbolRatio }

func (SymbolRatio) Apply(term string, cfg termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	var total, symbols int
	for _, r := range term {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			symbols++
		}
	}
	if total > 0 && float64(symbols)/float64(total) > cfg.MaxSymbolRatio {
		return false, termgate.ReasonSymbolRatio
	}
	return true, ""
}

// GenericWord rejects single words too generic to be a glossary entry.
type GenericWord struct{}

func (GenericWord) Name() string { return RuleGenericWord }

func (GenericWord) Apply(term string, cfg termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	words := strings.Fields(term)
	if len(words) == 1 && cfg.GenericWordBlacklist.Has(trimPunct(words[0])) {
		return false, termgate.ReasonGenericWord
	}
	return true, ""
}

func isHyphen(r rune) bool {
	switch r {
	case '-', // hyphen-minus
		'\u2010', // hyphen
		'\u2011', // non-breaking hyphen
		'\u2012', // figure dash
		'\u2013', // en dash
		'\u2014', // em dash
		'\u2212', // minus sign
		'\u00AD': // soft hyphen
		return true
	}
	return false
}

func countLetters(s string) int {
	var n int
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

func trimPunct(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}
