// Package validate decides whether a candidate string is a legitimate
// terminology entry.
//
// Rules run in a fixed order and the first failing rule produces the
// verdict, so a borderline string always receives the same reason code.
// The order of DefaultRules is part of the audit contract:
//
//	 1. length-bounds
//	 2. word-count
//	 3. pure-number
//	 4. math-notation
//	 5. ocr-corruption
//	 6. artifact-rejection
//	 7. fragment-detection
//	 8. hyphen-fragment
//	 9. morpheme-rejection
//	10. symbol-ratio
//	11. capitalization-pattern
//	12. generic-word
//
// Rules are pure; a Chain is immutable and safe for concurrent use.
package validate

import (
	"slices"

	"github.com/fwojciec/termgate"
)

// Rule names.
const (
	RuleLengthBounds          = "length-bounds"
	RuleWordCount             = "word-count"
	RulePureNumber            = "pure-number"
	RuleMathNotation          = "math-notation"
	RuleOCRCorruption         = "ocr-corruption"
	RuleArtifactRejection     = "artifact-rejection"
	RuleFragmentDetection     = "fragment-detection"
	RuleHyphenFragment        = "hyphen-fragment"
	RuleMorphemeRejection     = "morpheme-rejection"
	RuleSymbolRatio           = "symbol-ratio"
	RuleCapitalizationPattern = "capitalization-pattern"
	RuleGenericWord           = "generic-word"
)

// DefaultRules returns the standard rules in evaluation order.
func DefaultRules() []termgate.Rule {
	return []termgate.Rule{
		LengthBounds{},
		WordCount{},
		PureNumber{},
		MathNotation{},
		OCRCorruption{},
		ArtifactRejection{},
		FragmentDetection{},
		HyphenFragment{},
		MorphemeRejection{},
		SymbolRatio{},
		CapitalizationPattern{},
		GenericWord{},
	}
}

// Compile-time interface verification.
var _ termgate.Validator = (*Chain)(nil)

// Chain is an ordered, immutable list of rules.
type Chain struct {
	rules []termgate.Rule
}

// NewChain returns a chain evaluating rules in the given order.
func NewChain(rules ...termgate.Rule) *Chain {
	return &Chain{rules: slices.Clone(rules)}
}

// DefaultChain returns a chain of DefaultRules.
func DefaultChain() *Chain {
	return NewChain(DefaultRules()...)
}

// With returns a new chain with r appended.
func (c *Chain) With(r termgate.Rule) *Chain {
	rules := slices.Clone(c.rules)
	return &Chain{rules: append(rules, r)}
}

// Without returns a new chain with every rule named name removed.
func (c *Chain) Without(name string) *Chain {
	rules := slices.DeleteFunc(slices.Clone(c.rules), func(r termgate.Rule) bool {
		return r.Name() == name
	})
	return &Chain{rules: rules}
}

// Names returns the rule names in evaluation order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name()
	}
	return names
}

// Validate applies the rules in order and returns the verdict of the first
// rule that rejects term, or an accepting verdict if none does.
func (c *Chain) Validate(term string, cfg termgate.ValidationConfig) termgate.Verdict {
	for _, r := range c.rules {
		if ok, reason := r.Apply(term, cfg); !ok {
			return termgate.Reject(r.Name(), reason)
		}
	}
	return termgate.Accept()
}
