package validate_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/validate"
	"github.com/stretchr/testify/assert"
)

func english() termgate.ValidationConfig {
	return termgate.DefaultConfig(termgate.English)
}

func TestChain_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		term   string
		rule   string
		reason termgate.ReasonCode
	}{
		{"one below minimum length", "Fa", validate.RuleLengthBounds, termgate.ReasonTooShort},
		{"above maximum length", strings.Repeat("Ab ", 34), validate.RuleLengthBounds, termgate.ReasonTooLong},
		{"too many words", "One Two Three Four Five Six", validate.RuleWordCount, termgate.ReasonTooManyWords},
		{"blank term", "    ", validate.RuleWordCount, termgate.ReasonTooFewWords},
		{"pure number", "12345", validate.RulePureNumber, termgate.ReasonPureNumber},
		{"number range", "10–15", validate.RulePureNumber, termgate.ReasonPureNumber},
		{"percentage", "45 %", validate.RulePureNumber, termgate.ReasonPureNumber},
		{"math notation", "x+y", validate.RuleMathNotation, termgate.ReasonMathNotation},
		{"letter run", "Heeeat Exchanger", validate.RuleOCRCorruption, termgate.ReasonOCRCorruption},
		{"every letter doubled", "Tthhee Pump", validate.RuleOCRCorruption, termgate.ReasonOCRCorruption},
		{"glyph marker", "cid:31", validate.RuleArtifactRejection, termgate.ReasonPDFArtifact},
		{"et al", "et al", validate.RuleArtifactRejection, termgate.ReasonCitationArtifact},
		{"ibid", "ibid.", validate.RuleArtifactRejection, termgate.ReasonCitationArtifact},
		{"page reference", "p. 5", validate.RuleArtifactRejection, termgate.ReasonCitationArtifact},
		{"page range", "pp. 10–15", validate.RuleArtifactRejection, termgate.ReasonCitationArtifact},
		{"figure reference", "Fig. 3", validate.RuleArtifactRejection, termgate.ReasonCitationArtifact},
		{"table reference", "Table 2.1", validate.RuleArtifactRejection, termgate.ReasonCitationArtifact},
		{"year in parentheses", "(1999)", validate.RuleArtifactRejection, termgate.ReasonCitationArtifact},
		{"leading conjunction", "and Mixing", validate.RuleFragmentDetection, termgate.ReasonFragment},
		{"leading preposition", "with Valve", validate.RuleFragmentDetection, termgate.ReasonFragment},
		{"leading hyphen", "-tion", validate.RuleHyphenFragment, termgate.ReasonHyphenFragment},
		{"trailing hyphen", "un-", validate.RuleHyphenFragment, termgate.ReasonHyphenFragment},
		{"short hyphenated", "a-b", validate.RuleHyphenFragment, termgate.ReasonHyphenFragment},
		{"standalone suffix", "tion", validate.RuleMorphemeRejection, termgate.ReasonMorphemeSuffix},
		{"standalone prefix", "Pre", validate.RuleMorphemeRejection, termgate.ReasonMorphemePrefix},
		{"mostly symbols", "##@@!!", validate.RuleSymbolRatio, termgate.ReasonSymbolRatio},
		{"random casing", "TeMpErAtUrE", validate.RuleCapitalizationPattern, termgate.ReasonCapitalization},
		{"generic single word", "Gas", validate.RuleGenericWord, termgate.ReasonGenericWord},
	}

	chain := validate.DefaultChain()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := chain.Validate(tt.term, english())

			assert.False(t, got.Accepted)
			assert.Equal(t, tt.rule, got.Rule)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestChain_Validate_Accepts(t *testing.T) {
	t.Parallel()

	terms := []string{
		"Fan",
		"Mixing Time",
		"Natural Gas",
		"pH Value",
		"PID Controller",
		"PowerShell",
		"Pressure-Relief Valve",
		"balloon",
		"CENTRIFUGAL PUMP",
	}

	chain := validate.DefaultChain()
	for _, term := range terms {
		t.Run(term, func(t *testing.T) {
			t.Parallel()

			got := chain.Validate(term, english())

			assert.Equal(t, termgate.Accept(), got)
		})
	}
}

func TestChain_Validate_MinimumLengthBoundary(t *testing.T) {
	t.Parallel()

	cfg := english()
	cfg.MinTermLength = 5
	chain := validate.DefaultChain()

	assert.True(t, chain.Validate("Valve", cfg).Accepted)
	assert.Equal(t, termgate.ReasonTooShort, chain.Validate("Pump", cfg).Reason)
}

func TestChain_Validate_PartialDoublingIsNotDetected(t *testing.T) {
	t.Parallel()

	got := validate.DefaultChain().Validate("Tthe Pump", english())

	assert.True(t, got.Accepted)
}

func TestChain_Validate_Switches(t *testing.T) {
	t.Parallel()

	t.Run("pure numbers pass when disabled", func(t *testing.T) {
		t.Parallel()

		cfg := english()
		cfg.RejectPureNumbers = false

		assert.True(t, validate.DefaultChain().Validate("12345", cfg).Accepted)
	})

	t.Run("fragments pass when disabled", func(t *testing.T) {
		t.Parallel()

		cfg := english()
		cfg.RejectFragments = false

		assert.True(t, validate.DefaultChain().Validate("with Valve", cfg).Accepted)
	})

	t.Run("ocr errors pass when disabled", func(t *testing.T) {
		t.Parallel()

		cfg := english()
		cfg.RejectOCRErrors = false

		assert.True(t, validate.DefaultChain().Validate("Tthhee Pump", cfg).Accepted)
	})

	t.Run("all uppercase rejected when not allowed", func(t *testing.T) {
		t.Parallel()

		cfg := english()
		cfg.AllowAllUppercase = false

		got := validate.DefaultChain().Validate("CENTRIFUGAL PUMP", cfg)

		assert.Equal(t, termgate.ReasonCapitalization, got.Reason)
		assert.True(t, validate.DefaultChain().Validate("PID", cfg).Accepted)
	})

	t.Run("german profile uses german fragment words", func(t *testing.T) {
		t.Parallel()

		cfg := termgate.DefaultConfig(termgate.German)

		assert.Equal(t, termgate.ReasonFragment, validate.DefaultChain().Validate("und Ventil", cfg).Reason)
		assert.True(t, validate.DefaultChain().Validate("Mischzeit", cfg).Accepted)
	})
}

func TestChain_Order(t *testing.T) {
	t.Parallel()

	t.Run("default order is fixed", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{
			"length-bounds",
			"word-count",
			"pure-number",
			"math-notation",
			"ocr-corruption",
			"artifact-rejection",
			"fragment-detection",
			"hyphen-fragment",
			"morpheme-rejection",
			"symbol-ratio",
			"capitalization-pattern",
			"generic-word",
		}, validate.DefaultChain().Names())
	})

	t.Run("hyphen fragment fires before morpheme rejection", func(t *testing.T) {
		t.Parallel()

		got := validate.DefaultChain().Validate("-ing", english())

		assert.Equal(t, validate.RuleHyphenFragment, got.Rule)
	})

	t.Run("artifact rejection does not depend on later rules", func(t *testing.T) {
		t.Parallel()

		chain := validate.DefaultChain().Without(validate.RuleSymbolRatio).Without(validate.RuleCapitalizationPattern)

		assert.Equal(t, validate.RuleArtifactRejection, chain.Validate("cid:31", english()).Rule)
	})
}

func TestChain_Without(t *testing.T) {
	t.Parallel()

	full := validate.DefaultChain()
	chain := full.Without(validate.RuleArtifactRejection)

	assert.True(t, chain.Validate("cid:31", english()).Accepted)
	assert.Len(t, full.Names(), 12, "original chain is unchanged")
	assert.NotContains(t, chain.Names(), validate.RuleArtifactRejection)
}

type bannedRule struct{ word string }

func (r bannedRule) Name() string { return "banned-word" }

func (r bannedRule) Apply(term string, _ termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	if strings.EqualFold(term, r.word) {
		return false, "banned"
	}
	return true, ""
}

func TestChain_With(t *testing.T) {
	t.Parallel()

	chain := validate.DefaultChain().With(bannedRule{word: "Mixing Time"})

	got := chain.Validate("Mixing Time", english())

	assert.Equal(t, termgate.Verdict{Reason: "banned", Rule: "banned-word"}, got)
	assert.True(t, validate.DefaultChain().Validate("Mixing Time", english()).Accepted)
}
