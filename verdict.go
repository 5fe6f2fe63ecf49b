package termgate

// ReasonCode identifies why a candidate was accepted or rejected.
type ReasonCode string

// Reason codes.
const (
	ReasonAccepted         ReasonCode = "accepted"
	ReasonTooShort         ReasonCode = "too-short"
	ReasonTooLong          ReasonCode = "too-long"
	ReasonTooFewWords      ReasonCode = "too-few-words"
	ReasonTooManyWords     ReasonCode = "too-many-words"
	ReasonPureNumber       ReasonCode = "pure-number"
	ReasonMathNotation     ReasonCode = "math-notation"
	ReasonOCRCorruption    ReasonCode = "ocr-corruption"
	ReasonPDFArtifact      ReasonCode = "pdf-artifact"
	ReasonCitationArtifact ReasonCode = "citation-artifact"
	ReasonFragment         ReasonCode = "fragment"
	ReasonHyphenFragment   ReasonCode = "hyphen-fragment"
	ReasonMorphemeSuffix   ReasonCode = "morpheme-suffix"
	ReasonMorphemePrefix   ReasonCode = "morpheme-prefix"
	ReasonSymbolRatio      ReasonCode = "symbol-ratio"
	ReasonCapitalization   ReasonCode = "capitalization"
	ReasonGenericWord      ReasonCode = "generic-word"

	// ReasonDocumentSkipped marks the skip record of a document that could
	// not be processed.
	ReasonDocumentSkipped ReasonCode = "document-skipped"
)

// Verdict is the outcome of validating one candidate. Rule is the name of
// the first failing rule and is empty for accepted candidates.
type Verdict struct {
	Accepted bool       `json:"accepted"`
	Reason   ReasonCode `json:"reason"`
	Rule     string     `json:"rule,omitempty"`
}

// Accept returns the verdict for a candidate that passed every rule.
func Accept() Verdict {
	return Verdict{Accepted: true, Reason: ReasonAccepted}
}

// Reject returns the verdict for a candidate rejected by rule.
func Reject(rule string, reason ReasonCode) Verdict {
	return Verdict{Reason: reason, Rule: rule}
}

// Rule is a single accept/reject predicate. Apply returns true to let the
// candidate continue, or false with the reason it was rejected.
type Rule interface {
	Name() string
	Apply(term string, cfg ValidationConfig) (bool, ReasonCode)
}

// Validator decides whether a candidate term is a legitimate entry.
type Validator interface {
	Validate(term string, cfg ValidationConfig) Verdict
}
