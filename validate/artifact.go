package validate

import (
	"regexp"
	"strings"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/normalize"
)

var citationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bet\s+al\b\.?`),
	regexp.MustCompile(`(?i)\bibid\b\.?`),
	regexp.MustCompile(`(?i)\bop\.?\s*cit\b\.?`),
	regexp.MustCompile(`(?i)\bpp?\.\s*\d+(?:\s*[-\x{2013}]\s*\d+)?\b`),
	regexp.MustCompile(`(?i)^(?:fig|figs|figure|tab|table|eq|eqs|equation|abb|abbildung|tabelle|gl)\.?\s*\(?\d+(?:\.\d+)*[a-z]?\)?$`),
	regexp.MustCompile(`^\(?(?:1[5-9]|20)\d{2}[a-z]?\)?$`),
}

// ArtifactRejection rejects PDF glyph markers and citation noise: "et al.",
// "ibid.", "op. cit.", page references, figure and table references, and
// standalone years.
type ArtifactRejection struct{}

func (ArtifactRejection) Name() string { return RuleArtifactRejection }

func (ArtifactRejection) Apply(term string, _ termgate.ValidationConfig) (bool, termgate.ReasonCode) {
	if normalize.ContainsGlyphMarker(term) {
		return false, termgate.ReasonPDFArtifact
	}
	term = strings.TrimSpace(term)
	for _, re := range citationPatterns {
		if re.MatchString(term) {
			return false, termgate.ReasonCitationArtifact
		}
	}
	return true, ""
}
