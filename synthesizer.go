package termgate

import "context"

// SynthesisRequest carries what a Synthesizer needs to build a definition.
type SynthesisRequest struct {
	Term     string
	Context  string
	Sentence string
	Pages    []int
	Language Language
}

// Synthesizer builds a definition string for an accepted term.
// Its output is not validated.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (string, error)
}
