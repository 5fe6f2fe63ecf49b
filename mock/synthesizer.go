package mock

import (
	"context"

	"github.com/fwojciec/termgate"
)

// Compile-time interface verification.
var (
	_ termgate.Synthesizer = (*Synthesizer)(nil)
	_ termgate.Validator   = (*Validator)(nil)
)

// Synthesizer is a mock implementation of termgate.Synthesizer.
type Synthesizer struct {
	SynthesizeFn func(ctx context.Context, req termgate.SynthesisRequest) (string, error)
}

func (s *Synthesizer) Synthesize(ctx context.Context, req termgate.SynthesisRequest) (string, error) {
	return s.SynthesizeFn(ctx, req)
}

// Validator is a mock implementation of termgate.Validator.
type Validator struct {
	ValidateFn func(term string, cfg termgate.ValidationConfig) termgate.Verdict
}

func (v *Validator) Validate(term string, cfg termgate.ValidationConfig) termgate.Verdict {
	return v.ValidateFn(term, cfg)
}
