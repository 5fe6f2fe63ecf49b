package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/termgate"
)

// Ensure LoggingSynthesizer implements termgate.Synthesizer.
var _ termgate.Synthesizer = (*LoggingSynthesizer)(nil)

// LoggingSynthesizer wraps a Synthesizer with logging.
type LoggingSynthesizer struct {
	next   termgate.Synthesizer
	logger *slog.Logger
}

// NewLoggingSynthesizer creates a new LoggingSynthesizer.
func NewLoggingSynthesizer(next termgate.Synthesizer, logger *slog.Logger) *LoggingSynthesizer {
	return &LoggingSynthesizer{next: next, logger: logger}
}

// Synthesize delegates to the wrapped synthesizer. Failures are logged as
// warnings, successes at debug level.
func (s *LoggingSynthesizer) Synthesize(ctx context.Context, req termgate.SynthesisRequest) (def string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Warn("synthesis failed",
				"term", req.Term,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Debug("synthesized definition",
			"term", req.Term,
			"language", req.Language,
			"length", len(def),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Synthesize(ctx, req)
}
