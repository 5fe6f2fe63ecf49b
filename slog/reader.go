// Package slog wraps domain services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/termgate"
)

// Ensure LoggingReader implements termgate.DocumentReader.
var _ termgate.DocumentReader = (*LoggingReader)(nil)

// LoggingReader wraps a DocumentReader with logging.
type LoggingReader struct {
	next   termgate.DocumentReader
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader.
func NewLoggingReader(next termgate.DocumentReader, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, logger: logger}
}

// Read delegates to the wrapped reader and logs the operation.
func (r *LoggingReader) Read(ctx context.Context, path string) (pages []termgate.Page, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("read document",
			"path", path,
			"pages", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Read(ctx, path)
}
