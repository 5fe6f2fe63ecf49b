package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/termgate"
)

// Ensure LoggingBatchWriter implements termgate.BatchWriter.
var _ termgate.BatchWriter = (*LoggingBatchWriter)(nil)

// LoggingBatchWriter wraps a BatchWriter with logging.
type LoggingBatchWriter struct {
	next   termgate.BatchWriter
	logger *slog.Logger
}

// NewLoggingBatchWriter creates a new LoggingBatchWriter.
func NewLoggingBatchWriter(next termgate.BatchWriter, logger *slog.Logger) *LoggingBatchWriter {
	return &LoggingBatchWriter{next: next, logger: logger}
}

// CommitBatch delegates to the wrapped writer and logs the operation.
func (w *LoggingBatchWriter) CommitBatch(ctx context.Context, b *termgate.Batch) (res *termgate.CommitResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"entries", len(b.Entries),
			"records", len(b.Records),
			"duration", time.Since(begin),
		}
		if b.Document != nil {
			attrs = append(attrs, "path", b.Document.Path, "status", b.Document.Status)
		}
		if res != nil {
			attrs = append(attrs, "created", res.Created, "merged", res.Merged)
		}
		if err != nil {
			w.logger.Error("commit batch", append(attrs, "err", err)...)
			return
		}
		w.logger.Info("commit batch", attrs...)
	}(time.Now())
	return w.next.CommitBatch(ctx, b)
}
