package mock

import (
	"context"

	"github.com/fwojciec/termgate"
)

var _ termgate.BatchWriter = (*BatchWriter)(nil)

// BatchWriter is a mock implementation of termgate.BatchWriter.
type BatchWriter struct {
	CommitBatchFn func(ctx context.Context, b *termgate.Batch) (*termgate.CommitResult, error)
}

func (w *BatchWriter) CommitBatch(ctx context.Context, b *termgate.Batch) (*termgate.CommitResult, error) {
	return w.CommitBatchFn(ctx, b)
}
