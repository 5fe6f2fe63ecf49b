package pipeline

import (
	"context"
	"time"

	"github.com/fwojciec/termgate"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for commit retries: 100ms, 500ms, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{100 * time.Millisecond, 500 * time.Millisecond, 2 * time.Second}
}

// CommitWithRetryDelays commits b, retrying after each delay when the writer
// fails with an internal error such as a locked database. Application errors
// (invalid batch, conflicts) are returned immediately. A batch is written
// all-or-nothing, so retrying never duplicates rows.
func CommitWithRetryDelays(ctx context.Context, w termgate.BatchWriter, b *termgate.Batch, logger LogFunc, delays []time.Duration) (*termgate.CommitResult, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		res, err := w.CommitBatch(ctx, b)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if termgate.ErrorCode(err) != termgate.EINTERNAL || attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  retry commit %s (attempt %d): %v", b.Document.Path, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
