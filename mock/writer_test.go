package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where BatchWriter is expected
	var _ termgate.BatchWriter = &mock.BatchWriter{}
}

func TestBatchWriter_CommitBatch(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CommitBatchFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *termgate.Batch
		w := &mock.BatchWriter{
			CommitBatchFn: func(_ context.Context, b *termgate.Batch) (*termgate.CommitResult, error) {
				calledWith = b
				return &termgate.CommitResult{Created: 1}, nil
			},
		}

		b := &termgate.Batch{
			Document: &termgate.Document{ID: "doc-1", Path: "manual.txt", Status: termgate.DocumentCommitted},
		}

		res, err := w.CommitBatch(context.Background(), b)

		require.NoError(t, err)
		assert.Equal(t, b, calledWith)
		assert.Equal(t, 1, res.Created)
	})
}
