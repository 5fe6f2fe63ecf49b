package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/termgate"
	"github.com/fwojciec/termgate/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogService(t *testing.T) {
	t.Parallel()

	records := func() []*termgate.LogRecord {
		return []*termgate.LogRecord{
			{ID: "r1", DocumentID: "doc-1", OriginalText: "The Mixing Time", Term: "Mixing Time", Accepted: true, Reason: termgate.ReasonAccepted, Timestamp: processedAt},
			{ID: "r2", DocumentID: "doc-1", OriginalText: "cid:31", Term: "cid:31", Reason: termgate.ReasonPDFArtifact, Rule: "artifact-rejection", Timestamp: processedAt},
			{ID: "r3", DocumentID: "doc-2", OriginalText: "et al", Term: "et al", Reason: termgate.ReasonCitationArtifact, Rule: "artifact-rejection", Timestamp: processedAt},
		}
	}

	t.Run("returns records in append order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLogService(db)
		ctx := context.Background()
		require.NoError(t, svc.AppendRecords(ctx, records()))

		got, err := svc.FindRecords(ctx, termgate.LogFilter{})

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "r1", got[0].ID)
		assert.True(t, got[0].Accepted)
		assert.Equal(t, processedAt, got[0].Timestamp)
		assert.Equal(t, "r3", got[2].ID)
	})

	t.Run("filters by verdict fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLogService(db)
		ctx := context.Background()
		require.NoError(t, svc.AppendRecords(ctx, records()))

		rejected := false
		rule := "artifact-rejection"
		got, err := svc.FindRecords(ctx, termgate.LogFilter{Accepted: &rejected, Rule: &rule})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		doc := "doc-2"
		got, err = svc.FindRecords(ctx, termgate.LogFilter{DocumentID: &doc})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, termgate.ReasonCitationArtifact, got[0].Reason)
	})

	t.Run("assigns IDs to records without one", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLogService(db)
		r := &termgate.LogRecord{Term: "Gas", Reason: termgate.ReasonGenericWord, Timestamp: processedAt}

		require.NoError(t, svc.AppendRecords(context.Background(), []*termgate.LogRecord{r}))

		assert.NotEmpty(t, r.ID)
	})

	t.Run("rejects records without reason", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewLogService(db)

		err := svc.AppendRecords(context.Background(), []*termgate.LogRecord{{ID: "x", Timestamp: processedAt}})

		assert.Equal(t, termgate.EINVALID, termgate.ErrorCode(err))
	})
}
