package postgres

import (
	"context"
	"time"

	"github.com/fwojciec/termgate"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ termgate.BatchWriter = (*BatchWriter)(nil)

// BatchWriter implements termgate.BatchWriter using PostgreSQL.
type BatchWriter struct {
	db *DB
}

// NewBatchWriter creates a new BatchWriter.
func NewBatchWriter(db *DB) *BatchWriter {
	return &BatchWriter{db: db}
}

// CommitBatch writes the document record, upserts entries, and appends log
// records in one transaction. Concurrent writers of the same key serialize on
// the entry row locked by the upsert.
func (w *BatchWriter) CommitBatch(ctx context.Context, b *termgate.Batch) (*termgate.CommitResult, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	tx, err := w.db.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()
	res := &termgate.CommitResult{}

	for _, e := range b.Entries {
		created, err := upsertEntry(ctx, tx, e, now)
		if err != nil {
			return nil, err
		}
		if created {
			res.Created++
		} else {
			res.Merged++
		}
	}

	if err := insertDocument(ctx, tx, b.Document); err != nil {
		return nil, err
	}
	if err := insertRecords(ctx, tx, b.Records); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// upsertEntry inserts e, or locks the existing row with the same key and
// merges e's definitions into it. On return e reflects the stored row.
func upsertEntry(ctx context.Context, q querier, e *termgate.Entry, now time.Time) (bool, error) {
	key := e.Key()

	id := e.ID
	if id == "" {
		id = uuid.New().String()
	}
	status := e.Status
	if status == "" {
		status = termgate.StatusPending
	}

	stored := *e
	stored.Definitions = nil
	var inserted bool
	err := q.QueryRow(ctx, `
		INSERT INTO entries (id, term, term_key, language, source, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (term_key, language, source) DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id, term, status, created_at, updated_at, (xmax = 0)
	`, id, e.Term, key.Term, e.Language, e.Source, status, now).Scan(
		&stored.ID, &stored.Term, &stored.Status, &stored.CreatedAt, &stored.UpdatedAt, &inserted)
	if err != nil {
		return false, err
	}
	stored.CreatedAt = stored.CreatedAt.UTC()
	stored.UpdatedAt = stored.UpdatedAt.UTC()

	if !inserted {
		if err := loadDefinitions(ctx, q, []*termgate.Entry{&stored}); err != nil {
			return false, err
		}
	}
	for _, d := range e.Definitions {
		stored.AddDefinition(d)
	}
	if err := writeDefinitions(ctx, q, &stored); err != nil {
		return false, err
	}

	*e = stored
	return inserted, nil
}
