package sqlite

import (
	"context"
	"time"

	"github.com/fwojciec/termgate"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ termgate.BatchWriter = (*BatchWriter)(nil)

// BatchWriter implements termgate.BatchWriter using SQLite.
type BatchWriter struct {
	db *DB
}

// NewBatchWriter creates a new BatchWriter.
func NewBatchWriter(db *DB) *BatchWriter {
	return &BatchWriter{db: db}
}

// CommitBatch writes the document record, upserts entries, and appends log
// records in one transaction. An entry whose key already exists receives the
// new definitions; its status and display term are kept.
func (w *BatchWriter) CommitBatch(ctx context.Context, b *termgate.Batch) (*termgate.CommitResult, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

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

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

// upsertEntry inserts e or merges its definitions into the stored entry with
// the same key. On return e reflects the stored row.
func upsertEntry(ctx context.Context, q queryer, e *termgate.Entry, now time.Time) (bool, error) {
	key := e.Key()

	existing, err := findEntryByKey(ctx, q, key)
	if termgate.ErrorCode(err) == termgate.ENOTFOUND {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if e.Status == "" {
			e.Status = termgate.StatusPending
		}
		e.CreatedAt = now
		e.UpdatedAt = now

		if _, err := q.ExecContext(ctx, `
			INSERT INTO entries (id, term, term_key, language, source, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, e.ID, e.Term, key.Term, e.Language, e.Source, e.Status,
			formatTime(e.CreatedAt), formatTime(e.UpdatedAt)); err != nil {
			return false, err
		}
		return true, writeDefinitions(ctx, q, e)
	} else if err != nil {
		return false, err
	}

	for _, d := range e.Definitions {
		existing.AddDefinition(d)
	}
	existing.UpdatedAt = now

	if _, err := q.ExecContext(ctx, "UPDATE entries SET updated_at = ? WHERE id = ?",
		formatTime(existing.UpdatedAt), existing.ID); err != nil {
		return false, err
	}
	if err := writeDefinitions(ctx, q, existing); err != nil {
		return false, err
	}

	*e = *existing
	return false, nil
}
