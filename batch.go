package termgate

import "context"

// Batch is everything one document contributes to storage. It is written
// all-or-nothing.
type Batch struct {
	Document *Document
	Entries  []*Entry
	Records  []*LogRecord
}

// Validate returns an error if the batch cannot be committed.
func (b *Batch) Validate() error {
	if b.Document == nil {
		return Errorf(EINVALID, "batch document required")
	}
	if err := b.Document.Validate(); err != nil {
		return err
	}
	if b.Document.Status == DocumentSkipped && len(b.Entries) > 0 {
		return Errorf(EINVALID, "skipped document %q cannot carry entries", b.Document.Path)
	}
	for _, e := range b.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CommitResult reports how a batch's entries were stored.
type CommitResult struct {
	// Created counts entries that did not exist before.
	Created int
	// Merged counts entries whose definitions were appended to an existing entry.
	Merged int
}

// BatchWriter commits batches in a single transaction. Entries whose key
// already exists are merged by appending definitions.
type BatchWriter interface {
	CommitBatch(ctx context.Context, b *Batch) (*CommitResult, error)
}
