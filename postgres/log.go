package postgres

import (
	"context"
	"strings"

	"github.com/fwojciec/termgate"
	"github.com/oklog/ulid/v2"
)

// Compile-time interface verification.
var _ termgate.LogService = (*LogService)(nil)

// LogService implements termgate.LogService using PostgreSQL.
type LogService struct {
	db *DB
}

// NewLogService creates a new LogService.
func NewLogService(db *DB) *LogService {
	return &LogService{db: db}
}

// AppendRecords appends records to the log in one transaction.
func (s *LogService) AppendRecords(ctx context.Context, records []*termgate.LogRecord) error {
	tx, err := s.db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertRecords(ctx, tx, records); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// FindRecords retrieves records matching the filter in append order.
func (s *LogService) FindRecords(ctx context.Context, filter termgate.LogFilter) ([]*termgate.LogRecord, error) {
	var w where
	if filter.DocumentID != nil {
		w.add("document_id = ?", *filter.DocumentID)
	}
	if filter.Accepted != nil {
		w.add("accepted = ?", *filter.Accepted)
	}
	if filter.Reason != nil {
		w.add("reason = ?", *filter.Reason)
	}
	if filter.Rule != nil {
		w.add("rule = ?", *filter.Rule)
	}

	var query strings.Builder
	query.WriteString("SELECT id, document_id, original_text, term, accepted, reason, rule, timestamp FROM log_records")
	w.build(&query, "seq", filter.Limit, filter.Offset)

	rows, err := s.db.pool.Query(ctx, query.String(), w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*termgate.LogRecord
	for rows.Next() {
		var r termgate.LogRecord
		if err := rows.Scan(&r.ID, &r.DocumentID, &r.OriginalText, &r.Term, &r.Accepted,
			&r.Reason, &r.Rule, &r.Timestamp); err != nil {
			return nil, err
		}
		r.Timestamp = r.Timestamp.UTC()
		records = append(records, &r)
	}
	return records, rows.Err()
}

func insertRecords(ctx context.Context, q querier, records []*termgate.LogRecord) error {
	for _, r := range records {
		if r.ID == "" {
			r.ID = ulid.Make().String()
		}
		if r.Reason == "" {
			return termgate.Errorf(termgate.EINVALID, "log record reason required")
		}
		if _, err := q.Exec(ctx, `
			INSERT INTO log_records (id, document_id, original_text, term, accepted, reason, rule, timestamp)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, r.ID, r.DocumentID, r.OriginalText, r.Term, r.Accepted, r.Reason, r.Rule, r.Timestamp); err != nil {
			return err
		}
	}
	return nil
}
