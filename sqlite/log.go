package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/termgate"
	"github.com/oklog/ulid/v2"
)

// Compile-time interface verification.
var _ termgate.LogService = (*LogService)(nil)

// LogService implements termgate.LogService using SQLite.
type LogService struct {
	db *DB
}

// NewLogService creates a new LogService.
func NewLogService(db *DB) *LogService {
	return &LogService{db: db}
}

// AppendRecords appends records to the log in one transaction.
func (s *LogService) AppendRecords(ctx context.Context, records []*termgate.LogRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertRecords(ctx, tx, records); err != nil {
		return err
	}
	return tx.Commit()
}

// FindRecords retrieves records matching the filter in append order.
func (s *LogService) FindRecords(ctx context.Context, filter termgate.LogFilter) ([]*termgate.LogRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, document_id, original_text, term, accepted, reason, rule, timestamp FROM log_records WHERE 1=1")

	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}
	if filter.Accepted != nil {
		query.WriteString(" AND accepted = ?")
		args = append(args, boolToInt(*filter.Accepted))
	}
	if filter.Reason != nil {
		query.WriteString(" AND reason = ?")
		args = append(args, *filter.Reason)
	}
	if filter.Rule != nil {
		query.WriteString(" AND rule = ?")
		args = append(args, *filter.Rule)
	}

	query.WriteString(" ORDER BY seq ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*termgate.LogRecord
	for rows.Next() {
		var r termgate.LogRecord
		var accepted int
		var timestamp string
		if err := rows.Scan(&r.ID, &r.DocumentID, &r.OriginalText, &r.Term, &accepted,
			&r.Reason, &r.Rule, &timestamp); err != nil {
			return nil, err
		}
		r.Accepted = accepted != 0
		if r.Timestamp, err = parseRFC3339(timestamp, "timestamp"); err != nil {
			return nil, err
		}
		records = append(records, &r)
	}

	return records, rows.Err()
}

func insertRecords(ctx context.Context, q queryer, records []*termgate.LogRecord) error {
	for _, r := range records {
		if r.ID == "" {
			r.ID = ulid.Make().String()
		}
		if r.Reason == "" {
			return termgate.Errorf(termgate.EINVALID, "log record reason required")
		}
		if _, err := q.ExecContext(ctx, `
			INSERT INTO log_records (id, document_id, original_text, term, accepted, reason, rule, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, r.ID, r.DocumentID, r.OriginalText, r.Term, boolToInt(r.Accepted), r.Reason, r.Rule,
			formatTime(r.Timestamp)); err != nil {
			return err
		}
	}
	return nil
}
