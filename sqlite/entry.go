package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/termgate"
)

// Compile-time interface verification.
var _ termgate.EntryService = (*EntryService)(nil)

// EntryService implements termgate.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

const entryColumns = "id, term, language, source, status, created_at, updated_at"

// FindEntryByID retrieves an entry by ID.
func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*termgate.Entry, error) {
	e, err := scanEntry(s.db.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM entries WHERE id = ?", id))
	if err != nil {
		return nil, err
	}
	if err := loadDefinitions(ctx, s.db, []*termgate.Entry{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// FindEntryByKey retrieves the entry with the given key.
func (s *EntryService) FindEntryByKey(ctx context.Context, key termgate.EntryKey) (*termgate.Entry, error) {
	return findEntryByKey(ctx, s.db, key)
}

// FindEntries retrieves entries matching the filter, ordered by term.
// Term filters match case-insensitively anywhere in the term.
func (s *EntryService) FindEntries(ctx context.Context, filter termgate.EntryFilter) ([]*termgate.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + entryColumns + " FROM entries WHERE 1=1")

	if filter.Term != nil {
		query.WriteString(" AND term_key LIKE ?")
		args = append(args, "%"+termgate.NewEntryKey(*filter.Term, "", "").Term+"%")
	}
	if filter.Language != nil {
		query.WriteString(" AND language = ?")
		args = append(args, *filter.Language)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	query.WriteString(" ORDER BY term_key ASC, language ASC, source ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*termgate.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := loadDefinitions(ctx, s.db, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateEntryStatus sets the validation status of an entry.
func (s *EntryService) UpdateEntryStatus(ctx context.Context, id string, status termgate.ValidationStatus) error {
	if _, err := termgate.ParseValidationStatus(string(status)); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "UPDATE entries SET status = ?, updated_at = ? WHERE id = ?",
		status, formatTime(time.Now()), id)
	if err != nil {
		return err
	}
	return requireAffected(result, "entry not found")
}

// DeleteEntry permanently removes an entry and its definitions.
func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(result, "entry not found")
}

func requireAffected(result sql.Result, msg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return termgate.Errorf(termgate.ENOTFOUND, "%s", msg)
	}
	return nil
}

func findEntryByKey(ctx context.Context, q queryer, key termgate.EntryKey) (*termgate.Entry, error) {
	e, err := scanEntry(q.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM entries WHERE term_key = ? AND language = ? AND source = ?",
		key.Term, key.Language, key.Source))
	if err != nil {
		return nil, err
	}
	if err := loadDefinitions(ctx, q, []*termgate.Entry{e}); err != nil {
		return nil, err
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*termgate.Entry, error) {
	var e termgate.Entry
	var createdAt, updatedAt string

	err := row.Scan(&e.ID, &e.Term, &e.Language, &e.Source, &e.Status, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, termgate.Errorf(termgate.ENOTFOUND, "entry not found")
	}
	if err != nil {
		return nil, err
	}

	if e.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &e, nil
}

// loadDefinitions fills in the definitions of entries in position order.
func loadDefinitions(ctx context.Context, q queryer, entries []*termgate.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	byID := make(map[string]*termgate.Entry, len(entries))
	args := make([]any, 0, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
		args = append(args, e.ID)
	}

	query := "SELECT entry_id, text, pages, document_id FROM definitions WHERE entry_id IN (?" +
		strings.Repeat(", ?", len(entries)-1) + ") ORDER BY entry_id, position"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, pages string
		var d termgate.Definition
		if err := rows.Scan(&entryID, &d.Text, &pages, &d.DocumentID); err != nil {
			return err
		}
		if d.Pages, err = decodePages(pages); err != nil {
			return err
		}
		e := byID[entryID]
		e.Definitions = append(e.Definitions, d)
	}
	return rows.Err()
}

// writeDefinitions replaces the stored definitions of e.
func writeDefinitions(ctx context.Context, q queryer, e *termgate.Entry) error {
	if _, err := q.ExecContext(ctx, "DELETE FROM definitions WHERE entry_id = ?", e.ID); err != nil {
		return err
	}
	for i, d := range e.Definitions {
		pages, err := encodePages(d.Pages)
		if err != nil {
			return err
		}
		if _, err := q.ExecContext(ctx, `
			INSERT INTO definitions (entry_id, position, text, text_hash, pages, document_id)
			VALUES (?, ?, ?, ?, ?, ?)
		`, e.ID, i, d.Text, hashText(d.Text), pages, d.DocumentID); err != nil {
			return err
		}
	}
	return nil
}
