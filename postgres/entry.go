package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/termgate"
	"github.com/jackc/pgx/v5"
)

// Compile-time interface verification.
var _ termgate.EntryService = (*EntryService)(nil)

// EntryService implements termgate.EntryService using PostgreSQL.
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
	e, err := scanEntry(s.db.pool.QueryRow(ctx, "SELECT "+entryColumns+" FROM entries WHERE id = $1", id))
	if err != nil {
		return nil, err
	}
	if err := loadDefinitions(ctx, s.db.pool, []*termgate.Entry{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// FindEntryByKey retrieves the entry with the given key.
func (s *EntryService) FindEntryByKey(ctx context.Context, key termgate.EntryKey) (*termgate.Entry, error) {
	e, err := scanEntry(s.db.pool.QueryRow(ctx,
		"SELECT "+entryColumns+" FROM entries WHERE term_key = $1 AND language = $2 AND source = $3",
		key.Term, key.Language, key.Source))
	if err != nil {
		return nil, err
	}
	if err := loadDefinitions(ctx, s.db.pool, []*termgate.Entry{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// FindEntries retrieves entries matching the filter, ordered by term.
func (s *EntryService) FindEntries(ctx context.Context, filter termgate.EntryFilter) ([]*termgate.Entry, error) {
	var w where
	if filter.Term != nil {
		w.add("term_key LIKE ?", "%"+termgate.NewEntryKey(*filter.Term, "", "").Term+"%")
	}
	if filter.Language != nil {
		w.add("language = ?", *filter.Language)
	}
	if filter.Source != nil {
		w.add("source = ?", *filter.Source)
	}
	if filter.Status != nil {
		w.add("status = ?", *filter.Status)
	}

	var query strings.Builder
	query.WriteString("SELECT " + entryColumns + " FROM entries")
	w.build(&query, "term_key, language, source", filter.Limit, filter.Offset)

	rows, err := s.db.pool.Query(ctx, query.String(), w.args...)
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

	if err := loadDefinitions(ctx, s.db.pool, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateEntryStatus sets the validation status of an entry.
func (s *EntryService) UpdateEntryStatus(ctx context.Context, id string, status termgate.ValidationStatus) error {
	if _, err := termgate.ParseValidationStatus(string(status)); err != nil {
		return err
	}
	tag, err := s.db.pool.Exec(ctx, "UPDATE entries SET status = $2, updated_at = $3 WHERE id = $1",
		id, status, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return termgate.Errorf(termgate.ENOTFOUND, "entry not found")
	}
	return nil
}

// DeleteEntry permanently removes an entry and its definitions.
func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	tag, err := s.db.pool.Exec(ctx, "DELETE FROM entries WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return termgate.Errorf(termgate.ENOTFOUND, "entry not found")
	}
	return nil
}

func scanEntry(row pgx.Row) (*termgate.Entry, error) {
	var e termgate.Entry
	err := row.Scan(&e.ID, &e.Term, &e.Language, &e.Source, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "entry not found")
	}
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}

// loadDefinitions fills in the definitions of entries in position order.
func loadDefinitions(ctx context.Context, q querier, entries []*termgate.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	byID := make(map[string]*termgate.Entry, len(entries))
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	rows, err := q.Query(ctx, `
		SELECT entry_id, text, pages, document_id
		FROM definitions
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, position
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var entryID string
		var d termgate.Definition
		if err := rows.Scan(&entryID, &d.Text, &d.Pages, &d.DocumentID); err != nil {
			return err
		}
		byID[entryID].Definitions = append(byID[entryID].Definitions, d)
	}
	return rows.Err()
}

// writeDefinitions replaces the stored definitions of e.
func writeDefinitions(ctx context.Context, q querier, e *termgate.Entry) error {
	if _, err := q.Exec(ctx, "DELETE FROM definitions WHERE entry_id = $1", e.ID); err != nil {
		return err
	}
	for i, d := range e.Definitions {
		pages := d.Pages
		if pages == nil {
			pages = []int{}
		}
		if _, err := q.Exec(ctx, `
			INSERT INTO definitions (entry_id, position, text, pages, document_id)
			VALUES ($1, $2, $3, $4, $5)
		`, e.ID, i, d.Text, pages, d.DocumentID); err != nil {
			return err
		}
	}
	return nil
}
