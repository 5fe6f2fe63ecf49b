package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fwojciec/termgate"
)

// Compile-time interface verification.
var _ termgate.DocumentService = (*DocumentService)(nil)

// DocumentService implements termgate.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

const documentColumns = "id, path, content_hash, language, source, status, error, page_count, entry_count, processed_at"

// FindDocumentByHash retrieves the most recent committed document with the
// given content hash, source, and language.
func (s *DocumentService) FindDocumentByHash(ctx context.Context, hash string, source termgate.Source, lang termgate.Language) (*termgate.Document, error) {
	return scanDocument(s.db.QueryRowContext(ctx, "SELECT "+documentColumns+`
		FROM documents
		WHERE content_hash = ? AND source = ? AND language = ? AND status = ?
		ORDER BY processed_at DESC
		LIMIT 1
	`, hash, source, lang, termgate.DocumentCommitted))
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter termgate.DocumentFilter) ([]*termgate.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}

	query.WriteString(" ORDER BY processed_at DESC, id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*termgate.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func scanDocument(row scanner) (*termgate.Document, error) {
	var doc termgate.Document
	var processedAt string

	err := row.Scan(&doc.ID, &doc.Path, &doc.ContentHash, &doc.Language, &doc.Source,
		&doc.Status, &doc.Error, &doc.PageCount, &doc.EntryCount, &processedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, termgate.Errorf(termgate.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	if doc.ProcessedAt, err = parseRFC3339(processedAt, "processed_at"); err != nil {
		return nil, err
	}
	return &doc, nil
}

func insertDocument(ctx context.Context, q queryer, doc *termgate.Document) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO documents (id, path, content_hash, language, source, status, error, page_count, entry_count, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Path, doc.ContentHash, doc.Language, doc.Source, doc.Status, doc.Error,
		doc.PageCount, doc.EntryCount, formatTime(doc.ProcessedAt))
	return err
}
