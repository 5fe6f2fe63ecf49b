package postgres

import (
	"context"
	"strings"

	"github.com/fwojciec/termgate"
	"github.com/jackc/pgx/v5"
)

// Compile-time interface verification.
var _ termgate.DocumentService = (*DocumentService)(nil)

// DocumentService implements termgate.DocumentService using PostgreSQL.
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
	return scanDocument(s.db.pool.QueryRow(ctx, "SELECT "+documentColumns+`
		FROM documents
		WHERE content_hash = $1 AND source = $2 AND language = $3 AND status = $4
		ORDER BY processed_at DESC
		LIMIT 1
	`, hash, string(source), string(lang), termgate.DocumentCommitted))
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter termgate.DocumentFilter) ([]*termgate.Document, error) {
	var w where
	if filter.ID != nil {
		w.add("id = ?", *filter.ID)
	}
	if filter.Path != nil {
		w.add("path = ?", *filter.Path)
	}
	if filter.Status != nil {
		w.add("status = ?", *filter.Status)
	}

	var query strings.Builder
	query.WriteString("SELECT " + documentColumns + " FROM documents")
	w.build(&query, "processed_at DESC, id", filter.Limit, filter.Offset)

	rows, err := s.db.pool.Query(ctx, query.String(), w.args...)
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

func scanDocument(row pgx.Row) (*termgate.Document, error) {
	var doc termgate.Document
	err := row.Scan(&doc.ID, &doc.Path, &doc.ContentHash, &doc.Language, &doc.Source,
		&doc.Status, &doc.Error, &doc.PageCount, &doc.EntryCount, &doc.ProcessedAt)
	if err != nil {
		return nil, notFound(err, "document not found")
	}
	doc.ProcessedAt = doc.ProcessedAt.UTC()
	return &doc, nil
}

func insertDocument(ctx context.Context, q querier, doc *termgate.Document) error {
	_, err := q.Exec(ctx, `
		INSERT INTO documents (id, path, content_hash, language, source, status, error, page_count, entry_count, processed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, doc.ID, doc.Path, doc.ContentHash, doc.Language, doc.Source, doc.Status, doc.Error,
		doc.PageCount, doc.EntryCount, doc.ProcessedAt)
	return err
}
