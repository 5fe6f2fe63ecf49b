// Package postgres provides PostgreSQL-based storage implementations for
// termgate services, for deployments where several ingest processes share
// one glossary.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/termgate"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB represents a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
	url  string
}

// NewDB creates a new DB instance for the given connection URL.
func NewDB(url string) *DB {
	return &DB{url: url}
}

// Open connects to the database and creates the schema if needed.
func (db *DB) Open(ctx context.Context) error {
	pool, err := pgxpool.New(ctx, db.url)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	db.pool = pool

	if err := db.createSchema(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	if db.pool != nil {
		db.pool.Close()
	}
	return nil
}

func (db *DB) createSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			term TEXT NOT NULL,
			term_key TEXT NOT NULL,
			language TEXT NOT NULL,
			source TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			UNIQUE (term_key, language, source)
		);

		CREATE TABLE IF NOT EXISTS definitions (
			entry_id TEXT NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			text TEXT NOT NULL,
			pages INTEGER[] NOT NULL DEFAULT '{}',
			document_id TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (entry_id, position)
		);

		CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			content_hash TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			page_count INTEGER NOT NULL DEFAULT 0,
			entry_count INTEGER NOT NULL DEFAULT 0,
			processed_at TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS log_records (
			seq BIGSERIAL PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			document_id TEXT NOT NULL DEFAULT '',
			original_text TEXT NOT NULL DEFAULT '',
			term TEXT NOT NULL DEFAULT '',
			accepted BOOLEAN NOT NULL,
			reason TEXT NOT NULL,
			rule TEXT NOT NULL DEFAULT '',
			timestamp TIMESTAMPTZ NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_entries_status ON entries(status);
		CREATE INDEX IF NOT EXISTS idx_documents_content_hash ON documents(content_hash);
		CREATE INDEX IF NOT EXISTS idx_log_records_document_id ON log_records(document_id);
	`

	_, err := db.pool.Exec(ctx, schema)
	return err
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// where accumulates filter conditions with numbered placeholders.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(w.args))))
}

// build writes the WHERE clause, order, and pagination to query.
func (w *where) build(query *strings.Builder, orderBy string, limit, offset int) {
	if len(w.conds) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(w.conds, " AND "))
	}
	query.WriteString(" ORDER BY " + orderBy)
	if limit > 0 {
		w.args = append(w.args, limit)
		query.WriteString(" LIMIT $" + strconv.Itoa(len(w.args)))
	}
	if offset > 0 {
		w.args = append(w.args, offset)
		query.WriteString(" OFFSET $" + strconv.Itoa(len(w.args)))
	}
}

func notFound(err error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return termgate.Errorf(termgate.ENOTFOUND, "%s", msg)
	}
	return err
}
