package termgate

import (
	"context"
	"time"
)

// DocumentStatus is the outcome of processing a document.
type DocumentStatus string

// Document statuses.
const (
	DocumentCommitted DocumentStatus = "committed"
	DocumentSkipped   DocumentStatus = "skipped"
)

// Document records what happened to one processed source document: either a
// committed batch of entries or a skip with the error that caused it.
type Document struct {
	ID          string         `json:"id"`
	Path        string         `json:"path"`
	ContentHash string         `json:"contentHash"`
	Language    Language       `json:"language"`
	Source      Source         `json:"source"`
	Status      DocumentStatus `json:"status"`
	Error       string         `json:"error,omitempty"`
	PageCount   int            `json:"pageCount"`
	EntryCount  int            `json:"entryCount"`
	ProcessedAt time.Time      `json:"processedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	switch d.Status {
	case DocumentCommitted, DocumentSkipped:
	default:
		return Errorf(EINVALID, "invalid document status %q", d.Status)
	}
	return nil
}

// DocumentService represents a service for querying processed documents.
type DocumentService interface {
	// FindDocumentByHash retrieves the most recent committed document with
	// the given content hash, source, and language.
	// Returns ENOTFOUND if no such document exists.
	FindDocumentByHash(ctx context.Context, hash string, source Source, lang Language) (*Document, error)

	// FindDocuments retrieves documents matching the filter, newest first.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID     *string         `json:"id"`
	Path   *string         `json:"path"`
	Status *DocumentStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
