package mock

import (
	"context"

	"github.com/fwojciec/termgate"
)

var _ termgate.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of termgate.DocumentService.
type DocumentService struct {
	FindDocumentByHashFn func(ctx context.Context, hash string, source termgate.Source, lang termgate.Language) (*termgate.Document, error)
	FindDocumentsFn      func(ctx context.Context, filter termgate.DocumentFilter) ([]*termgate.Document, error)
}

func (s *DocumentService) FindDocumentByHash(ctx context.Context, hash string, source termgate.Source, lang termgate.Language) (*termgate.Document, error) {
	return s.FindDocumentByHashFn(ctx, hash, source, lang)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter termgate.DocumentFilter) ([]*termgate.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}
