package mock

import (
	"context"

	"github.com/fwojciec/termgate"
)

var _ termgate.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of termgate.DocumentReader.
type DocumentReader struct {
	ReadFn func(ctx context.Context, path string) ([]termgate.Page, error)
}

func (r *DocumentReader) Read(ctx context.Context, path string) ([]termgate.Page, error) {
	return r.ReadFn(ctx, path)
}
