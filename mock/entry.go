package mock

import (
	"context"

	"github.com/fwojciec/termgate"
)

var _ termgate.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of termgate.EntryService.
type EntryService struct {
	FindEntryByIDFn     func(ctx context.Context, id string) (*termgate.Entry, error)
	FindEntryByKeyFn    func(ctx context.Context, key termgate.EntryKey) (*termgate.Entry, error)
	FindEntriesFn       func(ctx context.Context, filter termgate.EntryFilter) ([]*termgate.Entry, error)
	UpdateEntryStatusFn func(ctx context.Context, id string, status termgate.ValidationStatus) error
	DeleteEntryFn       func(ctx context.Context, id string) error
}

func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*termgate.Entry, error) {
	return s.FindEntryByIDFn(ctx, id)
}

func (s *EntryService) FindEntryByKey(ctx context.Context, key termgate.EntryKey) (*termgate.Entry, error) {
	return s.FindEntryByKeyFn(ctx, key)
}

func (s *EntryService) FindEntries(ctx context.Context, filter termgate.EntryFilter) ([]*termgate.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) UpdateEntryStatus(ctx context.Context, id string, status termgate.ValidationStatus) error {
	return s.UpdateEntryStatusFn(ctx, id, status)
}

func (s *EntryService) DeleteEntry(ctx context.Context, id string) error {
	return s.DeleteEntryFn(ctx, id)
}
