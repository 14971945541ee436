package mock

import (
	"context"

	"github.com/fwojciec/pagemeta"
)

var _ pagemeta.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of pagemeta.EntryService.
type EntryService struct {
	CreateEntryFn func(ctx context.Context, entry *pagemeta.Entry) error
	FindEntriesFn func(ctx context.Context, filter pagemeta.EntryFilter) ([]*pagemeta.Entry, error)
}

func (s *EntryService) CreateEntry(ctx context.Context, entry *pagemeta.Entry) error {
	return s.CreateEntryFn(ctx, entry)
}

func (s *EntryService) FindEntries(ctx context.Context, filter pagemeta.EntryFilter) ([]*pagemeta.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}
