package mock

import (
	"context"

	"github.com/fwojciec/pagemeta"
)

var _ pagemeta.LookupService = (*LookupService)(nil)

// LookupService is a mock implementation of pagemeta.LookupService.
type LookupService struct {
	LookupFn func(ctx context.Context, url string) *pagemeta.Result
}

func (s *LookupService) Lookup(ctx context.Context, url string) *pagemeta.Result {
	return s.LookupFn(ctx, url)
}
