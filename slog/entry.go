package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingEntryService implements pagemeta.EntryService.
var _ pagemeta.EntryService = (*LoggingEntryService)(nil)

// LoggingEntryService wraps an EntryService with debug logging.
type LoggingEntryService struct {
	next   pagemeta.EntryService
	logger *slog.Logger
}

// NewLoggingEntryService creates a new LoggingEntryService.
func NewLoggingEntryService(next pagemeta.EntryService, logger *slog.Logger) *LoggingEntryService {
	return &LoggingEntryService{next: next, logger: logger}
}

// CreateEntry delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) CreateEntry(ctx context.Context, entry *pagemeta.Entry) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create entry",
			"url", entry.InputURL,
			"id", entry.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEntry(ctx, entry)
}

// FindEntries delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) FindEntries(ctx context.Context, filter pagemeta.EntryFilter) (entries []*pagemeta.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find entries",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx, filter)
}
