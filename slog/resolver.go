package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingResolver implements pagemeta.FieldResolver.
var _ pagemeta.FieldResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a FieldResolver with debug logging.
type LoggingResolver struct {
	next   pagemeta.FieldResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next pagemeta.FieldResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs what was found.
func (r *LoggingResolver) Resolve(doc pagemeta.Document) (fields pagemeta.Fields) {
	defer func(begin time.Time) {
		r.logger.Info("resolve",
			"title", fields.Title,
			"author", fields.Author,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Resolve(doc)
}
