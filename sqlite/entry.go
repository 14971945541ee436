package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagemeta"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagemeta.EntryService = (*EntryService)(nil)

// EntryService implements pagemeta.EntryService using SQLite.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// fingerprint computes an xxHash of the resolved metadata so that changes
// between lookups of the same URL are easy to spot.
func fingerprint(r *pagemeta.Result) string {
	d := xxhash.New()
	for _, s := range []string{r.ResolvedURL, r.Title, r.Author, r.Error} {
		_, _ = d.WriteString(s)
		_, _ = d.WriteString("\x00")
	}
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, d.Sum64()))
}

// CreateEntry records a new entry.
func (s *EntryService) CreateEntry(ctx context.Context, entry *pagemeta.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = uuid.New().String()
	entry.FetchedAt = time.Now().UTC()
	entry.Fingerprint = fingerprint(&entry.Result)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, input_url, resolved_url, title, author, error, fingerprint, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.InputURL, entry.ResolvedURL, entry.Title, entry.Author, entry.Error,
		entry.Fingerprint, formatTimestamp(entry.FetchedAt))

	return err
}

// FindEntries retrieves entries matching the filter, newest first.
func (s *EntryService) FindEntries(ctx context.Context, filter pagemeta.EntryFilter) ([]*pagemeta.Entry, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, input_url, resolved_url, title, author, error, fingerprint, fetched_at FROM entries WHERE 1=1")

	if filter.InputURL != nil {
		query.WriteString(" AND input_url = ?")
		args = append(args, *filter.InputURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*pagemeta.Entry
	for rows.Next() {
		var entry pagemeta.Entry
		var fetchedAt string

		if err := rows.Scan(&entry.ID, &entry.InputURL, &entry.ResolvedURL, &entry.Title,
			&entry.Author, &entry.Error, &entry.Fingerprint, &fetchedAt); err != nil {
			return nil, err
		}

		entry.FetchedAt, err = parseTimestamp(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
