package pagemeta

import (
	"context"
	"time"
)

// Entry is a lookup result recorded in the history store.
type Entry struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	FetchedAt   time.Time `json:"fetchedAt"`

	Result
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.InputURL == "" {
		return Errorf(EINVALID, "entry input URL required")
	}
	if e.Error != "" && (e.ResolvedURL != "" || e.Title != "" || e.Author != "") {
		return Errorf(EINVALID, "failed entry must not carry resolved fields")
	}
	return nil
}

// EntryService records and retrieves lookup results.
type EntryService interface {
	// CreateEntry records a new entry. ID, Fingerprint and FetchedAt are
	// assigned by the service.
	CreateEntry(ctx context.Context, entry *Entry) error

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*Entry, error)
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	InputURL *string `json:"inputUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
