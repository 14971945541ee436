package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fwojciec/pagemeta"
)

// writeJSON encodes v as indented JSON. HTML characters are left unescaped
// so titles read the same as on the page.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// printHistory writes the recorded entries for url as a JSON array.
func printHistory(ctx context.Context, w io.Writer, entries pagemeta.EntryService, url string) error {
	found, err := entries.FindEntries(ctx, pagemeta.EntryFilter{InputURL: &url})
	if err != nil {
		return err
	}
	if found == nil {
		found = []*pagemeta.Entry{}
	}
	return writeJSON(w, found)
}
