package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEntryService_CreateEntry(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, fingerprint and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEntryService(setupTestDB(t))

		entry := &pagemeta.Entry{Result: pagemeta.Result{
			InputURL:    "https://example.com",
			ResolvedURL: "https://example.com/",
			Title:       "Sample Page Title",
			Author:      "John Doe",
		}}

		err := svc.CreateEntry(context.Background(), entry)
		require.NoError(t, err)

		assert.NotEmpty(t, entry.ID, "ID should be generated")
		assert.Len(t, entry.Fingerprint, 16, "Fingerprint should be a hex xxhash")
		assert.False(t, entry.FetchedAt.IsZero(), "FetchedAt should be set")
	})

	t.Run("returns error for invalid entry", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEntryService(setupTestDB(t))

		err := svc.CreateEntry(context.Background(), &pagemeta.Entry{})
		require.Error(t, err)
		assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
	})

	t.Run("same metadata yields same fingerprint", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEntryService(setupTestDB(t))
		ctx := context.Background()
		result := pagemeta.Result{InputURL: "https://example.com", Title: "Home"}

		a := &pagemeta.Entry{Result: result}
		b := &pagemeta.Entry{Result: result}
		c := &pagemeta.Entry{Result: pagemeta.Result{InputURL: "https://example.com", Title: "Home v2"}}
		require.NoError(t, svc.CreateEntry(ctx, a))
		require.NoError(t, svc.CreateEntry(ctx, b))
		require.NoError(t, svc.CreateEntry(ctx, c))

		assert.Equal(t, a.Fingerprint, b.Fingerprint)
		assert.NotEqual(t, a.Fingerprint, c.Fingerprint)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestEntryService_FindEntries(t *testing.T) {
	t.Parallel()

	t.Run("round-trips entry fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEntryService(setupTestDB(t))
		ctx := context.Background()

		entry := &pagemeta.Entry{Result: pagemeta.Result{InputURL: "https://example.com/slow", Error: pagemeta.ETIMEOUT}}
		require.NoError(t, svc.CreateEntry(ctx, entry))

		found, err := svc.FindEntries(ctx, pagemeta.EntryFilter{})
		require.NoError(t, err)
		require.Len(t, found, 1)

		assert.Equal(t, entry.ID, found[0].ID)
		assert.Equal(t, entry.Fingerprint, found[0].Fingerprint)
		assert.Equal(t, entry.Result, found[0].Result)
		assert.True(t, entry.FetchedAt.Equal(found[0].FetchedAt))
	})

	t.Run("filters by input URL newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEntryService(setupTestDB(t))
		ctx := context.Background()

		for _, title := range []string{"First", "Second"} {
			require.NoError(t, svc.CreateEntry(ctx, &pagemeta.Entry{Result: pagemeta.Result{
				InputURL: "https://example.com/a",
				Title:    title,
			}}))
		}
		require.NoError(t, svc.CreateEntry(ctx, &pagemeta.Entry{Result: pagemeta.Result{
			InputURL: "https://example.com/b",
			Title:    "Other",
		}}))

		found, err := svc.FindEntries(ctx, pagemeta.EntryFilter{InputURL: strPtr("https://example.com/a")})
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "Second", found[0].Title)
		assert.Equal(t, "First", found[1].Title)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEntryService(setupTestDB(t))
		ctx := context.Background()

		for _, title := range []string{"One", "Two", "Three"} {
			require.NoError(t, svc.CreateEntry(ctx, &pagemeta.Entry{Result: pagemeta.Result{
				InputURL: "https://example.com",
				Title:    title,
			}}))
		}

		found, err := svc.FindEntries(ctx, pagemeta.EntryFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Two", found[0].Title)

		found, err = svc.FindEntries(ctx, pagemeta.EntryFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "One", found[0].Title)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewEntryService(setupTestDB(t))

		found, err := svc.FindEntries(context.Background(), pagemeta.EntryFilter{InputURL: strPtr("https://nowhere.example")})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
