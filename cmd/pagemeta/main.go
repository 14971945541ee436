package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	pmhttp "github.com/fwojciec/pagemeta/http"
	"github.com/fwojciec/pagemeta/lookup"
	"github.com/fwojciec/pagemeta/readability"
	"github.com/fwojciec/pagemeta/resolve"
	"github.com/fwojciec/pagemeta/rod"
	pmslog "github.com/fwojciec/pagemeta/slog"
	"github.com/fwojciec/pagemeta/sqlite"
	"github.com/fwojciec/pagemeta/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used when a history path is configured.
	DB *sqlite.DB

	// Services for end-to-end testing. When set, they replace the ones
	// built from flags and are not closed by Main.
	Fetcher       pagemeta.Fetcher
	EntryService  pagemeta.EntryService
	LookupService pagemeta.LookupService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemeta"),
		kong.Description("Fetch a web page and print its title and author as JSON"),
		kong.Writers(stdout, stderr),
		kong.Vars(vars),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Usage goes to stderr so stdout never carries anything but JSON.
	if len(args) == 0 {
		parser.Stdout = stderr
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL provided")
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(cli.Verbose, stderr)

	entries, err := m.openEntries(cli.DB, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	if cli.History {
		if entries == nil {
			return fmt.Errorf("--history requires --db or PAGEMETA_DB")
		}
		return printHistory(ctx, stdout, entries, cli.URL)
	}

	svc, closeFn, err := m.lookupService(cli, logger, stderr)
	if err != nil {
		return err
	}
	defer closeFn()

	result := svc.Lookup(ctx, cli.URL)
	if result.Failed() {
		logger.Warn("lookup failed", "url", result.InputURL, "code", result.Error)
	}

	if entries != nil {
		if err := entries.CreateEntry(ctx, &pagemeta.Entry{Result: *result}); err != nil {
			fmt.Fprintf(stderr, "Warning: failed to record entry: %v\n", err)
		}
	}

	return writeJSON(stdout, result)
}

// openEntries returns the history store, or nil when none is configured.
func (m *Main) openEntries(path string, logger *slog.Logger) (pagemeta.EntryService, error) {
	if m.EntryService != nil {
		return pmslog.NewLoggingEntryService(m.EntryService, logger), nil
	}
	if path == "" {
		return nil, nil
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return pmslog.NewLoggingEntryService(sqlite.NewEntryService(m.DB), logger), nil
}

// lookupService returns the injected service or wires one from flags. The
// returned func releases the fetcher when Main owns it.
func (m *Main) lookupService(cli *CLI, logger *slog.Logger, stderr io.Writer) (pagemeta.LookupService, func(), error) {
	if m.LookupService != nil {
		return m.LookupService, func() {}, nil
	}

	fetcher, err := m.fetcher(cli, stderr)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {}
	if m.Fetcher == nil {
		closeFn = func() { _ = fetcher.Close() }
	}

	return &lookup.Service{
		Fetcher:  pmslog.NewLoggingFetcher(fetcher, logger),
		Parser:   goquery.NewParser(),
		Resolver: pmslog.NewLoggingResolver(resolve.NewResolver(), logger),
		Fallback: newFallback(cli.Fallback),
	}, closeFn, nil
}

// fetcher returns the injected fetcher or builds one from flags.
func (m *Main) fetcher(cli *CLI, stderr io.Writer) (pagemeta.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	if cli.Render {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}

	opts := []pmhttp.Option{
		pmhttp.WithTimeout(cli.Timeout),
		pmhttp.WithUserAgent(cli.UserAgent),
	}
	if cli.Impersonate {
		opts = append(opts, pmhttp.WithBrowserTLS())
	}
	return pmhttp.NewFetcher(opts...), nil
}

func newFallback(name string) pagemeta.Extractor {
	switch name {
	case fallbackTrafilatura:
		return trafilatura.NewExtractor()
	case fallbackReadability:
		return readability.NewExtractor()
	default:
		return nil
	}
}

func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
