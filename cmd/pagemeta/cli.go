package main

import (
	"time"

	pmhttp "github.com/fwojciec/pagemeta/http"
)

const (
	fallbackTrafilatura = "trafilatura"
	fallbackReadability = "readability"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout     time.Duration `short:"t" default:"15s" help:"Fetch timeout"`
	UserAgent   string        `name:"user-agent" default:"${user_agent}" help:"User-Agent header sent with requests"`
	Render      bool          `short:"r" help:"Render the page in a headless browser before extracting"`
	Impersonate bool          `help:"Use a browser TLS fingerprint for HTTPS requests"`
	Fallback    string        `enum:"none,trafilatura,readability" default:"none" help:"Extractor consulted for fields the meta tags leave empty (${enum})"`
	DB          string        `name:"db" env:"PAGEMETA_DB" help:"SQLite database recording every lookup"`
	History     bool          `help:"Print recorded lookups for the URL instead of fetching it"`
	Verbose     bool          `short:"v" help:"Log fetch and resolution details to stderr"`
	URL         string        `arg:"" required:"" help:"URL of the page to inspect"`
}

// vars supplies interpolated defaults for CLI struct tags.
var vars = map[string]string{
	"user_agent": pmhttp.DefaultUserAgent,
}
