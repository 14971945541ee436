// Package resolve picks the best title and author of a parsed page from
// ordered chains of probes.
package resolve

import (
	"strconv"
	"strings"

	"github.com/fwojciec/pagemeta"
)

// Probe is a single lookup against a document. It returns the candidate
// value or "" when the signal is missing.
type Probe func(doc pagemeta.Document) string

// FirstNonBlank evaluates probes in order and returns the first candidate
// that is not blank, trimmed. Later probes are not evaluated.
// Returns "" when every probe comes up blank.
func FirstNonBlank(doc pagemeta.Document, probes []Probe) string {
	for _, probe := range probes {
		if v := strings.TrimSpace(probe(doc)); v != "" {
			return v
		}
	}
	return ""
}

// MetaProperty reads the content attribute of <meta property="...">. The
// property value is matched case-insensitively.
func MetaProperty(property string) Probe {
	return Attr("meta[property="+strconv.Quote(property)+" i]", "content")
}

// MetaName reads the content attribute of <meta name="...">, ignoring the
// case of the name value.
func MetaName(name string) Probe {
	return Attr("meta[name="+strconv.Quote(name)+" i]", "content")
}

// Attr reads attribute attr of the first element matching selector.
func Attr(selector, attr string) Probe {
	return func(doc pagemeta.Document) string {
		el, ok := doc.First(selector)
		if !ok {
			return ""
		}
		return el.Attr(attr)
	}
}

// ElementText reads the visible text of the first element matching selector.
func ElementText(selector string) Probe {
	return func(doc pagemeta.Document) string {
		el, ok := doc.First(selector)
		if !ok {
			return ""
		}
		return el.Text()
	}
}
