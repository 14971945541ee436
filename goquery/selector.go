package goquery

import (
	"sync"

	"github.com/andybalholm/cascadia"
)

// matchers caches compiled selectors keyed by selector string. Invalid
// selectors are cached as nil so they are only compiled once.
var matchers sync.Map

// compile returns the compiled form of selector. Returns false when the
// selector is not valid CSS.
func compile(selector string) (cascadia.Selector, bool) {
	if v, ok := matchers.Load(selector); ok {
		m, _ := v.(cascadia.Selector)
		return m, m != nil
	}

	m, err := cascadia.Compile(selector)
	if err != nil {
		m = nil
	}
	matchers.Store(selector, m)
	return m, m != nil
}
