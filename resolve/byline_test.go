package resolve_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/mock"
	"github.com/fwojciec/pagemeta/resolve"
	"github.com/stretchr/testify/assert"
)

func TestMatchByline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"name with initial", "Reporting by John Q. Smith today", "John Q. Smith"},
		{"capitalized By", "By Jane Doe", "Jane Doe"},
		{"lowercase name", "by alice", ""},
		{"caps at four tokens", "By Alpha Beta Gamma Delta Epsilon", "Alpha Beta Gamma Delta"},
		{"stops at lowercase conjunction", "Written by Maria Lopez and Carlos Diaz", "Maria Lopez"},
		{"apostrophes and hyphens", "by Conan O'Brien-Smith", "Conan O'Brien-Smith"},
		{"first match wins", "By Ann Lee, edited by Bob Ray", "Ann Lee"},
		{"by must be a whole word", "Standby Mode Enabled", ""},
		{"single letter token is not a name", "by J", ""},
		{"no byline", "Nothing to see here", ""},
		{"empty text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, resolve.MatchByline(tt.text))
		})
	}
}

func TestByline(t *testing.T) {
	t.Parallel()

	t.Run("reads byline class", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><span class="c-byline">By Lee Chang</span><p>By Not Me</p></body>`)

		assert.Equal(t, "Lee Chang", resolve.Byline(doc))
	})

	t.Run("reads author class when no byline class exists", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><div class="author-box">Posted by Dana Scully</div></body>`)

		assert.Equal(t, "Dana Scully", resolve.Byline(doc))
	})

	t.Run("reads header region", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><div class="entry-header"><h2>Post</h2><span>by Fox Mulder</span></div></body>`)

		assert.Equal(t, "Fox Mulder", resolve.Byline(doc))
	})

	t.Run("does not consult later regions when first region fails to match", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body>
<div class="byline">Staff report</div>
<div class="author">By Should Not Win</div>
<p>By Also Ignored</p>
</body>`)

		assert.Empty(t, resolve.Byline(doc))
	})

	t.Run("capitalized byline class still decides", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><div class="Byline">Staff</div><p>By Later Name</p></body>`)

		assert.Empty(t, resolve.Byline(doc))
	})

	t.Run("reads capitalized author class", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><div class="AuthorCard">Posted by Dana Scully</div></body>`)

		assert.Equal(t, "Dana Scully", resolve.Byline(doc))
	})

	t.Run("reads capitalized header class", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><div class="Post-Header">By Fox Mulder</div><p>By Later Name</p></body>`)

		assert.Equal(t, "Fox Mulder", resolve.Byline(doc))
	})

	t.Run("meta itemprop author has no text to match", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><meta itemprop="author" content="Schema Author"></head><body><p>By Text Author</p></body>`)

		assert.Empty(t, resolve.Byline(doc))
	})

	t.Run("falls back to page text when no region exists", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><article><p>Published by Ada Lovelace in London.</p></article></body>`)

		assert.Equal(t, "Ada Lovelace", resolve.Byline(doc))
	})

	t.Run("only searches the leading text window", func(t *testing.T) {
		t.Parallel()

		filler := strings.Repeat("x", 1000)
		doc := &mock.Document{
			FirstFn: func(string) (pagemeta.Element, bool) { return nil, false },
			TextFn:  func() string { return filler + " By Late Author" },
		}

		assert.Empty(t, resolve.Byline(doc))
	})

	t.Run("counts the window in characters", func(t *testing.T) {
		t.Parallel()

		filler := strings.Repeat("é", 980)
		doc := &mock.Document{
			FirstFn: func(string) (pagemeta.Element, bool) { return nil, false },
			TextFn:  func() string { return filler + " By Early Author" },
		}

		assert.Equal(t, "Early Author", resolve.Byline(doc))
	})

	t.Run("probes regions in order", func(t *testing.T) {
		t.Parallel()

		var selectors []string
		doc := &mock.Document{
			FirstFn: func(selector string) (pagemeta.Element, bool) {
				selectors = append(selectors, selector)
				return nil, false
			},
			TextFn: func() string { return "" },
		}

		resolve.Byline(doc)

		assert.Equal(t, []string{
			"[class*=byline i]",
			"[class*=author i]",
			"header, [class~=article-header i], [class~=post-header i], [class~=entry-header i]",
			"meta[itemprop=author i]",
		}, selectors)
	})
}
