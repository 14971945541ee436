package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements pagemeta.Parser at compile time.
var _ pagemeta.Parser = (*goquery.Parser)(nil)

func parse(t *testing.T, html string) pagemeta.Document {
	t.Helper()
	doc, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	return doc
}

func TestDocument_First(t *testing.T) {
	t.Parallel()

	t.Run("matches attribute equality on meta tags", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<meta property="og:title" content="Open Graph Title">
<meta name="author" content="Jane Roe">
<meta itemprop="author" content="Schema Author">
</head><body></body></html>`)

		el, ok := doc.First(`meta[property="og:title"]`)
		require.True(t, ok)
		assert.Equal(t, "Open Graph Title", el.Attr("content"))

		el, ok = doc.First(`meta[name=author]`)
		require.True(t, ok)
		assert.Equal(t, "Jane Roe", el.Attr("content"))

		el, ok = doc.First(`meta[itemprop=author]`)
		require.True(t, ok)
		assert.Equal(t, "Schema Author", el.Attr("content"))
	})

	t.Run("matches class substring", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><span class="post-byline small">By Ann Lee</span></body>`)

		el, ok := doc.First(`[class*=byline]`)
		require.True(t, ok)
		assert.Equal(t, "By Ann Lee", el.Text())
	})

	t.Run("returns first match in document order across alternatives", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body>
<div class="post-header">First</div>
<header>Second</header>
</body>`)

		el, ok := doc.First(`header, .article-header, .post-header, .entry-header`)
		require.True(t, ok)
		assert.Equal(t, "First", el.Text())
	})

	t.Run("honours case-insensitive attribute flag", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><meta name="Author" content="Jane Roe"></head><body><div class="Site-Byline">By Ann Lee</div></body>`)

		_, ok := doc.First(`meta[name="author"]`)
		assert.False(t, ok)

		el, ok := doc.First(`meta[name="author" i]`)
		require.True(t, ok)
		assert.Equal(t, "Jane Roe", el.Attr("content"))

		el, ok = doc.First(`[class*=byline i]`)
		require.True(t, ok)
		assert.Equal(t, "By Ann Lee", el.Text())
	})

	t.Run("reports missing element", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><p>nothing here</p></body>`)

		_, ok := doc.First("h1")
		assert.False(t, ok)
	})

	t.Run("treats invalid selector as no match", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><p>text</p></body>`)

		_, ok := doc.First(`meta[property=og:title]`)
		assert.False(t, ok)

		_, ok = doc.First(`p[[`)
		assert.False(t, ok)
	})

	t.Run("missing attribute reads as empty", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><meta name="title"></head>`)

		el, ok := doc.First(`meta[name=title]`)
		require.True(t, ok)
		assert.Empty(t, el.Attr("content"))
	})
}

func TestElement_Text(t *testing.T) {
	t.Parallel()

	t.Run("collapses internal whitespace", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<body><h1>\n  Breaking\t\tNews  \n</h1></body>")

		el, ok := doc.First("h1")
		require.True(t, ok)
		assert.Equal(t, "Breaking News", el.Text())
	})

	t.Run("keeps inline elements joined", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><p>Hel<b>lo</b> <i>world</i></p></body>`)

		el, ok := doc.First("p")
		require.True(t, ok)
		assert.Equal(t, "Hello world", el.Text())
	})

	t.Run("separates block elements", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><div class="meta"><p>One</p><p>Two</p>Three<br>Four</div></body>`)

		el, ok := doc.First(".meta")
		require.True(t, ok)
		assert.Equal(t, "One Two Three Four", el.Text())
	})

	t.Run("decodes entities", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><title>Tom &amp; Jerry</title></head>`)

		el, ok := doc.First("title")
		require.True(t, ok)
		assert.Equal(t, "Tom & Jerry", el.Text())
	})
}

func TestDocument_Text(t *testing.T) {
	t.Parallel()

	t.Run("excludes scripts and styles", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><title>Page</title><style>p { color: red }</style></head>
<body><script>var by = "By Nobody";</script><p>Visible   text</p></body></html>`)

		assert.Equal(t, "Page Visible text", doc.Text())
	})

	t.Run("empty document has empty text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "")

		assert.Empty(t, doc.Text())
	})
}
