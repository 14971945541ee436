package resolve

import (
	"regexp"

	"github.com/fwojciec/pagemeta"
)

// bylinePattern matches "By <Name>" where the name is one to four
// capitalized tokens. Only the name is captured.
var bylinePattern = regexp.MustCompile(`\b[Bb]y\s+([A-Z][A-Za-z.'-]+(?:\s+[A-Z][A-Za-z.'-]+){0,3})\b`)

// bylineSelectors are the page regions searched for a byline, in order.
// Attribute values, class names included, match regardless of case.
var bylineSelectors = []string{
	"[class*=byline i]",
	"[class*=author i]",
	"header, [class~=article-header i], [class~=post-header i], [class~=entry-header i]",
	"meta[itemprop=author i]",
}

// bylineTextWindow is how many characters of page text are searched when
// no byline region exists.
const bylineTextWindow = 1000

// Byline recovers an author from a "By <Name>" phrase.
//
// The first region selector that matches an element decides the outcome:
// that element's text is matched and later selectors are not consulted,
// even when the match fails. Only when no region exists is the leading
// window of the page text searched.
func Byline(doc pagemeta.Document) string {
	for _, selector := range bylineSelectors {
		el, ok := doc.First(selector)
		if !ok {
			continue
		}
		return MatchByline(el.Text())
	}
	return MatchByline(truncate(doc.Text(), bylineTextWindow))
}

// MatchByline returns the name of the first "By <Name>" phrase in text, or
// "" when there is none.
func MatchByline(text string) string {
	m := bylinePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
