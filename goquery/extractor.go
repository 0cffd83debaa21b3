// Package goquery extracts blog articles with CSS selectors. It needs no
// heuristics, which makes it predictable on well-structured blog themes
// where trafilatura or readability misjudge the main content.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/postcraft"
)

// Ensure Extractor implements postcraft.Extractor at compile time.
var _ postcraft.Extractor = (*Extractor)(nil)

// titleSelectors are tried in order; the first non-empty value wins.
var titleSelectors = []struct {
	Selector string
	Attr     string // empty means element text
}{
	{`meta[property="og:title"]`, "content"},
	{`meta[name="twitter:title"]`, "content"},
	{"article h1", ""},
	{"h1", ""},
	{"title", ""},
}

// contentSelectors locate the article body across common blog engines
// (WordPress, Ghost, Medium, Substack, Hugo and Jekyll themes).
var contentSelectors = []string{
	"article .entry-content",
	"article .post-content",
	".gh-content",
	".available-content",
	"article",
	"main",
	`[role="main"]`,
	".post",
	"body",
}

// boilerplateSelectors are removed before the article is selected.
var boilerplateSelectors = strings.Join([]string{
	"script", "style", "noscript", "iframe", "form",
	"nav", "header", "footer", "aside",
	".comments", "#comments", ".share", ".related-posts", ".subscribe",
}, ", ")

// Extractor selects the article with CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article.
func (e *Extractor) Extract(rawHTML string) (*postcraft.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, postcraft.Errorf(postcraft.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, postcraft.Errorf(postcraft.EINVALID, "failed to parse HTML: %v", err)
	}

	title := extractTitle(doc)

	doc.Find(boilerplateSelectors).Remove()

	var contentHTML string
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 || strings.TrimSpace(sel.Text()) == "" {
			continue
		}
		contentHTML, err = sel.Html()
		if err != nil {
			return nil, err
		}
		break
	}

	return &postcraft.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(contentHTML),
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	for _, ts := range titleSelectors {
		sel := doc.Find(ts.Selector).First()
		if sel.Length() == 0 {
			continue
		}
		var value string
		if ts.Attr != "" {
			value, _ = sel.Attr(ts.Attr)
		} else {
			value = sel.Text()
		}
		if value = strings.Join(strings.Fields(value), " "); value != "" {
			return value
		}
	}
	return ""
}
