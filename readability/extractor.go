// Package readability extracts blog articles using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/postcraft"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements postcraft.Extractor at compile time.
var _ postcraft.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article from a blog page.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &postcraft.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
