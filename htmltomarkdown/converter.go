// Package htmltomarkdown converts extracted article HTML into Markdown that
// reads well inside a generation prompt.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/postcraft"
)

// Ensure Converter implements postcraft.Converter at compile time.
var _ postcraft.Converter = (*Converter)(nil)

var (
	// imageRe matches Markdown images, which carry no text worth summarizing.
	imageRe      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// Converter wraps html-to-markdown to convert article HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms article HTML into Markdown. Images are dropped and
// runs of blank lines are collapsed to one.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", postcraft.Errorf(postcraft.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	md = imageRe.ReplaceAllString(md, "")
	md = blankLinesRe.ReplaceAllString(md, "\n\n")
	return strings.TrimSpace(md), nil
}
