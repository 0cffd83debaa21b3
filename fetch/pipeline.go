// Package fetch turns a blog URL into raw text for postcraft.Extract by
// chaining a Fetcher, an Extractor and a Converter.
package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/postcraft"
)

// Ensure Pipeline implements postcraft.ContentFetcher at compile time.
var _ postcraft.ContentFetcher = (*Pipeline)(nil)

// Pipeline implements postcraft.ContentFetcher by orchestrating fetching,
// extraction, and conversion through injected dependencies.
//
// The returned text starts with a postcraft.TitleMarker line when the page
// title is known, followed by a blank line and the article as Markdown.
type Pipeline struct {
	fetcher     postcraft.Fetcher
	extractor   postcraft.Extractor
	converter   postcraft.Converter
	retryDelays []time.Duration
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRetryDelays sets the retry delays for failed fetches.
// Defaults to DefaultRetryDelays() if not specified.
func WithRetryDelays(delays []time.Duration) Option {
	return func(p *Pipeline) {
		p.retryDelays = delays
	}
}

// WithLogger sets the logger used to report retries.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline creates a new Pipeline with the given dependencies.
func NewPipeline(
	fetcher postcraft.Fetcher,
	extractor postcraft.Extractor,
	converter postcraft.Converter,
	opts ...Option,
) *Pipeline {
	p := &Pipeline{
		fetcher:     fetcher,
		extractor:   extractor,
		converter:   converter,
		retryDelays: DefaultRetryDelays(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchContent retrieves the article at rawURL as raw text.
func (p *Pipeline) FetchContent(ctx context.Context, rawURL string) (string, error) {
	if err := validateURL(rawURL); err != nil {
		return "", err
	}

	html, err := WithRetry(ctx, rawURL, p.fetcher.Fetch, p.logger, p.retryDelays)
	if err != nil {
		return "", err
	}

	result, err := p.extractor.Extract(html)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return "", postcraft.Errorf(postcraft.ENOTFOUND, "no article content found at %s", rawURL)
	}

	markdown, err := p.converter.Convert(result.ContentHTML)
	if err != nil {
		return "", err
	}

	return FormatContent(result.Title, markdown), nil
}

// FormatContent renders a title and body in the layout Extract understands.
// Whitespace inside the title is collapsed so it stays on one line.
func FormatContent(title, body string) string {
	title = strings.Join(strings.Fields(title), " ")
	body = strings.TrimSpace(body)
	if title == "" {
		return body
	}
	return postcraft.TitleMarker + " " + title + "\n\n" + body
}

func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return postcraft.Errorf(postcraft.EINVALID, "URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return postcraft.Errorf(postcraft.EINVALID, "invalid blog URL %q", rawURL)
	}
	return nil
}
