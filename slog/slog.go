// Package slog decorates postcraft collaborators with structured logging.
// Each decorator logs one line per call with its duration and error.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/postcraft"
)

// Ensure decorators implement their interfaces at compile time.
var (
	_ postcraft.Fetcher        = (*LoggingFetcher)(nil)
	_ postcraft.ContentFetcher = (*LoggingContentFetcher)(nil)
	_ postcraft.Generator      = (*LoggingGenerator)(nil)
)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   postcraft.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next postcraft.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingContentFetcher wraps a ContentFetcher with logging.
type LoggingContentFetcher struct {
	next   postcraft.ContentFetcher
	logger *slog.Logger
}

// NewLoggingContentFetcher creates a new LoggingContentFetcher.
func NewLoggingContentFetcher(next postcraft.ContentFetcher, logger *slog.Logger) *LoggingContentFetcher {
	return &LoggingContentFetcher{next: next, logger: logger}
}

// FetchContent logs the blog URL and the size of the returned text.
func (f *LoggingContentFetcher) FetchContent(ctx context.Context, url string) (raw string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch content",
			"url", url,
			"chars", len([]rune(raw)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchContent(ctx, url)
}

// LoggingGenerator wraps a Generator with logging. The instruction text is
// logged at debug level only.
type LoggingGenerator struct {
	next   postcraft.Generator
	logger *slog.Logger
	model  string
}

// NewLoggingGenerator creates a new LoggingGenerator. model is only used as a
// log attribute.
func NewLoggingGenerator(next postcraft.Generator, model string, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger, model: model}
}

// Generate logs the model, prompt size and output size.
func (g *LoggingGenerator) Generate(ctx context.Context, instruction string, opts postcraft.GenerateOptions) (text string, err error) {
	g.logger.Debug("generate prompt", "model", g.model, "instruction", instruction)
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"model", g.model,
			"prompt_chars", len([]rune(instruction)),
			"max_output_tokens", opts.MaxOutputTokens,
			"output_chars", len([]rune(text)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, instruction, opts)
}
