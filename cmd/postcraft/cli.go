package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/postcraft"
	"github.com/fwojciec/postcraft/compose"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Composer  *compose.Composer
	Tokens    postcraft.TokenCounter
	Clipboard postcraft.Clipboard
	Timeout   time.Duration
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider        string        `default:"gemini" enum:"gemini,openai" env:"POSTCRAFT_PROVIDER" help:"Text generation provider (${enum})"`
	Model           string        `env:"POSTCRAFT_MODEL" help:"Model name (provider default if empty)"`
	GeminiAPIKey    string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	OpenAIAPIKey    string        `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIBaseURL   string        `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible API base URL"`
	FetcherAPI      string        `name:"fetcher-api" env:"POSTCRAFT_FETCHER_API" help:"Remote fetch-content endpoint used instead of local fetching"`
	Timeout         time.Duration `default:"60s" help:"Per-operation timeout"`
	MaxOutputTokens int           `default:"1000" help:"Generation token budget"`
	Browser         bool          `help:"Render pages in headless Chrome"`
	Extractor       string        `default:"trafilatura" enum:"trafilatura,readability,goquery" help:"Article extractor (${enum})"`
	Verbose         bool          `short:"v" help:"Enable debug logging"`

	Platforms PlatformsCmd `cmd:"" help:"List supported platforms and their guidelines"`
	Extract   ExtractCmd   `cmd:"" help:"Fetch a blog post and print its title and body"`
	Prompt    PromptCmd    `cmd:"" help:"Print the generation prompt without calling the model"`
	Generate  GenerateCmd  `cmd:"" help:"Generate a social media post"`
	Serve     ServeCmd     `cmd:"" help:"Serve the JSON API"`
}

// InputFlags select the blog content. URL wins over File; without either,
// content is read from stdin.
type InputFlags struct {
	URL      string `short:"u" help:"Blog post URL"`
	File     string `short:"f" type:"existingfile" help:"Read blog content from file"`
	Title    string `short:"t" help:"Post title (inferred from content if empty)"`
	Platform string `short:"p" help:"Target platform (linkedin, substack, bluesky, facebook, instagram)"`
}

// PlatformsCmd is the "platforms" subcommand.
type PlatformsCmd struct{}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Blog post URL"`
}

// PromptCmd is the "prompt" subcommand.
type PromptCmd struct {
	InputFlags `embed:""`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	InputFlags `embed:""`
	Copy       bool `short:"c" help:"Copy the post to the clipboard"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"POSTCRAFT_ADDR" help:"Listen address"`
}
