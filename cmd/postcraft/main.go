package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/postcraft"
	"github.com/fwojciec/postcraft/clipboard"
	"github.com/fwojciec/postcraft/compose"
	"github.com/fwojciec/postcraft/fetch"
	"github.com/fwojciec/postcraft/gemini"
	"github.com/fwojciec/postcraft/goquery"
	"github.com/fwojciec/postcraft/htmltomarkdown"
	pchttp "github.com/fwojciec/postcraft/http"
	pcopenai "github.com/fwojciec/postcraft/openai"
	"github.com/fwojciec/postcraft/readability"
	"github.com/fwojciec/postcraft/rod"
	pcslog "github.com/fwojciec/postcraft/slog"
	"github.com/fwojciec/postcraft/trafilatura"
	"github.com/joho/godotenv"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()
	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		m.Stdin = os.Stdin
	}

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin supplies blog content when neither --url nor --file is given.
	// Nil when stdin is a terminal.
	Stdin io.Reader

	// Services for end-to-end testing. When set they replace the
	// implementations built from flags.
	ContentFetcher postcraft.ContentFetcher
	Generator      postcraft.Generator
	TokenCounter   postcraft.TokenCounter
	Clipboard      postcraft.Clipboard

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close releases resources opened by Run.
func (m *Main) Close() error {
	var firstErr error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("postcraft"),
		kong.Description("Turn blog posts into platform-optimized social media posts"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'postcraft --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose, cmd == "serve")
	deps.Timeout = cli.Timeout
	deps.Composer = &compose.Composer{MaxOutputTokens: cli.MaxOutputTokens}
	defer m.Close()

	switch cmd {
	case "extract":
		if deps.Composer.ContentFetcher, err = m.contentFetcher(cli, deps.Logger); err != nil {
			return err
		}
	case "prompt":
		if cli.Prompt.URL != "" {
			if deps.Composer.ContentFetcher, err = m.contentFetcher(cli, deps.Logger); err != nil {
				return err
			}
		}
		deps.Tokens = m.tokenCounter(cli, deps.Logger)
	case "generate":
		if cli.Generate.URL != "" {
			if deps.Composer.ContentFetcher, err = m.contentFetcher(cli, deps.Logger); err != nil {
				return err
			}
		}
		if deps.Composer.Generator, err = m.generator(ctx, cli, deps.Logger, stderr); err != nil {
			return err
		}
		if cli.Generate.Copy {
			deps.Clipboard = m.Clipboard
			if deps.Clipboard == nil {
				deps.Clipboard = clipboard.New()
			}
		}
	case "serve":
		if deps.Composer.ContentFetcher, err = m.contentFetcher(cli, deps.Logger); err != nil {
			return err
		}
		if deps.Composer.Generator, err = m.generator(ctx, cli, deps.Logger, stderr); err != nil {
			return err
		}
		deps.Tokens = m.tokenCounter(cli, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newLogger writes text logs to stderr. Commands stay quiet unless verbose;
// the server logs requests by default.
func newLogger(w io.Writer, verbose, server bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case server:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (m *Main) contentFetcher(cli *CLI, logger *slog.Logger) (postcraft.ContentFetcher, error) {
	if m.ContentFetcher != nil {
		return m.ContentFetcher, nil
	}

	if cli.FetcherAPI != "" {
		client := pchttp.NewContentClient(cli.FetcherAPI, &http.Client{Timeout: cli.Timeout})
		return pcslog.NewLoggingContentFetcher(client, logger), nil
	}

	var fetcher postcraft.Fetcher
	if cli.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		fetcher = f
	} else {
		fetcher = pchttp.NewFetcher(pchttp.WithTimeout(cli.Timeout))
	}
	fetcher = pcslog.NewLoggingFetcher(fetcher, logger)
	m.closers = append(m.closers, fetcher)

	pipeline := fetch.NewPipeline(fetcher, newExtractor(cli.Extractor), htmltomarkdown.NewConverter(),
		fetch.WithLogger(logger),
	)
	return pcslog.NewLoggingContentFetcher(pipeline, logger), nil
}

func newExtractor(name string) postcraft.Extractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "goquery":
		return goquery.NewExtractor()
	default:
		return trafilatura.NewExtractor()
	}
}

func (m *Main) generator(ctx context.Context, cli *CLI, logger *slog.Logger, stderr io.Writer) (postcraft.Generator, error) {
	if m.Generator != nil {
		return m.Generator, nil
	}

	switch cli.Provider {
	case "openai":
		if cli.OpenAIAPIKey == "" && cli.OpenAIBaseURL == "" {
			fmt.Fprintln(stderr, "Hint: set OPENAI_API_KEY, or OPENAI_BASE_URL for a local OpenAI-compatible server")
			return nil, postcraft.Errorf(postcraft.EINVALID, "OPENAI_API_KEY not set")
		}
		opts := []option.RequestOption{option.WithAPIKey(cli.OpenAIAPIKey)}
		if cli.OpenAIBaseURL != "" {
			opts = append(opts, option.WithBaseURL(cli.OpenAIBaseURL))
		}
		gen := pcopenai.NewGenerator(openai.NewClient(opts...), pcopenai.WithModel(cli.Model))
		return pcslog.NewLoggingGenerator(gen, gen.Model(), logger), nil

	default:
		if cli.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "Hint: get an API key at https://aistudio.google.com/apikey")
			return nil, postcraft.Errorf(postcraft.EINVALID, "GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		gen := gemini.NewGenerator(client, gemini.WithModel(cli.Model))
		return pcslog.NewLoggingGenerator(gen, gen.Model(), logger), nil
	}
}

// tokenCounter returns nil when the tokenizer is unavailable; token counts
// are informational.
func (m *Main) tokenCounter(cli *CLI, logger *slog.Logger) postcraft.TokenCounter {
	if m.TokenCounter != nil {
		return m.TokenCounter
	}

	model := ""
	if cli.Provider == "gemini" {
		model = cli.Model
	}
	tc, err := gemini.NewTokenCounter(model)
	if err != nil {
		logger.Warn("token counting disabled", "err", err)
		return nil
	}
	return tc
}
