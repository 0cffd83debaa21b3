package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/postcraft"
	"github.com/fwojciec/postcraft/mock"
	pcslog "github.com/fwojciec/postcraft/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := pcslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/blog/post")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/blog/post")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := pcslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/blog/post")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := pcslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

func TestLoggingContentFetcher_FetchContent(t *testing.T) {
	t.Parallel()

	t.Run("logs url and character count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentFetcher{
			FetchContentFn: func(ctx context.Context, url string) (string, error) {
				return "TITLE: Zażółć\n\nbody", nil
			},
		}

		raw, err := pcslog.NewLoggingContentFetcher(inner, logger).FetchContent(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "TITLE: Zażółć\n\nbody", raw)
		output := buf.String()
		assert.Contains(t, output, `msg="fetch content"`)
		assert.Contains(t, output, "url=https://example.com/post")
		assert.Contains(t, output, "chars=19")
	})

	t.Run("logs and returns error unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := postcraft.Errorf(postcraft.ENOTFOUND, "no article content")
		inner := &mock.ContentFetcher{
			FetchContentFn: func(ctx context.Context, url string) (string, error) {
				return "", want
			},
		}

		_, err := pcslog.NewLoggingContentFetcher(inner, logger).FetchContent(context.Background(), "https://example.com/post")

		assert.Same(t, want, err)
		assert.Contains(t, buf.String(), "no article content")
	})
}

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes at info and prompt at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		var gotOpts postcraft.GenerateOptions
		inner := &mock.Generator{
			GenerateFn: func(ctx context.Context, instruction string, opts postcraft.GenerateOptions) (string, error) {
				gotOpts = opts
				return "post text", nil
			},
		}

		gen := pcslog.NewLoggingGenerator(inner, "gemini-2.5-flash", logger)
		text, err := gen.Generate(context.Background(), "make a post", postcraft.GenerateOptions{MaxOutputTokens: 500})

		require.NoError(t, err)
		assert.Equal(t, "post text", text)
		assert.Equal(t, 500, gotOpts.MaxOutputTokens)
		output := buf.String()
		assert.Contains(t, output, `msg="generate prompt"`)
		assert.Contains(t, output, `instruction="make a post"`)
		assert.Contains(t, output, "model=gemini-2.5-flash")
		assert.Contains(t, output, "prompt_chars=11")
		assert.Contains(t, output, "output_chars=9")
		assert.Contains(t, output, "max_output_tokens=500")
	})

	t.Run("omits prompt at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Generator{
			GenerateFn: func(context.Context, string, postcraft.GenerateOptions) (string, error) {
				return "", errors.New("quota exceeded")
			},
		}

		_, err := pcslog.NewLoggingGenerator(inner, "m", logger).Generate(context.Background(), "secret prompt", postcraft.GenerateOptions{})

		require.EqualError(t, err, "quota exceeded")
		output := buf.String()
		assert.NotContains(t, output, "secret prompt")
		assert.Contains(t, output, `err="quota exceeded"`)
	})
}
