package gemini_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/postcraft"
	"github.com/fwojciec/postcraft/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *genai.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	require.NoError(t, err)
	return client
}

func writeCandidate(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":`+text+`}]}}]}`)
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed candidate text", func(t *testing.T) {
		t.Parallel()

		var path, body string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			b, _ := io.ReadAll(r.Body)
			body = string(b)
			writeCandidate(w, `"  Big news for Go developers! #golang\n"`)
		})

		gen := gemini.NewGenerator(client)

		text, err := gen.Generate(context.Background(), "Create an optimized LinkedIn post", postcraft.GenerateOptions{MaxOutputTokens: 256})

		require.NoError(t, err)
		assert.Equal(t, "Big news for Go developers! #golang", text)
		assert.True(t, strings.HasSuffix(path, "models/"+gemini.DefaultModel+":generateContent"), path)
		assert.Contains(t, body, "Create an optimized LinkedIn post")
		assert.Contains(t, body, `"maxOutputTokens":256`)
		assert.Contains(t, body, "social media copywriter")
	})

	t.Run("uses configured model", func(t *testing.T) {
		t.Parallel()

		var path string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			writeCandidate(w, `"ok"`)
		})

		gen := gemini.NewGenerator(client, gemini.WithModel("gemini-2.5-pro"))

		_, err := gen.Generate(context.Background(), "prompt", postcraft.GenerateOptions{})

		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-pro", gen.Model())
		assert.Contains(t, path, "gemini-2.5-pro:generateContent")
	})

	t.Run("empty model option keeps default", func(t *testing.T) {
		t.Parallel()

		gen := gemini.NewGenerator(nil, gemini.WithModel(""))

		assert.Equal(t, gemini.DefaultModel, gen.Model())
	})

	t.Run("omits token budget when zero", func(t *testing.T) {
		t.Parallel()

		var body string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			body = string(b)
			writeCandidate(w, `"ok"`)
		})

		_, err := gemini.NewGenerator(client).Generate(context.Background(), "prompt", postcraft.GenerateOptions{})

		require.NoError(t, err)
		assert.NotContains(t, body, "maxOutputTokens")
	})

	t.Run("no text is an internal error", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"candidates":[]}`)
		})

		_, err := gemini.NewGenerator(client).Generate(context.Background(), "prompt", postcraft.GenerateOptions{})

		require.Error(t, err)
		assert.Equal(t, postcraft.EINTERNAL, postcraft.ErrorCode(err))
	})

	t.Run("service failure passes through uncoded", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)
		})

		_, err := gemini.NewGenerator(client).Generate(context.Background(), "prompt", postcraft.GenerateOptions{})

		require.Error(t, err)
		assert.Empty(t, postcraft.ErrorCode(err))
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("rejects blank instruction", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.NewGenerator(nil).Generate(context.Background(), "  ", postcraft.GenerateOptions{})

		require.Error(t, err)
		assert.Equal(t, postcraft.EINVALID, postcraft.ErrorCode(err))
	})
}
