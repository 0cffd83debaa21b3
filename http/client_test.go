package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/postcraft"
	pchttp "github.com/fwojciec/postcraft/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentClient_FetchContent(t *testing.T) {
	t.Parallel()

	t.Run("posts url and returns content", func(t *testing.T) {
		t.Parallel()

		var gotURL, gotMethod, gotType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotType = r.Header.Get("Content-Type")
			var body struct {
				URL string `json:"url"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			gotURL = body.URL
			_ = json.NewEncoder(w).Encode(map[string]string{"content": "TITLE: Post\nBody."})
		}))
		defer server.Close()

		client := pchttp.NewContentClient(server.URL, nil)
		raw, err := client.FetchContent(context.Background(), "https://blog.example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "TITLE: Post\nBody.", raw)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotType)
		assert.Equal(t, "https://blog.example.com/post", gotURL)
	})

	t.Run("surfaces api error message", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "page has no article"})
		}))
		defer server.Close()

		client := pchttp.NewContentClient(server.URL, nil)
		_, err := client.FetchContent(context.Background(), "https://blog.example.com/post")

		require.EqualError(t, err, "Unable to fetch content: page has no article")
	})

	t.Run("falls back to generic message", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		client := pchttp.NewContentClient(server.URL, nil)
		_, err := client.FetchContent(context.Background(), "https://blog.example.com/post")

		require.EqualError(t, err, "Unable to fetch content: Failed to fetch content")
	})

	t.Run("rejects empty url", func(t *testing.T) {
		t.Parallel()

		client := pchttp.NewContentClient("http://unused.invalid", nil)
		_, err := client.FetchContent(context.Background(), "  ")

		require.Error(t, err)
		assert.Equal(t, postcraft.EINVALID, postcraft.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"content": "x"})
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := pchttp.NewContentClient(server.URL, nil)
		_, err := client.FetchContent(ctx, "https://blog.example.com/post")

		require.Error(t, err)
	})
}
