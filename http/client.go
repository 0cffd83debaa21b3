package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/postcraft"
)

// Ensure ContentClient implements postcraft.ContentFetcher at compile time.
var _ postcraft.ContentFetcher = (*ContentClient)(nil)

// ContentClient fetches blog text from a remote content-fetch API.
//
// The API accepts POST {"url": "..."} and answers {"content": "..."} on
// success or {"error": "..."} with a non-2xx status on failure.
type ContentClient struct {
	endpoint string
	client   *http.Client
}

// NewContentClient returns a client for the API at endpoint.
// If client is nil, a client with DefaultFetchTimeout is used.
func NewContentClient(endpoint string, client *http.Client) *ContentClient {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &ContentClient{endpoint: endpoint, client: client}
}

type fetchContentRequest struct {
	URL string `json:"url"`
}

type fetchContentResponse struct {
	Content string `json:"content"`
	Error   string `json:"error"`
}

// FetchContent asks the remote API for the text behind url.
func (c *ContentClient) FetchContent(ctx context.Context, url string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", postcraft.Errorf(postcraft.EINVALID, "URL required")
	}

	payload, err := json.Marshal(fetchContentRequest{URL: url})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Unable to fetch content: %w", err)
	}
	defer resp.Body.Close()

	var out fetchContentResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := out.Error
		if decodeErr != nil || msg == "" {
			msg = "Failed to fetch content"
		}
		return "", fmt.Errorf("Unable to fetch content: %s", msg)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("Unable to fetch content: %w", decodeErr)
	}

	return out.Content, nil
}
