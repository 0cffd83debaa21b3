//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/postcraft"
	"github.com/fwojciec/postcraft/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGenerator_Integration_WritesBlueskyPost(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	req, err := postcraft.BuildRequest(
		"Why we moved our queue to Postgres",
		"We replaced Redis with a Postgres-backed job queue using SKIP LOCKED. Throughput stayed flat while operations got simpler.",
		postcraft.PlatformBluesky,
	)
	require.NoError(t, err)

	text, err := gemini.NewGenerator(client).Generate(ctx, req.InstructionText, postcraft.GenerateOptions{MaxOutputTokens: 1000})

	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.Contains(t, text, "Postgres")
}
