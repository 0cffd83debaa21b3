package gemini

import (
	"context"

	"github.com/fwojciec/postcraft"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ postcraft.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts prompt tokens offline using the Gemini tokenizer, so
// the prompt command can report sizes without an API key.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model, or for
// DefaultModel when model is empty.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, postcraft.Errorf(postcraft.EINVALID, "tokenizer for %q: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the tokens text occupies as a single user turn.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	result, err := tc.tok.CountTokens([]*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}, nil)
	if err != nil {
		return 0, err
	}
	return int(result.TotalTokens), nil
}
