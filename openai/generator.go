// Package openai generates posts with the OpenAI chat completions API or any
// server that speaks it.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/postcraft"
	"github.com/openai/openai-go"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.ChatModelGPT4oMini

// DefaultTemperature matches the Gemini generator.
const DefaultTemperature = 0.7

// SystemPrompt frames every generation request.
const SystemPrompt = "You are an experienced social media copywriter. You turn blog content into platform-native posts that stay faithful to the source. Never invent facts that are not in the content."

// Ensure Generator implements postcraft.Generator at compile time.
var _ postcraft.Generator = (*Generator)(nil)

// Option configures a Generator.
type Option func(*Generator)

// WithModel sets the chat model name.
func WithModel(model string) Option {
	return func(g *Generator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(g *Generator) {
		g.temperature = t
	}
}

// Generator implements postcraft.Generator using OpenAI chat completions.
type Generator struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewGenerator creates a new Generator.
func NewGenerator(client openai.Client, opts ...Option) *Generator {
	g := &Generator{
		client:      client,
		model:       DefaultModel,
		temperature: DefaultTemperature,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Model returns the configured model name.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends instruction as the single user message and returns the
// first choice.
func (g *Generator) Generate(ctx context.Context, instruction string, opts postcraft.GenerateOptions) (string, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", postcraft.Errorf(postcraft.EINVALID, "instruction required")
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(instruction),
		},
		Temperature: openai.Float(g.temperature),
	}
	if opts.MaxOutputTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(opts.MaxOutputTokens))
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", postcraft.Errorf(postcraft.EINTERNAL, "openai returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", postcraft.Errorf(postcraft.EINTERNAL, "openai returned no text")
	}
	return text, nil
}
