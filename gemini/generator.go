// Package gemini generates posts with Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/postcraft"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTemperature leaves room for varied hooks without drifting from the
// source content.
const DefaultTemperature = 0.7

// SystemInstruction frames every generation request.
const SystemInstruction = "You are an experienced social media copywriter. You turn blog content into platform-native posts that stay faithful to the source. Never invent facts that are not in the content."

// Ensure Generator implements postcraft.Generator at compile time.
var _ postcraft.Generator = (*Generator)(nil)

// Option configures a Generator.
type Option func(*Generator)

// WithModel sets the Gemini model name.
func WithModel(model string) Option {
	return func(g *Generator) {
		if model != "" {
			g.model = model
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) Option {
	return func(g *Generator) {
		g.temperature = t
	}
}

// Generator implements postcraft.Generator using Google Gemini.
type Generator struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, opts ...Option) *Generator {
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

// Generate sends instruction as a single user turn and returns the text of
// the first candidate.
func (g *Generator) Generate(ctx context.Context, instruction string, opts postcraft.GenerateOptions) (string, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", postcraft.Errorf(postcraft.EINVALID, "instruction required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: instruction}},
		}},
		g.config(opts),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", postcraft.Errorf(postcraft.EINTERNAL, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", postcraft.Errorf(postcraft.EINTERNAL, "gemini returned no text")
	}
	return text, nil
}

func (g *Generator) config(opts postcraft.GenerateOptions) *genai.GenerateContentConfig {
	temp := g.temperature
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: SystemInstruction}},
		},
		Temperature: &temp,
	}
	if opts.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(opts.MaxOutputTokens)
	}
	return config
}
