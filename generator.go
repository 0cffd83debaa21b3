package postcraft

import "context"

// GenerateOptions bounds a single generation call.
type GenerateOptions struct {
	// MaxOutputTokens caps the length of the generated text.
	// Zero leaves the choice to the implementation.
	MaxOutputTokens int
}

// Generator produces text from a composed instruction.
type Generator interface {
	// Generate submits instruction as a single prompt and returns the
	// generated post text. Failures are returned as reported by the
	// underlying service.
	Generate(ctx context.Context, instruction string, opts GenerateOptions) (string, error)
}
