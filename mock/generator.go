package mock

import (
	"context"

	"github.com/fwojciec/postcraft"
)

var _ postcraft.Generator = (*Generator)(nil)

// Generator is a mock implementation of postcraft.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, instruction string, opts postcraft.GenerateOptions) (string, error)
}

func (g *Generator) Generate(ctx context.Context, instruction string, opts postcraft.GenerateOptions) (string, error) {
	return g.GenerateFn(ctx, instruction, opts)
}
