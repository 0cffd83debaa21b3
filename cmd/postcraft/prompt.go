package main

import (
	"fmt"

	"github.com/fwojciec/postcraft"
)

// Run executes the prompt command. The instruction goes to stdout so it can
// be piped into another tool; the token count goes to stderr.
func (c *PromptCmd) Run(deps *Dependencies) error {
	ctx, cancel := withTimeout(deps)
	defer cancel()

	in, err := c.input(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postcraft.ErrorMessage(err))
		return err
	}

	draft, err := deps.Composer.Prepare(ctx, in)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postcraft.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, draft.Request.InstructionText)

	if deps.Tokens != nil {
		n, err := deps.Tokens.CountTokens(ctx, draft.Request.InstructionText)
		if err != nil {
			deps.Logger.Warn("count tokens", "err", err)
			return nil
		}
		fmt.Fprintf(deps.Stderr, "Tokens: %d\n", n)
	}
	return nil
}
