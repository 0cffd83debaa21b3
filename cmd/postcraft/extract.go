package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/postcraft"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	ctx, cancel := withTimeout(deps)
	defer cancel()

	content, err := deps.Composer.FromURL(ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postcraft.ErrorMessage(err))
		return err
	}

	if content.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title: %s\n\n", content.Title)
	}
	fmt.Fprintln(deps.Stdout, content.Body)
	return nil
}

// withTimeout bounds a single command by the --timeout flag.
func withTimeout(deps *Dependencies) (context.Context, context.CancelFunc) {
	if deps.Timeout <= 0 {
		return context.WithCancel(deps.Ctx)
	}
	return context.WithTimeout(deps.Ctx, deps.Timeout)
}
