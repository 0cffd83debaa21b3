package main

import (
	"fmt"

	"github.com/fwojciec/postcraft"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	ctx, cancel := withTimeout(deps)
	defer cancel()

	in, err := c.input(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postcraft.ErrorMessage(err))
		return err
	}

	post, err := deps.Composer.Compose(ctx, in)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", postcraft.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, post.Text)

	s := post.Stats
	fmt.Fprintf(deps.Stderr, "\nCharacter count: %d / %d (target %s), hashtags: %d\n",
		s.Characters, s.MaxLength, s.OptimalLength, s.Hashtags)
	if s.OverLimit {
		fmt.Fprintf(deps.Stderr, "warning: post exceeds the %d character limit\n", s.MaxLength)
	}

	if c.Copy {
		if err := deps.Clipboard.WriteAll(post.Text); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", postcraft.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stderr, "Copied to clipboard")
	}
	return nil
}
