package main

import (
	"fmt"

	"github.com/fwojciec/postcraft"
)

// Run executes the platforms command.
func (c *PlatformsCmd) Run(deps *Dependencies) error {
	for _, p := range postcraft.Policies() {
		marker := ""
		if p.Key == postcraft.DefaultPlatform {
			marker = " (default)"
		}
		fmt.Fprintf(deps.Stdout, "%-10s %s%s\n", p.Key, p.DisplayName, marker)
		fmt.Fprintf(deps.Stdout, "           Optimal: %s, max %d\n", p.OptimalLength, p.MaxLength)
		fmt.Fprintf(deps.Stdout, "           %s\n", p.Summary)
	}
	return nil
}
