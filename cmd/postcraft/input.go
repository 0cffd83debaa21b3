package main

import (
	"io"
	"os"

	"github.com/fwojciec/postcraft"
	"github.com/fwojciec/postcraft/compose"
)

// input builds the compose input from the flags, reading the file or stdin
// when no URL is given.
func (f *InputFlags) input(deps *Dependencies) (compose.Input, error) {
	in := compose.Input{
		Title:    f.Title,
		Platform: postcraft.PlatformKey(f.Platform),
	}

	switch {
	case f.URL != "":
		in.Mode = compose.ModeURL
		in.URL = f.URL
	case f.File != "":
		b, err := os.ReadFile(f.File)
		if err != nil {
			return compose.Input{}, postcraft.Errorf(postcraft.EINVALID, "read %s: %v", f.File, err)
		}
		in.Content = string(b)
	case deps.Stdin != nil:
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return compose.Input{}, postcraft.Errorf(postcraft.EINVALID, "read stdin: %v", err)
		}
		in.Content = string(b)
	}
	return in, nil
}
