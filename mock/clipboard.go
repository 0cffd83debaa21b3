package mock

import "github.com/fwojciec/postcraft"

var _ postcraft.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of postcraft.Clipboard.
type Clipboard struct {
	WriteAllFn func(text string) error
}

func (c *Clipboard) WriteAll(text string) error {
	return c.WriteAllFn(text)
}
