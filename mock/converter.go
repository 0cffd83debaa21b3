package mock

import "github.com/fwojciec/postcraft"

var _ postcraft.Converter = (*Converter)(nil)

// Converter is a mock implementation of postcraft.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
