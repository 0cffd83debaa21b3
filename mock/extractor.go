package mock

import "github.com/fwojciec/postcraft"

var _ postcraft.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of postcraft.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*postcraft.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*postcraft.ExtractResult, error) {
	return e.ExtractFn(html)
}
