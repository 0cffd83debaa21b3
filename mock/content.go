package mock

import (
	"context"

	"github.com/fwojciec/postcraft"
)

var _ postcraft.ContentFetcher = (*ContentFetcher)(nil)

// ContentFetcher is a mock implementation of postcraft.ContentFetcher.
type ContentFetcher struct {
	FetchContentFn func(ctx context.Context, url string) (string, error)
}

func (f *ContentFetcher) FetchContent(ctx context.Context, url string) (string, error) {
	return f.FetchContentFn(ctx, url)
}
