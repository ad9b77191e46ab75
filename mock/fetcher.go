package mock

import (
	"context"

	"github.com/fwojciec/refdex"
)

var _ refdex.ArchiveFetcher = (*ArchiveFetcher)(nil)

// ArchiveFetcher is a mock implementation of refdex.ArchiveFetcher.
type ArchiveFetcher struct {
	FetchAllFn func(ctx context.Context, ids []string, destDir string) (map[string]string, error)
}

func (f *ArchiveFetcher) FetchAll(ctx context.Context, ids []string, destDir string) (map[string]string, error) {
	return f.FetchAllFn(ctx, ids, destDir)
}

var _ refdex.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of refdex.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *PageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
