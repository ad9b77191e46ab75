package mock

import (
	"context"

	"github.com/fwojciec/refdex"
)

var _ refdex.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of refdex.CatalogService.
type CatalogService struct {
	ReplaceCatalogFn func(ctx context.Context, catalog refdex.Catalog) error
	FindRowsFn       func(ctx context.Context, filter refdex.CatalogRowFilter) ([]refdex.CatalogRow, error)
}

func (s *CatalogService) ReplaceCatalog(ctx context.Context, catalog refdex.Catalog) error {
	return s.ReplaceCatalogFn(ctx, catalog)
}

func (s *CatalogService) FindRows(ctx context.Context, filter refdex.CatalogRowFilter) ([]refdex.CatalogRow, error) {
	return s.FindRowsFn(ctx, filter)
}
