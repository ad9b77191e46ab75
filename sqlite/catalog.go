package sqlite

import (
	"context"
	"strings"

	"github.com/fwojciec/refdex"
)

// Compile-time interface verification.
var _ refdex.CatalogService = (*CatalogService)(nil)

// CatalogService implements refdex.CatalogService using SQLite.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// ReplaceCatalog atomically replaces the stored catalog. The previous run's
// rows are deleted and the new rows inserted inside one transaction, so
// readers see either the old catalog or the new one, never a mix.
func (s *CatalogService) ReplaceCatalog(ctx context.Context, catalog refdex.Catalog) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog`); err != nil {
		return err
	}

	for _, row := range catalog {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO catalog (alias, package, url, title)
			VALUES (?, ?, ?, ?)
		`, row.Alias, row.Package, row.URL, row.Title)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRows retrieves rows matching the filter in (alias, package) order.
func (s *CatalogService) FindRows(ctx context.Context, filter refdex.CatalogRowFilter) ([]refdex.CatalogRow, error) {
	where, args := []string{"1 = 1"}, []any{}
	if v := filter.Alias; v != nil {
		where, args = append(where, "alias = ?"), append(args, *v)
	}
	if v := filter.Package; v != nil {
		where, args = append(where, "package = ?"), append(args, *v)
	}
	if v := filter.TitleContains; v != nil {
		where, args = append(where, "lower(title) LIKE ?"), append(args, "%"+strings.ToLower(*v)+"%")
	}

	query := `
		SELECT alias, url, title, package
		FROM catalog
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY alias ASC, package ASC
		` + formatLimitOffset(filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []refdex.CatalogRow
	for rows.Next() {
		var row refdex.CatalogRow
		if err := rows.Scan(&row.Alias, &row.URL, &row.Title, &row.Package); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
