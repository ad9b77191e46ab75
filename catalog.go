package refdex

import (
	"context"
	"sort"
	"strings"
)

// CatalogRow is the final unit of catalog output.
type CatalogRow struct {
	// Alias is the exported name the topic is searchable under.
	Alias string `json:"alias"`

	// URL is the fully qualified reference URL for the topic.
	URL string `json:"url"`

	// Title is the topic's display title, normalized to a single line.
	Title string `json:"title"`

	// Package is the identifier of the owning package.
	Package string `json:"package"`
}

// Catalog is an ordered sequence of catalog rows, sorted ascending by
// (alias, package). It is rebuilt from upstream package sources on every
// run and is never persisted across runs.
type Catalog []CatalogRow

// CatalogService stores the catalog for consumption by the site's search
// pages. The catalog is replaced wholesale on every build; it is never
// merged with a previous run's rows.
type CatalogService interface {
	// ReplaceCatalog atomically replaces the stored catalog.
	ReplaceCatalog(ctx context.Context, catalog Catalog) error

	// FindRows retrieves rows matching the filter, in catalog order.
	FindRows(ctx context.Context, filter CatalogRowFilter) ([]CatalogRow, error)
}

// CatalogRowFilter represents a filter for FindRows.
type CatalogRowFilter struct {
	Alias   *string `json:"alias"`
	Package *string `json:"package"`

	// TitleContains matches rows whose title contains the substring,
	// case-insensitive.
	TitleContains *string `json:"titleContains"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Sentinel aliases and titles excluded from the catalog. These are
// boilerplate entries packages generate for themselves rather than
// documentation a reader would search for.
const (
	aliasPackageSentinel = "_PACKAGE"
	aliasPipeOperator    = "%>%"
	titlePipe            = "Pipe"
	titleReexports       = "Objects exported from other packages"
)

// Join concatenates per-package topic tables and left-joins them against the
// request set on package identifier to attach each row's base URL, computing
// the final reference URL per topic. Topics whose package has no matching
// request are dropped; the fetcher's fail-fast contract means this should not
// happen, but a stray record must not crash the build. Embedded line breaks
// in titles are replaced with single spaces.
func Join(topics []Topic, reqs []PackageRequest) []CatalogRow {
	byID := make(map[string]*PackageRequest, len(reqs))
	for i := range reqs {
		byID[reqs[i].ID] = &reqs[i]
	}

	rows := make([]CatalogRow, 0, len(topics))
	for _, t := range topics {
		req, ok := byID[t.Package]
		if !ok {
			continue
		}
		rows = append(rows, CatalogRow{
			Alias:   t.Alias,
			URL:     req.ReferenceURL(t.File),
			Title:   normalizeTitle(t.Title),
			Package: t.Package,
		})
	}
	return rows
}

// normalizeTitle collapses embedded line breaks into single spaces so titles
// are guaranteed single-line downstream.
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r\n", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	return strings.ReplaceAll(title, "\r", " ")
}

// Filter applies the alias inclusion filter and the standard exclusion rules
// to joined rows, drops rows with any missing field, deduplicates by
// (alias, package, url), and returns the final catalog sorted ascending by
// (alias, package), with url and title as tiebreakers. It is pure: no I/O,
// deterministic for a given input regardless of input order.
func Filter(rows []CatalogRow, filter *AliasFilter) Catalog {
	type dedupeKey struct {
		alias, pkg, url string
	}

	out := make(Catalog, 0, len(rows))
	seen := make(map[dedupeKey]bool, len(rows))

	for _, row := range rows {
		if !filter.Match(row.Alias) {
			continue
		}
		if excluded(row) {
			continue
		}
		if row.Alias == "" || row.Title == "" || row.URL == "" || row.Package == "" {
			continue
		}
		key := dedupeKey{row.Alias, row.Package, row.URL}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, row)
	}

	// The URL and title tiebreakers make the order total over retained
	// rows, so the catalog never depends on input order.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Alias != out[j].Alias {
			return out[i].Alias < out[j].Alias
		}
		if out[i].Package != out[j].Package {
			return out[i].Package < out[j].Package
		}
		if out[i].URL != out[j].URL {
			return out[i].URL < out[j].URL
		}
		return out[i].Title < out[j].Title
	})

	return out
}

// excluded reports whether the row matches any exclusion rule.
func excluded(row CatalogRow) bool {
	switch {
	case strings.Contains(row.Alias, "reexport"),
		strings.HasSuffix(row.Alias, "-package"),
		strings.HasPrefix(row.Title, "Internal"),
		strings.HasPrefix(row.Title, "Tidy eval"),
		row.Alias == aliasPackageSentinel,
		row.Title == titlePipe,
		row.Alias == aliasPipeOperator,
		row.Title == titleReexports:
		return true
	}
	return false
}
