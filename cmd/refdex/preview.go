package main

import (
	"fmt"

	"github.com/fwojciec/refdex"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	rows, err := deps.Catalogs.FindRows(deps.Ctx, refdex.CatalogRowFilter{
		Alias:   &c.Alias,
		Package: &c.Package,
		Limit:   1,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		return err
	}
	if len(rows) == 0 {
		err := refdex.Errorf(refdex.ENOTFOUND, "topic %q not found in package %q", c.Alias, c.Package)
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Hint: run 'refdex build' first to populate the catalog database")
		return err
	}
	row := rows[0]

	html, err := deps.Pages.Fetch(deps.Ctx, row.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", row.URL, err)
	}

	extracted, err := deps.Content.Extract(html)
	if err != nil {
		return fmt.Errorf("failed to extract content: %w", err)
	}

	markdown, err := deps.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return fmt.Errorf("failed to convert content: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "%s (%s)\n%s\n\n", row.Title, row.URL, markdown)

	return nil
}
