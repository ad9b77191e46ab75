package main

import (
	"fmt"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/fs"
	"github.com/fwojciec/refdex/yaml"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	m, err := yaml.LoadManifest(c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		return err
	}

	pattern := c.Filter
	if pattern == "" {
		pattern = m.Filter
	}
	filter, err := refdex.CompileAliasFilter(pattern)
	if err != nil {
		return err
	}

	ws, err := fs.AcquireWorkspace(c.WorkspaceDir)
	if err != nil {
		return fmt.Errorf("failed to acquire workspace: %w", err)
	}
	if !c.KeepWorkspace {
		defer ws.Cleanup()
	}

	result, err := deps.Builder.Build(deps.Ctx, m.Packages, filter, ws, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if err := fs.NewCatalogWriter(c.Out).Write(result.Catalog); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	if deps.Catalogs != nil {
		if err := deps.Catalogs.ReplaceCatalog(deps.Ctx, result.Catalog); err != nil {
			return fmt.Errorf("failed to store catalog: %w", err)
		}
	}

	for _, pkg := range result.Degraded {
		fmt.Fprintf(deps.Stderr, "warning: skipped metadata for %s\n", pkg)
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d package(s): %d topic(s), %d catalog row(s) -> %s\n",
		result.Packages, result.Topics, len(result.Catalog), c.Out)

	if c.KeepWorkspace {
		if err := ws.WriteManifest(); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Workspace kept at %s\n", ws.Root())
	}

	return nil
}
