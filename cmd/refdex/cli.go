package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/build"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Builder   *build.Builder
	Catalogs  refdex.CatalogService
	Pages     refdex.PageFetcher
	Content   refdex.ContentExtractor
	Converter refdex.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build    BuildCmd    `cmd:"" help:"Build the topic catalog from a package manifest"`
	Packages PackagesCmd `cmd:"" help:"List the packages in a manifest"`
	Preview  PreviewCmd  `cmd:"" help:"Render a topic's reference page as Markdown"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Manifest      string `arg:"" help:"Path to the package manifest (YAML)"`
	Repo          string `help:"Package repository URL (overrides REFDEX_REPO)"`
	Filter        string `short:"F" help:"Alias inclusion regex (overrides the manifest filter)"`
	Concurrency   int    `short:"c" default:"4" help:"Concurrent download limit"`
	Out           string `short:"o" default:"catalog.json" help:"Catalog JSON output path"`
	DB            string `help:"Also write the catalog to this SQLite database"`
	WorkspaceDir  string `help:"Parent directory for the scratch workspace"`
	KeepWorkspace bool   `help:"Keep the scratch workspace after the build"`
}

// PackagesCmd is the "packages" subcommand.
type PackagesCmd struct {
	Manifest string `arg:"" help:"Path to the package manifest (YAML)"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Package string `arg:"" help:"Package identifier"`
	Alias   string `arg:"" help:"Topic alias"`
	DB      string `default:"catalog.db" help:"Catalog SQLite database to query"`
}
