package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/refdex/build"
	"github.com/fwojciec/refdex/goquery"
	"github.com/fwojciec/refdex/htmltomarkdown"
	refdexhttp "github.com/fwojciec/refdex/http"
	refdexslog "github.com/fwojciec/refdex/slog"
	"github.com/fwojciec/refdex/sqlite"
	"github.com/fwojciec/refdex/targz"
	"github.com/fwojciec/refdex/trafilatura"
	"github.com/fwojciec/refdex/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened only when a command needs the catalog store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("refdex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'refdex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire command-specific dependencies based on command
	if cmd == "build" {
		repo := refdexhttp.NewRepository(nil,
			refdexhttp.WithBaseURL(repoURL(cli.Build.Repo)),
			refdexhttp.WithConcurrency(cli.Build.Concurrency),
		)
		extractor := &build.FallbackExtractor{
			Primary:  yaml.NewExtractor(),
			Fallback: goquery.NewExtractor(),
		}
		deps.Builder = &build.Builder{
			Fetcher:   refdexslog.NewLoggingFetcher(repo, deps.Logger),
			Unpacker:  targz.NewUnpacker(),
			Extractor: refdexslog.NewLoggingExtractor(extractor, deps.Logger),
			Logger:    deps.Logger,
		}

		if cli.Build.DB != "" {
			if err := m.openDB(cli.Build.DB, deps, stderr); err != nil {
				return err
			}
			defer m.Close()
		}
	}

	if cmd == "preview" {
		if err := m.openDB(cli.Preview.DB, deps, stderr); err != nil {
			return err
		}
		defer m.Close()

		deps.Pages = refdexhttp.NewFetcher()
		deps.Content = trafilatura.NewExtractor()
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

// openDB opens the catalog database and wires the catalog service.
func (m *Main) openDB(path string, deps *Dependencies, stderr io.Writer) error {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: pass --db to use a different database path")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	deps.Catalogs = sqlite.NewCatalogService(m.DB)
	return nil
}

// repoURL resolves the package repository endpoint: flag, then REFDEX_REPO,
// then the public default.
func repoURL(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("REFDEX_REPO"); env != "" {
		return env
	}
	return refdexhttp.DefaultRepositoryURL
}
