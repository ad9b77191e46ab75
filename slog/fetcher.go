// Package slog provides log/slog-based logging decorators for refdex
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/refdex"
)

// Ensure LoggingFetcher implements refdex.ArchiveFetcher.
var _ refdex.ArchiveFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps an ArchiveFetcher with timing and outcome logging.
type LoggingFetcher struct {
	next   refdex.ArchiveFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next refdex.ArchiveFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchAll delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) FetchAll(ctx context.Context, ids []string, destDir string) (map[string]string, error) {
	begin := time.Now()
	got, err := f.next.FetchAll(ctx, ids, destDir)
	if err != nil {
		f.logger.Error("archive fetch failed",
			"requested", len(ids),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	f.logger.Info("archives fetched",
		"requested", len(ids),
		"retrieved", len(got),
		"duration", time.Since(begin),
	)
	return got, nil
}
