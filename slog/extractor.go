package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/refdex"
)

// Ensure LoggingExtractor implements refdex.TopicExtractor.
var _ refdex.TopicExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a TopicExtractor with per-package logging.
type LoggingExtractor struct {
	next   refdex.TopicExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next refdex.TopicExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the topic count.
func (e *LoggingExtractor) Extract(pkgDir, pkg string) ([]refdex.Topic, error) {
	begin := time.Now()
	topics, err := e.next.Extract(pkgDir, pkg)
	if err != nil {
		e.logger.Warn("topic extraction failed",
			"package", pkg,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Debug("topics extracted",
		"package", pkg,
		"topics", len(topics),
		"duration", time.Since(begin),
	)
	return topics, nil
}
