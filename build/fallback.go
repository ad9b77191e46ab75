package build

import "github.com/fwojciec/refdex"

// Ensure FallbackExtractor implements refdex.TopicExtractor.
var _ refdex.TopicExtractor = (*FallbackExtractor)(nil)

// FallbackExtractor tries the primary extractor first and falls back to the
// secondary when the primary finds nothing. Errors from the primary are
// returned as-is: metadata that exists but cannot be parsed is a degraded
// package, not a reason to scrape.
type FallbackExtractor struct {
	Primary  refdex.TopicExtractor
	Fallback refdex.TopicExtractor
}

// Extract implements refdex.TopicExtractor.
func (e *FallbackExtractor) Extract(pkgDir, pkg string) ([]refdex.Topic, error) {
	topics, err := e.Primary.Extract(pkgDir, pkg)
	if err != nil {
		return nil, err
	}
	if len(topics) > 0 {
		return topics, nil
	}
	return e.Fallback.Extract(pkgDir, pkg)
}
