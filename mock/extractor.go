package mock

import "github.com/fwojciec/refdex"

var _ refdex.TopicExtractor = (*TopicExtractor)(nil)

// TopicExtractor is a mock implementation of refdex.TopicExtractor.
type TopicExtractor struct {
	ExtractFn func(pkgDir, pkg string) ([]refdex.Topic, error)
}

func (e *TopicExtractor) Extract(pkgDir, pkg string) ([]refdex.Topic, error) {
	return e.ExtractFn(pkgDir, pkg)
}

var _ refdex.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of refdex.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*refdex.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*refdex.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ refdex.Converter = (*Converter)(nil)

// Converter is a mock implementation of refdex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
