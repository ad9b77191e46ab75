// Package yaml parses refdex's YAML surfaces: per-package topic metadata
// and the package manifest supplied to a build.
package yaml

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/refdex"
	"gopkg.in/yaml.v3"
)

// MetadataFile is the topic metadata filename packages ship at their root.
const MetadataFile = "topics.yml"

// Ensure Extractor implements refdex.TopicExtractor at compile time.
var _ refdex.TopicExtractor = (*Extractor)(nil)

// Extractor reads a package's topics.yml metadata. One metadata entry may
// declare several aliases for the same documented topic; Extract expands it
// into one Topic per alias.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// metadataDoc mirrors the topics.yml schema.
type metadataDoc struct {
	Topics []metadataEntry `yaml:"topics"`
}

type metadataEntry struct {
	Title   string   `yaml:"title"`
	File    string   `yaml:"file"`
	Aliases []string `yaml:"aliases"`
}

// Extract parses the package's topic metadata. A package without metadata
// yields an empty result, not an error. Malformed metadata returns an
// EINVALID error so the caller can degrade it to an empty table.
func (e *Extractor) Extract(pkgDir, pkg string) ([]refdex.Topic, error) {
	path, ok := findMetadata(pkgDir)
	if !ok {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc metadataDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, refdex.Errorf(refdex.EINVALID, "package %q: malformed topic metadata: %v", pkg, err)
	}

	var topics []refdex.Topic
	for _, entry := range doc.Topics {
		for _, alias := range entry.Aliases {
			if alias == "" {
				continue
			}
			topics = append(topics, refdex.Topic{
				Alias:   alias,
				Title:   entry.Title,
				Package: pkg,
				File:    entry.File,
			})
		}
	}
	return topics, nil
}

// findMetadata locates topics.yml at the package root, or one level down
// when the archive wraps its contents in a single top-level directory.
func findMetadata(pkgDir string) (string, bool) {
	path := filepath.Join(pkgDir, MetadataFile)
	if _, err := os.Stat(path); err == nil {
		return path, true
	}

	entries, err := os.ReadDir(pkgDir)
	if err != nil {
		return "", false
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	if len(dirs) != 1 {
		return "", false
	}

	path = filepath.Join(pkgDir, dirs[0], MetadataFile)
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	return "", false
}
