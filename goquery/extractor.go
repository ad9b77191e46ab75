// Package goquery provides an HTML-scraping fallback for topic extraction,
// used when a package ships no topic metadata. It scans the package's
// reference pages directly.
package goquery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/refdex"
)

// aliasMetaName is the meta tag reference pages use to declare additional
// aliases for their topic.
const aliasMetaName = "topic-aliases"

// Ensure Extractor implements refdex.TopicExtractor at compile time.
var _ refdex.TopicExtractor = (*Extractor)(nil)

// Extractor derives topic records by scraping a package's reference HTML
// pages: the title from the first <h1> (falling back to <title>), aliases
// from the topic-aliases meta tag plus the file's stem.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scans reference/*.html under the package directory. A package
// without a reference directory yields an empty result, not an error.
// Pages are visited in lexical filename order so output is deterministic.
func (e *Extractor) Extract(pkgDir, pkg string) ([]refdex.Topic, error) {
	refDir, ok := findReferenceDir(pkgDir)
	if !ok {
		return nil, nil
	}

	entries, err := os.ReadDir(refDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var topics []refdex.Topic
	for _, name := range names {
		pageTopics, err := e.extractPage(filepath.Join(refDir, name), name, pkg)
		if err != nil {
			return nil, err
		}
		topics = append(topics, pageTopics...)
	}
	return topics, nil
}

// extractPage parses one reference page into its topic records.
func (e *Extractor) extractPage(path, file, pkg string) ([]refdex.Topic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, refdex.Errorf(refdex.EINVALID, "package %q: unparseable reference page %q: %v", pkg, file, err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	aliases := pageAliases(doc, file)

	topics := make([]refdex.Topic, 0, len(aliases))
	for _, alias := range aliases {
		topics = append(topics, refdex.Topic{
			Alias:   alias,
			Title:   title,
			Package: pkg,
			File:    file,
		})
	}
	return topics, nil
}

// pageAliases returns the page's declared aliases, defaulting to the file
// stem when the page declares none. The stem is always included so the
// topic stays reachable under its canonical name.
func pageAliases(doc *goquery.Document, file string) []string {
	stem := strings.TrimSuffix(file, ".html")
	aliases := []string{stem}
	seen := map[string]bool{stem: true}

	content, _ := doc.Find(`meta[name="` + aliasMetaName + `"]`).First().Attr("content")
	for _, alias := range strings.Split(content, ",") {
		alias = strings.TrimSpace(alias)
		if alias == "" || seen[alias] {
			continue
		}
		seen[alias] = true
		aliases = append(aliases, alias)
	}
	return aliases
}

// findReferenceDir locates the reference directory at the package root, or
// one level down when the archive wraps its contents in a single top-level
// directory.
func findReferenceDir(pkgDir string) (string, bool) {
	dir := filepath.Join(pkgDir, "reference")
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir, true
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

	dir = filepath.Join(pkgDir, dirs[0], "reference")
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir, true
	}
	return "", false
}
