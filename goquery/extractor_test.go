package goquery_test

import (
	"os"
	"path/filepath"
	"testing"

	refdexgoquery "github.com/fwojciec/refdex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, name, html string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(html), 0644))
}

func TestExtractor_Extract_TitleFromH1(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePage(t, filepath.Join(dir, "reference"), "foo.html",
		`<html><head><title>ignored</title></head><body><h1>Foo Function</h1></body></html>`)

	topics, err := refdexgoquery.NewExtractor().Extract(dir, "alpha")

	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "foo", topics[0].Alias)
	assert.Equal(t, "Foo Function", topics[0].Title)
	assert.Equal(t, "alpha", topics[0].Package)
	assert.Equal(t, "foo.html", topics[0].File)
}

func TestExtractor_Extract_TitleFallsBackToTitleTag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePage(t, filepath.Join(dir, "reference"), "bar.html",
		`<html><head><title>Bar Function</title></head><body></body></html>`)

	topics, err := refdexgoquery.NewExtractor().Extract(dir, "alpha")

	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "Bar Function", topics[0].Title)
}

func TestExtractor_Extract_AliasesFromMetaTag(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePage(t, filepath.Join(dir, "reference"), "foo.html",
		`<html><head><meta name="topic-aliases" content="foo, foo_bar"></head><body><h1>Foo</h1></body></html>`)

	topics, err := refdexgoquery.NewExtractor().Extract(dir, "alpha")

	require.NoError(t, err)
	// File stem first, then declared aliases minus duplicates.
	require.Len(t, topics, 2)
	assert.Equal(t, "foo", topics[0].Alias)
	assert.Equal(t, "foo_bar", topics[1].Alias)
}

func TestExtractor_Extract_NoReferenceDir(t *testing.T) {
	t.Parallel()

	topics, err := refdexgoquery.NewExtractor().Extract(t.TempDir(), "alpha")

	require.NoError(t, err)
	assert.Empty(t, topics)
}

func TestExtractor_Extract_ReferenceDirInSingleTopLevelDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writePage(t, filepath.Join(dir, "alpha", "reference"), "foo.html",
		`<html><body><h1>Foo</h1></body></html>`)

	topics, err := refdexgoquery.NewExtractor().Extract(dir, "alpha")

	require.NoError(t, err)
	require.Len(t, topics, 1)
}

func TestExtractor_Extract_DeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	refDir := filepath.Join(dir, "reference")
	writePage(t, refDir, "zeta.html", `<html><body><h1>Zeta</h1></body></html>`)
	writePage(t, refDir, "alpha.html", `<html><body><h1>Alpha</h1></body></html>`)

	topics, err := refdexgoquery.NewExtractor().Extract(dir, "pkg")

	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "alpha", topics[0].Alias)
	assert.Equal(t, "zeta", topics[1].Alias)
}
