package main_test

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/refdex"
	main "github.com/fwojciec/refdex/cmd/refdex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// archiveBytes builds an in-memory .tar.gz with the given files.
func archiveBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0644,
			Size:     int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestMain_Run_BuildEndToEnd(t *testing.T) {
	t.Parallel()

	alpha := archiveBytes(t, map[string]string{
		"topics.yml": `topics:
  - title: Foo Function
    file: foo.html
    aliases: [foo, foo_bar]
  - title: alpha-package
    file: alpha.html
    aliases: [_PACKAGE]
`,
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/alpha.tar.gz" {
			_, _ = w.Write(alpha)
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	manifest := writeManifest(t, `packages:
  - id: alpha
    url: https://alpha.example/
`)
	out := filepath.Join(t.TempDir(), "catalog.json")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	m := main.NewMain()
	err := m.Run(context.Background(), []string{
		"build", manifest,
		"--repo", srv.URL,
		"--out", out,
		"--workspace-dir", t.TempDir(),
	}, stdout, stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var catalog refdex.Catalog
	require.NoError(t, json.Unmarshal(data, &catalog))

	// The _PACKAGE sentinel entry is filtered; the two aliases remain.
	require.Len(t, catalog, 2)
	assert.Equal(t, "foo", catalog[0].Alias)
	assert.Equal(t, "https://alpha.example/reference/foo.html", catalog[0].URL)
	assert.Equal(t, "foo_bar", catalog[1].Alias)

	// Checksum sidecar written alongside the catalog.
	_, err = os.Stat(out + ".sum")
	assert.NoError(t, err)
}

func TestMain_Run_BuildAbortsOnMissingPackage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	manifest := writeManifest(t, `packages:
  - id: ghost
    url: https://ghost.example/
`)
	out := filepath.Join(t.TempDir(), "catalog.json")

	m := main.NewMain()
	err := m.Run(context.Background(), []string{
		"build", manifest,
		"--repo", srv.URL,
		"--out", out,
		"--workspace-dir", t.TempDir(),
	}, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")

	// No partial catalog is produced.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMain_Run_NoCommand(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	m := main.NewMain()
	err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "build")
}
