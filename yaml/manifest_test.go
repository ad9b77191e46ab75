package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/refdex"
	refdexyaml "github.com/fwojciec/refdex/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packages.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `filter: "^geom_"
packages:
  - id: alpha
    url: https://alpha.example/
  - id: beta
    url: https://beta.example/
`)

	m, err := refdexyaml.LoadManifest(path)

	require.NoError(t, err)
	assert.Equal(t, "^geom_", m.Filter)
	require.Len(t, m.Packages, 2)
	assert.Equal(t, refdex.PackageRequest{ID: "alpha", BaseURL: "https://alpha.example/"}, m.Packages[0])
}

func TestLoadManifest_NotFound(t *testing.T) {
	t.Parallel()

	_, err := refdexyaml.LoadManifest(filepath.Join(t.TempDir(), "missing.yml"))

	require.Error(t, err)
	assert.Equal(t, refdex.ENOTFOUND, refdex.ErrorCode(err))
}

func TestLoadManifest_NoPackages(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "packages: []\n")

	_, err := refdexyaml.LoadManifest(path)

	require.Error(t, err)
	assert.Equal(t, refdex.EINVALID, refdex.ErrorCode(err))
}

func TestLoadManifest_InvalidRequest(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `packages:
  - id: alpha
`)

	_, err := refdexyaml.LoadManifest(path)

	require.Error(t, err)
	assert.Equal(t, refdex.EINVALID, refdex.ErrorCode(err))
}
