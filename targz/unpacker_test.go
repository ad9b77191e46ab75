package targz_test

import (
	"archive/tar"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/refdex"
	"github.com/fwojciec/refdex/targz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeArchive writes a .tar.gz containing the given files and returns its path.
func writeArchive(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pkg.tar.gz")
	f, err := os.Create(path)
	require.NoError(t, err)

	gz := gzip.NewWriter(f)
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
	require.NoError(t, f.Close())

	return path
}

func TestUnpacker_Unpack(t *testing.T) {
	t.Parallel()

	archive := writeArchive(t, map[string]string{
		"topics.yml":         "topics: []\n",
		"reference/foo.html": "<html></html>",
	})
	dest := t.TempDir()

	err := targz.NewUnpacker().Unpack(archive, dest)

	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dest, "topics.yml"))
	require.NoError(t, err)
	assert.Equal(t, "topics: []\n", string(data))

	_, err = os.Stat(filepath.Join(dest, "reference", "foo.html"))
	assert.NoError(t, err)
}

func TestUnpacker_Unpack_NotGzip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.tar.gz")
	require.NoError(t, os.WriteFile(path, []byte("not an archive"), 0644))

	err := targz.NewUnpacker().Unpack(path, t.TempDir())

	require.Error(t, err)
	assert.Equal(t, refdex.EINVALID, refdex.ErrorCode(err))
}

func TestUnpacker_Unpack_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	archive := writeArchive(t, map[string]string{
		"../escape.txt": "outside",
	})

	err := targz.NewUnpacker().Unpack(archive, t.TempDir())

	require.Error(t, err)
	assert.Equal(t, refdex.EINVALID, refdex.ErrorCode(err))
	assert.Contains(t, refdex.ErrorMessage(err), "escapes")
}

func TestUnpacker_Unpack_MissingArchive(t *testing.T) {
	t.Parallel()

	err := targz.NewUnpacker().Unpack(filepath.Join(t.TempDir(), "nope.tar.gz"), t.TempDir())

	assert.Error(t, err)
}
