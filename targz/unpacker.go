// Package targz extracts gzip-compressed tar archives, the distribution
// format package repositories publish.
package targz

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/refdex"
)

// Ensure Unpacker implements refdex.Unpacker at compile time.
var _ refdex.Unpacker = (*Unpacker)(nil)

// Unpacker extracts .tar.gz archives into a directory.
type Unpacker struct{}

// NewUnpacker creates a new Unpacker.
func NewUnpacker() *Unpacker {
	return &Unpacker{}
}

// Unpack extracts the archive at archivePath into destDir. Entries that
// would escape destDir are rejected. Only regular files and directories
// are extracted; other entry types are skipped.
func (u *Unpacker) Unpack(archivePath, destDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return refdex.Errorf(refdex.EINVALID, "archive %q: not gzip compressed: %v", filepath.Base(archivePath), err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return refdex.Errorf(refdex.EINVALID, "archive %q: corrupt tar: %v", filepath.Base(archivePath), err)
		}

		target, err := securePath(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			if err := writeFile(target, tr); err != nil {
				return err
			}
		}
	}
}

// securePath joins name onto destDir, rejecting entries that would resolve
// outside destDir.
func securePath(destDir, name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", refdex.Errorf(refdex.EINVALID, "archive entry %q escapes destination", name)
	}
	return filepath.Join(destDir, cleaned), nil
}

func writeFile(target string, r io.Reader) error {
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
