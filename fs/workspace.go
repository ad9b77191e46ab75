// Package fs provides the build's filesystem surfaces: the scoped scratch
// workspace archives are unpacked into and the atomic catalog writer.
package fs

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/refdex"
	"github.com/google/uuid"
)

// Ensure Workspace implements refdex.Scratch at compile time.
var _ refdex.Scratch = (*Workspace)(nil)

// Workspace is a scoped scratch directory for one catalog build. It is
// acquired at the start of a build and removed by Cleanup on every exit
// path; nothing in it survives across runs.
type Workspace struct {
	id   string
	root string

	mu       sync.Mutex
	archives map[string]string // package id -> archive checksum
}

// AcquireWorkspace creates a fresh workspace under baseDir.
// If baseDir is empty, the system temp directory is used.
func AcquireWorkspace(baseDir string) (*Workspace, error) {
	if baseDir == "" {
		baseDir = os.TempDir()
	}

	id := uuid.New().String()
	root := filepath.Join(baseDir, "refdex-"+id)
	if err := os.MkdirAll(filepath.Join(root, "archives"), 0755); err != nil {
		return nil, err
	}

	return &Workspace{
		id:       id,
		root:     root,
		archives: make(map[string]string),
	}, nil
}

// ID returns the workspace's unique run identifier.
func (w *Workspace) ID() string {
	return w.id
}

// Root returns the workspace's root directory.
func (w *Workspace) Root() string {
	return w.root
}

// ArchiveDir returns the directory downloaded archives are written to.
func (w *Workspace) ArchiveDir() string {
	return filepath.Join(w.root, "archives")
}

// PackageDir returns the directory the package's archive is unpacked into,
// creating it if needed.
func (w *Workspace) PackageDir(pkg string) (string, error) {
	dir := filepath.Join(w.root, "packages", pkg)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// RecordArchive hashes the downloaded archive and records the checksum in
// the workspace manifest.
func (w *Workspace) RecordArchive(pkg, archivePath string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	sum := strconv.FormatUint(h.Sum64(), 16)

	w.mu.Lock()
	w.archives[pkg] = sum
	w.mu.Unlock()

	return sum, nil
}

// Manifest describes a workspace's downloaded archives.
type Manifest struct {
	RunID     string            `json:"runId"`
	CreatedAt time.Time         `json:"createdAt"`
	Archives  map[string]string `json:"archives"`
}

// WriteManifest writes the workspace manifest, recording the run id and the
// checksum of every downloaded archive.
func (w *Workspace) WriteManifest() error {
	w.mu.Lock()
	archives := make(map[string]string, len(w.archives))
	for pkg, sum := range w.archives {
		archives[pkg] = sum
	}
	w.mu.Unlock()

	m := Manifest{
		RunID:     w.id,
		CreatedAt: time.Now().UTC(),
		Archives:  archives,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.root, "manifest.json"), data, 0644)
}

// Cleanup removes the workspace and everything in it.
func (w *Workspace) Cleanup() error {
	return os.RemoveAll(w.root)
}
