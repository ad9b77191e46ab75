package refdex

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ArchiveFetcher retrieves package archives from a package repository.
type ArchiveFetcher interface {
	// FetchAll downloads the archive for every requested package id into
	// destDir and returns a map from package id to the downloaded archive
	// path. If any id cannot be retrieved the whole call fails with a
	// *RetrievalError enumerating every failed id; no partial result is
	// returned. The context bounds the entire operation.
	FetchAll(ctx context.Context, ids []string, destDir string) (map[string]string, error)
}

// Unpacker extracts a downloaded archive into a directory.
type Unpacker interface {
	// Unpack extracts the archive at archivePath into destDir.
	Unpack(archivePath, destDir string) error
}

// PageFetcher retrieves a single page body over the network.
// Used by the preview command to render a topic's reference page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// RetrievalError reports packages whose archives could not be downloaded.
// It is fatal: the catalog build aborts and no partial catalog is produced.
type RetrievalError struct {
	// Packages lists the offending package ids, sorted.
	Packages []string
}

// NewRetrievalError returns a RetrievalError for the given package ids,
// sorted for stable messages.
func NewRetrievalError(pkgs []string) *RetrievalError {
	sorted := append([]string(nil), pkgs...)
	sort.Strings(sorted)
	return &RetrievalError{Packages: sorted}
}

// Error implements the error interface.
func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to retrieve %d package(s): %s",
		len(e.Packages), strings.Join(e.Packages, ", "))
}

// UnpackError reports packages whose archives could not be extracted.
// It is fatal: the catalog build aborts and no partial catalog is produced.
type UnpackError struct {
	// Packages lists the offending package ids, sorted.
	Packages []string
}

// NewUnpackError returns an UnpackError for the given package ids,
// sorted for stable messages.
func NewUnpackError(pkgs []string) *UnpackError {
	sorted := append([]string(nil), pkgs...)
	sort.Strings(sorted)
	return &UnpackError{Packages: sorted}
}

// Error implements the error interface.
func (e *UnpackError) Error() string {
	return fmt.Sprintf("failed to unpack %d package(s): %s",
		len(e.Packages), strings.Join(e.Packages, ", "))
}
