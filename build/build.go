// Package build orchestrates a catalog build: archive retrieval, unpacking,
// topic extraction, and the join/filter stages that produce the final
// catalog.
package build

import (
	"context"
	"log/slog"
	"sort"

	"github.com/fwojciec/refdex"
)

// Builder runs the catalog pipeline. Control flows strictly forward:
// fetch, unpack, extract, join, filter.
type Builder struct {
	Fetcher   refdex.ArchiveFetcher
	Unpacker  refdex.Unpacker
	Extractor refdex.TopicExtractor

	// Logger receives warnings for degraded packages (malformed metadata).
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Result holds the outcome of a catalog build.
type Result struct {
	Catalog refdex.Catalog

	// Packages is the number of packages indexed.
	Packages int

	// Topics is the number of raw topic records before filtering.
	Topics int

	// Degraded lists packages whose metadata could not be parsed and
	// which contributed an empty topic table, sorted.
	Degraded []string
}

// Stage identifies a pipeline stage in progress events.
type Stage int

const (
	StageFetch Stage = iota
	StageUnpack
	StageExtract
)

// ProgressEvent reports per-package progress during a build.
type ProgressEvent struct {
	Stage   Stage
	Package string
}

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// Build runs the full pipeline for the given requests. The scratch area is
// supplied and cleaned up by the caller. A retrieval or unpack failure
// aborts the build with no partial catalog; malformed per-package metadata
// degrades to an empty topic table for that package.
func (b *Builder) Build(ctx context.Context, reqs []refdex.PackageRequest, filter *refdex.AliasFilter, scratch refdex.Scratch, progress ProgressFunc) (*Result, error) {
	if err := refdex.ValidateRequests(reqs); err != nil {
		return nil, err
	}

	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ids := make([]string, len(reqs))
	for i, req := range reqs {
		ids[i] = req.ID
	}

	// Fetch. The fetcher fails the whole run if any id is missing.
	archives, err := b.Fetcher.FetchAll(ctx, ids, scratch.ArchiveDir())
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, err := scratch.RecordArchive(id, archives[id]); err != nil {
			return nil, err
		}
		if progress != nil {
			progress(ProgressEvent{Stage: StageFetch, Package: id})
		}
	}

	// Unpack every archive before extracting anything, collecting all
	// failures so the error names every offending package.
	pkgDirs := make(map[string]string, len(ids))
	var unpackFailed []string
	for _, id := range ids {
		dir, err := scratch.PackageDir(id)
		if err != nil {
			return nil, err
		}
		if err := b.Unpacker.Unpack(archives[id], dir); err != nil {
			unpackFailed = append(unpackFailed, id)
			continue
		}
		pkgDirs[id] = dir
		if progress != nil {
			progress(ProgressEvent{Stage: StageUnpack, Package: id})
		}
	}
	if len(unpackFailed) > 0 {
		return nil, refdex.NewUnpackError(unpackFailed)
	}

	// Extract. One broken package's metadata must not block indexing the
	// rest, so EINVALID degrades to an empty table with a warning.
	var topics []refdex.Topic
	var degraded []string
	for _, id := range ids {
		pkgTopics, err := b.Extractor.Extract(pkgDirs[id], id)
		if err != nil {
			if refdex.ErrorCode(err) != refdex.EINVALID {
				return nil, err
			}
			logger.Warn("skipping package metadata",
				"package", id,
				"error", refdex.ErrorMessage(err),
			)
			degraded = append(degraded, id)
			continue
		}
		topics = append(topics, pkgTopics...)
		if progress != nil {
			progress(ProgressEvent{Stage: StageExtract, Package: id})
		}
	}
	sort.Strings(degraded)

	catalog := refdex.Filter(refdex.Join(topics, reqs), filter)

	return &Result{
		Catalog:  catalog,
		Packages: len(reqs),
		Topics:   len(topics),
		Degraded: degraded,
	}, nil
}
