// Package http provides HTTP-based implementations of refdex fetching
// interfaces: archive retrieval from a package repository and single-page
// retrieval for topic previews.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/refdex"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// DefaultRepositoryURL is the public package repository used when no
// override is configured.
const DefaultRepositoryURL = "https://repo.refdex.dev"

// DefaultArchiveTimeout bounds the download of a single package archive.
// A timed-out download counts as a retrieval failure.
const DefaultArchiveTimeout = 30 * time.Second

// DefaultConcurrency is the number of archives downloaded in parallel.
// Parallel fetch is a pure performance optimization; the catalog's final
// sort makes row order independent of fetch order.
const DefaultConcurrency = 4

// Ensure Repository implements refdex.ArchiveFetcher at compile time.
var _ refdex.ArchiveFetcher = (*Repository)(nil)

// Repository downloads package archives from a remote package repository
// over HTTP. The repository may serve an index.xml mapping package names to
// archive filenames; without one, archives are assumed to be published as
// <id>.tar.gz at the repository root.
type Repository struct {
	client      *http.Client
	baseURL     string
	timeout     time.Duration
	concurrency int
	limiter     *rate.Limiter
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithBaseURL sets the repository endpoint.
// Defaults to DefaultRepositoryURL.
func WithBaseURL(u string) RepositoryOption {
	return func(r *Repository) {
		r.baseURL = u
	}
}

// WithTimeout sets the per-archive download timeout.
// Defaults to DefaultArchiveTimeout.
func WithTimeout(d time.Duration) RepositoryOption {
	return func(r *Repository) {
		r.timeout = d
	}
}

// WithConcurrency sets the parallel download limit.
// Defaults to DefaultConcurrency.
func WithConcurrency(n int) RepositoryOption {
	return func(r *Repository) {
		r.concurrency = n
	}
}

// WithRateLimit throttles repository requests to rps requests per second,
// with a burst of 1. Zero or negative disables throttling.
func WithRateLimit(rps float64) RepositoryOption {
	return func(r *Repository) {
		if rps > 0 {
			r.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewRepository creates a Repository using the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewRepository(client *http.Client, opts ...RepositoryOption) *Repository {
	if client == nil {
		client = http.DefaultClient
	}
	r := &Repository{
		client:      client,
		baseURL:     DefaultRepositoryURL,
		timeout:     DefaultArchiveTimeout,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FetchAll downloads the archive for every requested package id into destDir.
// If any id fails the whole call fails with a *refdex.RetrievalError naming
// exactly the failed ids; no retries are attempted.
func (r *Repository) FetchAll(ctx context.Context, ids []string, destDir string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	index, err := r.fetchIndex(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		got    = make(map[string]string, len(ids))
		failed []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, id := range ids {
		g.Go(func() error {
			path, err := r.fetchArchive(gctx, index, id, destDir)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed = append(failed, id)
				return nil
			}
			got[id] = path
			return nil
		})
	}

	// Workers never return errors; failures are collected per package.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(failed) > 0 {
		return nil, refdex.NewRetrievalError(failed)
	}
	return got, nil
}

// fetchIndex retrieves and parses the repository index. A repository without
// an index is not an error; archive names then default to <id>.tar.gz.
func (r *Repository) fetchIndex(ctx context.Context) (map[string]string, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/index.xml", nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, refdex.Errorf(refdex.EUNAVAILABLE, "parsing repository index: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, refdex.Errorf(refdex.EUNAVAILABLE, "empty repository index")
	}

	index := make(map[string]string)
	for _, el := range root.SelectElements("package") {
		name := el.SelectAttrValue("name", "")
		archive := el.SelectAttrValue("archive", "")
		if name != "" && archive != "" {
			index[name] = archive
		}
	}
	return index, nil
}

// fetchArchive downloads a single package's archive into destDir and returns
// the downloaded file's path.
func (r *Repository) fetchArchive(ctx context.Context, index map[string]string, id, destDir string) (string, error) {
	name := id + ".tar.gz"
	if len(index) > 0 {
		// An indexed repository is authoritative: a package absent from
		// the index does not exist.
		indexed, ok := index[id]
		if !ok {
			return "", refdex.Errorf(refdex.ENOTFOUND, "package %q not in repository index", id)
		}
		name = indexed
	}

	if err := r.wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/"+name, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, req.URL)
	}

	path := filepath.Join(destDir, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return path, nil
}

// wait blocks on the politeness rate limiter, if one is configured.
func (r *Repository) wait(ctx context.Context) error {
	if r.limiter == nil {
		return nil
	}
	return r.limiter.Wait(ctx)
}
