package refdex

import (
	"regexp"
	"strings"
)

// PackageRequest identifies a package to be indexed and the base URL of its
// published documentation site. Requests are supplied by the caller at the
// start of a build and are immutable for the run's duration.
type PackageRequest struct {
	// ID is the package identifier in the package repository.
	// Unique within a run.
	ID string `json:"id" yaml:"id"`

	// BaseURL is the root of the package's documentation site,
	// e.g. "https://alpha.example/".
	BaseURL string `json:"baseUrl" yaml:"url"`
}

// Validate returns an error if the request contains invalid fields.
func (r *PackageRequest) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "package id required")
	}
	// IDs name subdirectories of the scratch workspace, so they must not
	// contain path separators or traversal tokens.
	if strings.ContainsAny(r.ID, `/\`) || strings.Contains(r.ID, "..") {
		return Errorf(EINVALID, "invalid package id %q", r.ID)
	}
	if r.BaseURL == "" {
		return Errorf(EINVALID, "package %q: base URL required", r.ID)
	}
	return nil
}

// ReferenceURL computes the navigable URL for a documentation file published
// under the package's reference section. The base URL is normalized to a
// trailing slash before joining.
func (r *PackageRequest) ReferenceURL(file string) string {
	base := r.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + "reference/" + file
}

// ValidateRequests validates a full request set, including ID uniqueness.
func ValidateRequests(reqs []PackageRequest) error {
	seen := make(map[string]bool, len(reqs))
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			return err
		}
		if seen[reqs[i].ID] {
			return Errorf(EINVALID, "duplicate package id %q", reqs[i].ID)
		}
		seen[reqs[i].ID] = true
	}
	return nil
}

// AliasFilter is an inclusion filter over topic aliases.
// A nil filter matches all aliases.
type AliasFilter struct {
	// Include - if set, only aliases matching the pattern are kept.
	Include *regexp.Regexp
}

// CompileAliasFilter compiles a pattern into an AliasFilter.
// An empty pattern yields a nil filter, which matches everything.
func CompileAliasFilter(pattern string) (*AliasFilter, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid alias filter %q: %v", pattern, err)
	}
	return &AliasFilter{Include: re}, nil
}

// Match returns true if the alias passes the filter.
// A nil filter or a nil pattern matches all aliases.
func (f *AliasFilter) Match(alias string) bool {
	if f == nil || f.Include == nil {
		return true
	}
	return f.Include.MatchString(alias)
}
