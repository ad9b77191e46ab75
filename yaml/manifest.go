package yaml

import (
	"os"

	"github.com/fwojciec/refdex"
	"gopkg.in/yaml.v3"
)

// Manifest is the caller-supplied build configuration: which packages to
// index and, optionally, an alias inclusion pattern.
type Manifest struct {
	// Filter is an optional regular expression over topic aliases.
	// Empty means "match everything".
	Filter string `yaml:"filter"`

	// Packages lists the packages to index.
	Packages []refdex.PackageRequest `yaml:"packages"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, refdex.Errorf(refdex.ENOTFOUND, "manifest %q not found", path)
		}
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, refdex.Errorf(refdex.EINVALID, "manifest %q: %v", path, err)
	}

	if len(m.Packages) == 0 {
		return nil, refdex.Errorf(refdex.EINVALID, "manifest %q: no packages listed", path)
	}
	if err := refdex.ValidateRequests(m.Packages); err != nil {
		return nil, err
	}

	return &m, nil
}
