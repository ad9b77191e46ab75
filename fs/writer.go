package fs

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/refdex"
)

// CatalogWriter writes the final catalog as JSON with atomic semantics:
// output lands in a temporary file first and is renamed into place, so
// readers never observe a partially written catalog. A checksum sidecar
// (<path>.sum) lets consumers cheaply detect whether the catalog changed
// between builds.
type CatalogWriter struct {
	path string
}

// NewCatalogWriter creates a CatalogWriter that writes to path.
func NewCatalogWriter(path string) *CatalogWriter {
	return &CatalogWriter{path: path}
}

// Write serializes the catalog to the writer's path and its checksum to the
// sidecar. Rows are written in catalog order.
func (w *CatalogWriter) Write(catalog refdex.Catalog) error {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, w.path); err != nil {
		os.Remove(tmp)
		return err
	}

	sum := strconv.FormatUint(xxhash.Sum64(data), 16)
	return os.WriteFile(w.path+".sum", []byte(sum+"\n"), 0644)
}
