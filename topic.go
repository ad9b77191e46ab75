package refdex

// Topic is a raw topic record extracted from a package's documentation
// metadata: one row per exported alias. A single metadata entry declaring
// several aliases expands into several Topic values sharing the same title
// and file. Topics are transient; they exist only between extraction and
// the catalog join.
type Topic struct {
	// Alias is one exported name the topic is documented under.
	Alias string

	// Title is the topic's display title. May contain embedded line
	// breaks at this stage; the join normalizes them away.
	Title string

	// Package is the identifier of the owning package.
	Package string

	// File is the documentation file path relative to the package's
	// reference section, e.g. "foo.html".
	File string
}

// TopicExtractor produces topic records from an unpacked package.
type TopicExtractor interface {
	// Extract parses the package's documentation metadata in pkgDir and
	// returns one Topic per declared alias. A package with no metadata
	// yields an empty slice, not an error. Malformed metadata returns an
	// EINVALID error; callers may degrade that to an empty table.
	Extract(pkgDir, pkg string) ([]Topic, error)
}
