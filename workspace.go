package refdex

// Scratch is the scoped scratch area a catalog build writes into. It is
// acquired by the caller at the start of a build and cleaned up by the
// caller on every exit path; builds never rely on ambient temp-directory
// state surviving across runs.
type Scratch interface {
	// ArchiveDir returns the directory downloaded archives are written to.
	ArchiveDir() string

	// PackageDir returns the directory a package's archive is unpacked
	// into, creating it if needed. Each package owns a distinct
	// subdirectory; no two packages share one.
	PackageDir(pkg string) (string, error)

	// RecordArchive records an integrity checksum for a downloaded
	// archive and returns it.
	RecordArchive(pkg, archivePath string) (string, error)
}
