package mock

import "github.com/fwojciec/refdex"

var _ refdex.Scratch = (*Scratch)(nil)

// Scratch is a mock implementation of refdex.Scratch.
type Scratch struct {
	ArchiveDirFn    func() string
	PackageDirFn    func(pkg string) (string, error)
	RecordArchiveFn func(pkg, archivePath string) (string, error)
}

func (s *Scratch) ArchiveDir() string {
	return s.ArchiveDirFn()
}

func (s *Scratch) PackageDir(pkg string) (string, error) {
	return s.PackageDirFn(pkg)
}

func (s *Scratch) RecordArchive(pkg, archivePath string) (string, error) {
	return s.RecordArchiveFn(pkg, archivePath)
}
