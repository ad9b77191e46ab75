package mock

import "github.com/fwojciec/refdex"

var _ refdex.Unpacker = (*Unpacker)(nil)

// Unpacker is a mock implementation of refdex.Unpacker.
type Unpacker struct {
	UnpackFn func(archivePath, destDir string) error
}

func (u *Unpacker) Unpack(archivePath, destDir string) error {
	return u.UnpackFn(archivePath, destDir)
}
