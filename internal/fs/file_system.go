package fs

import (
	"io"
	iofs "io/fs"
)

var ErrNotExist = iofs.ErrNotExist

type File interface {
	io.ReadCloser
}

// FileSystem is the read-only view of the disk used to load command scripts.
type FileSystem interface {
	Open(name string) (File, error)
	Exists(name string) (bool, error)
}
