package cli

import (
	"github.com/rwx-research/dirtree/internal/fs"
)

type FileSystem interface {
	Open(name string) (fs.File, error)
	Exists(name string) (bool, error)
}

// LineReader yields one line of input per call and io.EOF once exhausted.
type LineReader interface {
	ReadLine() (string, error)
}
