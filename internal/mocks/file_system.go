package mocks

import (
	"github.com/rwx-research/dirtree/internal/fs"

	"github.com/pkg/errors"
)

type FileSystem struct {
	MockOpen   func(name string) (fs.File, error)
	MockExists func(name string) (bool, error)
}

func (f *FileSystem) Open(name string) (fs.File, error) {
	if f.MockOpen != nil {
		return f.MockOpen(name)
	}

	return nil, errors.New("MockOpen was not configured")
}

func (f *FileSystem) Exists(name string) (bool, error) {
	if f.MockExists != nil {
		return f.MockExists(name)
	}

	return false, errors.New("MockExists was not configured")
}

// Files returns a FileSystem serving the given contents by name.
func Files(contents map[string]string) *FileSystem {
	return &FileSystem{
		MockOpen: func(name string) (fs.File, error) {
			if content, ok := contents[name]; ok {
				return NewFile(content), nil
			}
			return nil, errors.Wrapf(fs.ErrNotExist, "unable to open %q", name)
		},
		MockExists: func(name string) (bool, error) {
			_, ok := contents[name]
			return ok, nil
		},
	}
}
