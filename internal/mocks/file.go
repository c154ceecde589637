package mocks

import (
	"strings"
)

type File struct {
	*strings.Reader
	Closed bool
}

func NewFile(content string) *File {
	return &File{Reader: strings.NewReader(content)}
}

func (f *File) Close() error {
	f.Closed = true
	return nil
}
