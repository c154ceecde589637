package mocks

import "io"

// LineReader hands out Lines one at a time, then Err (io.EOF by default).
type LineReader struct {
	Lines []string
	Err   error
	Reads int
}

func (r *LineReader) ReadLine() (string, error) {
	if r.Reads < len(r.Lines) {
		line := r.Lines[r.Reads]
		r.Reads++
		return line, nil
	}

	if r.Err != nil {
		return "", r.Err
	}
	return "", io.EOF
}
