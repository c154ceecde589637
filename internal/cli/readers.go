package cli

import (
	"bufio"
	"io"

	"github.com/manifoldco/promptui"

	"github.com/rwx-research/dirtree/internal/errors"
)

type scannerReader struct {
	scanner *bufio.Scanner
}

// NewScannerReader reads lines from non-interactive input such as a pipe.
func NewScannerReader(r io.Reader) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(r)}
}

func (r *scannerReader) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

type promptReader struct {
	label string
}

// NewPromptReader reads lines from a terminal with line editing and history.
// Ctrl-C and Ctrl-D both end the session.
func NewPromptReader(label string) LineReader {
	return &promptReader{label: label}
}

func (r *promptReader) ReadLine() (string, error) {
	prompt := promptui.Prompt{Label: r.label}

	line, err := prompt.Run()
	if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
		return "", io.EOF
	}

	return line, err
}
