package cli

import (
	"io"
	"slices"

	"github.com/pkg/errors"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var outputFormats = []string{OutputText, OutputJSON, OutputYAML}

type Config struct {
	FileSystem FileSystem
	Stdout     io.Writer
	Stderr     io.Writer
}

func (c Config) Validate() error {
	if c.FileSystem == nil {
		return errors.New("missing file-system interface")
	}

	if c.Stdout == nil {
		return errors.New("missing stdout writer")
	}

	if c.Stderr == nil {
		return errors.New("missing stderr writer")
	}

	return nil
}

type RunConfig struct {
	// Files are loaded in order and run against a single tree.
	Files []string
	// Commands are run as one inline script when no files are given.
	Commands     []string
	Demo         bool
	OutputFormat string
	Strict       bool
	Color        bool
}

func (c RunConfig) Validate() error {
	sources := 0
	if len(c.Files) > 0 {
		sources++
	}
	if len(c.Commands) > 0 {
		sources++
	}
	if c.Demo {
		sources++
	}

	if sources == 0 {
		return errors.New("no commands to run, provide script files, inline commands, or the demo")
	}
	if sources > 1 {
		return errors.New("script files, inline commands, and the demo cannot be combined")
	}

	if !slices.Contains(outputFormats, c.OutputFormat) {
		return errors.Errorf("unknown output format %q, expected one of: text, json, yaml", c.OutputFormat)
	}

	return nil
}

type ShellConfig struct {
	Input LineReader
	// Banner is written to stderr before the first prompt, when set.
	Banner string
	Color  bool
}

func (c ShellConfig) Validate() error {
	if c.Input == nil {
		return errors.New("missing line reader")
	}

	return nil
}
