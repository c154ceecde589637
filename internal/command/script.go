package command

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/rwx-research/dirtree/internal/errors"
	"github.com/rwx-research/dirtree/internal/versions"
)

// Line is one entry of a script. When the text is not a valid command, Err
// holds the parse failure and Command is the zero value.
type Line struct {
	Number  int
	Text    string
	Command Command
	Err     error
}

type Script struct {
	Name  string
	Lines []Line
}

// Demo is the built-in command list run when no script is given.
var Demo = []string{
	"CREATE fruits",
	"CREATE vegetables",
	"CREATE grains",
	"CREATE fruits/apples",
	"CREATE fruits/apples/fuji",
	"LIST",
	"CREATE grains/squash",
	"MOVE grains/squash vegetables",
	"CREATE foods",
	"MOVE grains foods",
	"MOVE fruits foods",
	"MOVE vegetables foods",
	"LIST",
	"DELETE fruits/apples",
	"DELETE foods/fruits/apples",
	"LIST",
}

func newLine(number int, text string) Line {
	cmd, err := Parse(text)
	return Line{Number: number, Text: text, Command: cmd, Err: err}
}

// FromStrings builds a script from already separated command texts.
func FromStrings(name string, texts []string) *Script {
	script := &Script{Name: name, Lines: make([]Line, len(texts))}
	for i, text := range texts {
		script.Lines[i] = newLine(i+1, strings.TrimSpace(text))
	}
	return script
}

func DemoScript() *Script {
	return FromStrings("demo", Demo)
}

// Load reads a script, choosing the format from the file extension.
func Load(name string, r io.Reader) (*Script, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		contents, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read %q", name)
		}
		return ParseYAML(name, contents)
	default:
		return ParseText(name, r)
	}
}

// ParseText reads one command per line. Blank lines and lines starting with
// '#' are skipped but still counted for line numbers.
func ParseText(name string, r io.Reader) (*Script, error) {
	script := &Script{Name: name, Lines: make([]Line, 0)}

	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		script.Lines = append(script.Lines, newLine(number, text))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "unable to read %q", name)
	}

	return script, nil
}

type yamlScript struct {
	Version  any      `yaml:"version"`
	Commands []string `yaml:"commands"`
}

// ParseYAML reads a script of the form
//
//	version: 1
//	commands:
//	  - CREATE fruits
//	  - LIST
func ParseYAML(name string, contents []byte) (*Script, error) {
	var doc yamlScript
	if err := yaml.Unmarshal(contents, &doc); err != nil {
		return nil, errors.Wrapf(err, "unable to parse %q", name)
	}

	declared := ""
	if doc.Version != nil {
		declared = fmt.Sprint(doc.Version)
	}
	if err := versions.CheckScriptVersion(declared); err != nil {
		return nil, errors.Wrapf(err, "unable to load %q", name)
	}

	return FromStrings(name, doc.Commands), nil
}
