package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rwx-research/dirtree/internal/command"
	"github.com/rwx-research/dirtree/internal/dirtree"
	"github.com/rwx-research/dirtree/internal/errors"
)

// ErrCommandsFailed is returned by Run in strict mode when any command failed.
var ErrCommandsFailed = errors.New("one or more commands failed")

const KindInvalidCommand = "InvalidCommand"

// Result is the outcome of one command. Failures carry the failure kind
// (NotFound, InvalidPath or InvalidCommand) and a one-line message.
type Result struct {
	Command string          `json:"command" yaml:"command"`
	OK      bool            `json:"ok" yaml:"ok"`
	Kind    string          `json:"kind,omitempty" yaml:"kind,omitempty"`
	Message string          `json:"message,omitempty" yaml:"message,omitempty"`
	Entries []dirtree.Entry `json:"entries,omitempty" yaml:"entries,omitempty"`
}

type RunResult struct {
	Results  []Result
	Failures int
}

// Service holds the main business logic of the CLI.
type Service struct {
	Config
}

func NewService(cfg Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return Service{}, errors.Wrap(err, "validation failed")
	}

	return Service{cfg}, nil
}

// Execute applies a single command to the tree. It never stops on failure;
// the failure is described in the returned Result.
func (s Service) Execute(tree *dirtree.Tree, cmd command.Command) Result {
	if err := cmd.Validate(); err != nil {
		return invalidCommand(cmd.String(), err)
	}

	var err error
	switch cmd.Kind {
	case command.Create:
		err = tree.Create(cmd.Args[0])
	case command.Move:
		err = tree.Move(cmd.Args[0], cmd.Args[1])
	case command.Delete:
		err = tree.Delete(cmd.Args[0])
	case command.List:
		return Result{Command: cmd.String(), OK: true, Entries: tree.List()}
	}

	if err != nil {
		return failure(cmd, err)
	}

	return Result{Command: cmd.String(), OK: true}
}

// ExecuteScript runs every line of the script in order against the tree.
func (s Service) ExecuteScript(tree *dirtree.Tree, script *command.Script) []Result {
	results := make([]Result, 0, len(script.Lines))
	for _, line := range script.Lines {
		results = append(results, s.executeLine(tree, line))
	}
	return results
}

func (s Service) executeLine(tree *dirtree.Tree, line command.Line) Result {
	if line.Err != nil {
		return invalidCommand(line.Text, line.Err)
	}

	return s.Execute(tree, line.Command)
}

// Run loads the configured commands, applies them to a fresh tree and writes
// the results to stdout in the requested format.
func (s Service) Run(cfg RunConfig) (*RunResult, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	scripts, err := s.scripts(cfg)
	if err != nil {
		return nil, err
	}

	tree := dirtree.New()
	runResult := &RunResult{Results: make([]Result, 0)}
	for _, script := range scripts {
		runResult.Results = append(runResult.Results, s.ExecuteScript(tree, script)...)
	}

	for _, result := range runResult.Results {
		if !result.OK {
			runResult.Failures++
		}
	}

	switch cfg.OutputFormat {
	case OutputText:
		err = outputText(s.Stdout, runResult.Results, cfg.Color)
	case OutputJSON:
		err = outputJSON(s.Stdout, runResult.Results)
	case OutputYAML:
		err = outputYAML(s.Stdout, runResult.Results)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to output results")
	}

	if cfg.Strict && runResult.Failures > 0 {
		return runResult, errors.Wrapf(ErrCommandsFailed, "%d of %d", runResult.Failures, len(runResult.Results))
	}

	return runResult, nil
}

// Shell reads commands one line at a time and applies them to a single tree,
// writing each result as soon as it is known. It returns when the input is
// exhausted or an "exit" line is read.
func (s Service) Shell(cfg ShellConfig) error {
	err := cfg.Validate()
	if err != nil {
		return errors.Wrap(err, "validation failed")
	}

	if cfg.Banner != "" {
		fmt.Fprintln(s.Stderr, cfg.Banner)
	}

	tree := dirtree.New()
	for {
		line, err := cfg.Input.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "unable to read command")
		}

		text := strings.TrimSpace(line)
		switch {
		case text == "" || strings.HasPrefix(text, "#"):
			continue
		case text == "exit" || text == "quit":
			return nil
		}

		cmd, err := command.Parse(text)
		var result Result
		if err != nil {
			result = invalidCommand(text, err)
		} else {
			result = s.Execute(tree, cmd)
		}

		if err := outputText(s.Stdout, []Result{result}, cfg.Color); err != nil {
			return errors.Wrap(err, "unable to output result")
		}
	}
}

func invalidCommand(text string, err error) Result {
	return Result{Command: text, Kind: KindInvalidCommand, Message: err.Error()}
}

func failure(cmd command.Command, err error) Result {
	result := Result{Command: cmd.String(), Message: err.Error()}

	var pathErr *dirtree.PathError
	if errors.As(err, &pathErr) {
		result.Kind = pathErr.Kind.String()
		result.Message = describe(pathErr)
	}

	return result
}

func describe(err *dirtree.PathError) string {
	if err.Op == dirtree.OpMove {
		return fmt.Sprintf("Cannot move %s to %s - %s", err.Path, err.Dest, err.Reason)
	}

	return fmt.Sprintf("Cannot %s %s - %s", err.Op, err.Path, err.Reason)
}
