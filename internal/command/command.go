package command

import (
	"fmt"
	"strings"
)

type Kind string

const (
	Create Kind = "CREATE"
	Move   Kind = "MOVE"
	Delete Kind = "DELETE"
	List   Kind = "LIST"
)

var arity = map[Kind]int{
	Create: 1,
	Move:   2,
	Delete: 1,
	List:   0,
}

type Command struct {
	Kind Kind
	Args []string
}

// String renders the command in its canonical textual form.
func (c Command) String() string {
	return strings.Join(append([]string{string(c.Kind)}, c.Args...), " ")
}

type InvalidCommandError struct {
	Text string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("Invalid command: %s", e.Text)
}

// Parse recognizes one of the four command forms. Keywords are case
// sensitive and the argument count must match exactly.
func Parse(text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, &InvalidCommandError{Text: strings.TrimSpace(text)}
	}

	cmd := Command{Kind: Kind(fields[0]), Args: fields[1:]}
	if err := cmd.Validate(); err != nil {
		return Command{}, &InvalidCommandError{Text: strings.TrimSpace(text)}
	}

	return cmd, nil
}

// Validate checks the keyword and the number of arguments.
func (c Command) Validate() error {
	want, ok := arity[c.Kind]
	if !ok || len(c.Args) != want {
		return &InvalidCommandError{Text: c.String()}
	}

	return nil
}
