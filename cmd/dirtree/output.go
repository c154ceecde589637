package main

import (
	"os"

	"github.com/rwx-research/dirtree/internal/cli"
	"github.com/rwx-research/dirtree/internal/errors"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	OutputFormat string
	Strict       bool
	ColorMode    string
)

// defaultOutputFormat honors DIRTREE_OUTPUT so scripted callers can ask for
// structured output without repeating the flag.
func defaultOutputFormat() string {
	if format := os.Getenv("DIRTREE_OUTPUT"); format != "" {
		return format
	}
	return cli.OutputText
}

// ResolveColor decides whether diagnostics are colored.
func ResolveColor(mode string, isTerminal bool) (bool, error) {
	switch mode {
	case ColorAuto:
		return isTerminal, nil
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	default:
		return false, errors.Errorf("unknown color mode %q, expected one of: auto, always, never", mode)
	}
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&OutputFormat, "output", "o", defaultOutputFormat(), "output format: text, json, yaml")
	cmd.Flags().BoolVar(&Strict, "strict", false, "exit with an error when any command fails")
	cmd.Flags().StringVar(&ColorMode, "color", ColorAuto, "color diagnostics: auto, always, never")
}

func runCommands(runConfig cli.RunConfig) error {
	color, err := ResolveColor(ColorMode, stdoutIsTerminal())
	if err != nil {
		return err
	}

	runConfig.OutputFormat = OutputFormat
	runConfig.Strict = Strict
	runConfig.Color = color

	_, err = service.Run(runConfig)
	return err
}
