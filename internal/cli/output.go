package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"github.com/rwx-research/dirtree/internal/command"
)

const indent = "  "

// outputText writes confirmations, listings and one-line diagnostics.
// Diagnostics are colored red when colorize is set.
func outputText(w io.Writer, results []Result, colorize bool) error {
	failColor := color.New(color.FgRed)
	if colorize {
		failColor.EnableColor()
	} else {
		failColor.DisableColor()
	}

	for _, result := range results {
		if !result.OK {
			if _, err := failColor.Fprintln(w, result.Message); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintln(w, result.Command); err != nil {
			return err
		}

		if result.Command != string(command.List) {
			continue
		}

		for _, entry := range result.Entries {
			if _, err := fmt.Fprintln(w, strings.Repeat(indent, entry.Depth)+entry.Name); err != nil {
				return err
			}
		}
	}

	return nil
}

func outputJSON(w io.Writer, results []Result) error {
	encoded, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

func outputYAML(w io.Writer, results []Result) error {
	encoded, err := yaml.Marshal(results)
	if err != nil {
		return err
	}

	_, err = w.Write(encoded)
	return err
}
