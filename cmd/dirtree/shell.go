package main

import (
	"fmt"
	"os"

	"github.com/rwx-research/dirtree/internal/cli"
	"github.com/rwx-research/dirtree/internal/versions"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var shellCmd = &cobra.Command{
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		color, err := ResolveColor(ColorMode, stdoutIsTerminal())
		if err != nil {
			return err
		}

		shellConfig := cli.ShellConfig{Color: color}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			shellConfig.Banner = fmt.Sprintf("dirtree %s, type exit or press Ctrl-D to quit", versions.GetCliCurrentVersion())
			shellConfig.Input = cli.NewPromptReader("dirtree")
		} else {
			shellConfig.Input = cli.NewScannerReader(os.Stdin)
		}

		return service.Shell(shellConfig)
	},
	Short: "Read commands interactively, or from standard input",
	Use:   "shell [flags]",
}

func init() {
	shellCmd.Flags().StringVar(&ColorMode, "color", ColorAuto, "color diagnostics: auto, always, never")
}
