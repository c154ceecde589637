package main

import (
	"github.com/rwx-research/dirtree/internal/cli"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommands(cli.RunConfig{Files: args})
	},
	Short: "Run command scripts against a new tree",
	Long: "Run command scripts against a new tree.\n" +
		"Files ending in .yml or .yaml are read as YAML scripts with a 'commands' list,\n" +
		"anything else as one command per line. All files share the same tree.",
	Use: "run [flags] <file> [files...]",
}

func init() {
	addOutputFlags(runCmd)
}
