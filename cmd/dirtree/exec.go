package main

import (
	"github.com/rwx-research/dirtree/internal/cli"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommands(cli.RunConfig{Commands: args})
	},
	Short:   "Run commands given as arguments",
	Example: `  dirtree exec "CREATE fruits/apples" "CREATE foods" "MOVE fruits foods" "LIST"`,
	Use:     "exec [flags] <command> [commands...]",
}

func init() {
	addOutputFlags(execCmd)
}
