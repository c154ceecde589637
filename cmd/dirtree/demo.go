package main

import (
	"github.com/rwx-research/dirtree/internal/cli"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommands(cli.RunConfig{Demo: true})
	},
	Short: "Run the built-in grocery demonstration",
	Use:   "demo [flags]",
}

func init() {
	addOutputFlags(demoCmd)
}
