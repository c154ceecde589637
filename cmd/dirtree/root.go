package main

import (
	"os"

	"github.com/rwx-research/dirtree/cmd/dirtree/config"
	"github.com/rwx-research/dirtree/internal/cli"
	"github.com/rwx-research/dirtree/internal/fs"

	"github.com/spf13/cobra"
)

var (
	Debug bool

	service cli.Service

	rootCmd = &cobra.Command{
		Use:           "dirtree",
		Short:         "Apply CREATE, MOVE, DELETE and LIST commands to an in-memory directory tree",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       config.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			service, err = cli.NewService(cli.Config{
				FileSystem: fs.Local{},
				Stdout:     os.Stdout,
				Stderr:     os.Stderr,
			})
			return err
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug output")
	_ = rootCmd.PersistentFlags().MarkHidden("debug")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(shellCmd)
}
