package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	root := &cobra.Command{
		Use:           "gitview",
		Short:         "Read-only viewer for git loose objects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var opts rootOptions
	root.PersistentFlags().StringVar(&opts.repoPath, "repo", ".", "repository directory (a .git directory, a bare repository, or a working tree)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to gitview.toml (default: gitview.toml in the current directory)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newCatFileCmd(&opts))
	root.AddCommand(newListBranchesCmd(&opts))
	root.AddCommand(newLogCmd(&opts))
	root.AddCommand(newCommitTreeCmd(&opts))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gitview "+version)
		},
	}
}
