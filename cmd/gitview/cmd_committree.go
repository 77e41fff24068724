package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgilmutdinov/gitview/pkg/object"
)

func newCommitTreeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "commit-tree <digest>",
		Short: "List every file reachable from a commit's tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.openRepo()
			if err != nil {
				return err
			}

			files, err := r.FlattenCommitTree(object.Digest(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range files {
				fmt.Fprintln(out, f.Path)
			}
			return nil
		},
	}
}
