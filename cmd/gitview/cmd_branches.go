package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListBranchesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list-branches",
		Short: "List branches, marking the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.openRepo()
			if err != nil {
				return err
			}

			current, err := r.CurrentBranch()
			if err != nil {
				return err
			}
			branches, err := r.ListBranches()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			mark := color.New(color.FgGreen)
			for _, name := range branches {
				if name == current {
					mark.Fprintf(out, "* %s\n", name)
				} else {
					fmt.Fprintf(out, "  %s\n", name)
				}
			}
			return nil
		},
	}
}
