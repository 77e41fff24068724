package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLogCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log <branch>",
		Short: "Show first-parent history for a branch, annotating merges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.openRepo()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.LogLimit
			}

			head, err := r.ResolveBranch(args[0])
			if err != nil {
				return err
			}
			entries, err := r.LogN(head, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			headline := color.New(color.FgYellow)
			for _, entry := range entries {
				if entry.MergedIn {
					headline.Fprintf(out, "commit %s (merged)\n", entry.Digest)
				} else {
					headline.Fprintf(out, "commit %s\n", entry.Digest)
				}
				c := entry.Commit
				fmt.Fprintf(out, "Author: %s <%s>\n", c.Author.Name, c.Author.Email)
				fmt.Fprintf(out, "Date:   %s\n", c.Committer.When.Format(cfg.DateFormat))
				fmt.Fprintln(out)
				for _, line := range strings.Split(strings.TrimRight(c.Message, "\n"), "\n") {
					fmt.Fprintf(out, "    %s\n", line)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of entries to show (0 = all)")
	return cmd
}
