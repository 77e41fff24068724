package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgilmutdinov/gitview/pkg/object"
	"github.com/rgilmutdinov/gitview/pkg/repo"
)

func newCatFileCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cat-file <digest>",
		Short: "Decode and print one object",
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

			obj, err := r.Store.ReadObject(object.Digest(args[0]))
			if err != nil {
				return err
			}
			return renderObject(cmd.OutOrStdout(), obj, cfg)
		},
	}
}

// renderObject prints one decoded object. The type switch is exhaustive over
// the closed object set.
func renderObject(out io.Writer, obj object.Object, cfg *repo.Config) error {
	fmt.Fprintf(out, "%s %s (%d bytes)\n", obj.Type(), obj.ID(), obj.Size())

	switch o := obj.(type) {
	case *object.Blob:
		fmt.Fprintln(out)
		fmt.Fprint(out, string(o.Content))
		if len(o.Content) > 0 && o.Content[len(o.Content)-1] != '\n' {
			fmt.Fprintln(out)
		}
	case *object.Tree:
		fmt.Fprintln(out)
		for _, e := range o.Entries {
			fmt.Fprintf(out, "%06o %s %s\n", e.Mode, e.Digest, e.Name)
		}
	case *object.Commit:
		fmt.Fprintf(out, "tree: %s\n", o.Tree)
		if o.Parent != "" {
			fmt.Fprintf(out, "parent: %s\n", o.Parent)
		}
		if o.MergeParent != "" {
			fmt.Fprintf(out, "merge parent: %s\n", o.MergeParent)
		}
		fmt.Fprintf(out, "author: %s\n", formatIdent(o.Author, cfg.DateFormat))
		fmt.Fprintf(out, "committer: %s\n", formatIdent(o.Committer, cfg.DateFormat))
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.TrimRight(o.Message, "\n"))
	default:
		return fmt.Errorf("cat-file: %w: %q", object.ErrUnknownType, obj.Type())
	}
	return nil
}

func formatIdent(id object.Ident, dateFormat string) string {
	return fmt.Sprintf("%s <%s> %s", id.Name, id.Email, id.When.Format(dateFormat))
}
