package main

import (
	"fmt"
	"io"

	"github.com/gitwalk/gitwalk/pkg/object"
	"github.com/gitwalk/gitwalk/pkg/repo"
	"github.com/spf13/cobra"
)

func newCatFileCmd() *cobra.Command {
	var repoPath string

	cmd := &cobra.Command{
		Use:   "cat-file <hash>",
		Short: "Decode and print one object by hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(repoPath)
			if err != nil {
				return err
			}

			h := object.Hash(args[0])
			kind, err := r.Store.Kind(h)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch kind {
			case object.TypeBlob:
				return r.Store.StreamBlob(h, out)
			case object.TypeTree:
				tree, err := r.Store.ReadTree(h)
				if err != nil {
					return err
				}
				for _, e := range tree.Entries {
					fmt.Fprintf(out, "%s %s\t%s\n", e.Mode, e.Hash, e.Name)
				}
				return nil
			case object.TypeCommit:
				c, err := r.Store.ReadCommit(h)
				if err != nil {
					return err
				}
				cfg, err := r.ReadConfig()
				if err != nil {
					return err
				}
				printCommit(out, c, cfg.DateFormat)
				return nil
			}
			return fmt.Errorf("cat-file: unexpected object kind %q", kind)
		},
	}

	addRepoFlag(cmd, &repoPath)
	return cmd
}

func printCommit(out io.Writer, c *object.Commit, dateFormat string) {
	fmt.Fprintf(out, "tree %s\n", c.TreeHash)
	for _, p := range c.Parents {
		fmt.Fprintf(out, "parent %s\n", p)
	}
	fmt.Fprintf(out, "author %s %s\n", c.Author, c.Author.When.Format(dateFormat))
	fmt.Fprintf(out, "committer %s %s\n", c.Committer, c.Committer.When.Format(dateFormat))
	fmt.Fprintln(out)
	fmt.Fprintln(out, c.Message)
}
