package main

import (
	"fmt"

	"github.com/gitwalk/gitwalk/pkg/object"
	"github.com/gitwalk/gitwalk/pkg/repo"
	"github.com/spf13/cobra"
)

func newCommitTreeCmd() *cobra.Command {
	var repoPath string
	var long bool

	cmd := &cobra.Command{
		Use:   "commit-tree <commit-hash>",
		Short: "List every file reachable from a commit's tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(repoPath)
			if err != nil {
				return err
			}

			c, err := r.Store.ReadCommit(object.Hash(args[0]))
			if err != nil {
				return err
			}
			files, err := r.FlattenTree(c.TreeHash)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range files {
				if long {
					fmt.Fprintf(out, "%s %s\t%s\n", f.Mode, f.Hash, f.Path)
				} else {
					fmt.Fprintln(out, f.Path)
				}
			}
			return nil
		},
	}

	addRepoFlag(cmd, &repoPath)
	cmd.Flags().BoolVarP(&long, "long", "l", false, "show mode and blob hash for each file")
	return cmd
}
