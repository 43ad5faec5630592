package main

import (
	"fmt"

	"github.com/gitwalk/gitwalk/pkg/repo"
	"github.com/spf13/cobra"
)

func newBranchesCmd() *cobra.Command {
	var repoPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "branches",
		Short: "List branches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(repoPath)
			if err != nil {
				return err
			}

			branches, err := r.ListBranches()
			if err != nil {
				return err
			}
			current, err := r.CurrentBranch()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, b := range branches {
				marker := "  "
				if b.Name == current {
					marker = "* "
				}
				if verbose {
					fmt.Fprintf(out, "%s%s %s\n", marker, b.Name, b.Hash)
				} else {
					fmt.Fprintf(out, "%s%s\n", marker, b.Name)
				}
			}
			return nil
		},
	}

	addRepoFlag(cmd, &repoPath)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the commit hash at each branch head")
	return cmd
}
