package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "gitwalk",
		Short: "Inspect Git repositories by decoding loose objects directly",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newCatFileCmd())
	root.AddCommand(newBranchesCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newCommitTreeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gitwalk 0.1.0-dev")
		},
	}
}

// addRepoFlag wires the -C flag shared by all inspection commands.
func addRepoFlag(cmd *cobra.Command, repoPath *string) {
	cmd.Flags().StringVarP(repoPath, "repo", "C", ".", "path to the repository or its .git directory")
}
