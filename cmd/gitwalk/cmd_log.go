package main

import (
	"fmt"
	"strings"

	"github.com/gitwalk/gitwalk/pkg/object"
	"github.com/gitwalk/gitwalk/pkg/repo"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	var repoPath string
	var oneline bool
	var limit int

	cmd := &cobra.Command{
		Use:   "log [branch]",
		Short: "Show commit history from a branch head",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(repoPath)
			if err != nil {
				return err
			}

			ref := "HEAD"
			if len(args) == 1 {
				ref = args[0]
			}
			start, err := r.ResolveRef(ref)
			if err != nil {
				return err
			}

			entries, err := r.History(start, limit)
			if err != nil {
				return err
			}
			cfg, err := r.ReadConfig()
			if err != nil {
				return err
			}

			// Determine the current branch name for decoration.
			branchName := ""
			if current, err := r.CurrentBranch(); err == nil {
				branchName = current
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				decoration := buildDecoration(e.Hash, start, branchName)
				if e.Merged {
					decoration = appendDecoration(decoration, "(merge)")
				}

				if oneline {
					subject, _, _ := strings.Cut(e.Commit.Message, "\n")
					if decoration != "" {
						fmt.Fprintf(out, "%s %s %s\n", abbrev(e.Hash, cfg.Abbrev), decoration, subject)
					} else {
						fmt.Fprintf(out, "%s %s\n", abbrev(e.Hash, cfg.Abbrev), subject)
					}
					continue
				}

				if decoration != "" {
					fmt.Fprintf(out, "commit %s %s\n", e.Hash, decoration)
				} else {
					fmt.Fprintf(out, "commit %s\n", e.Hash)
				}
				fmt.Fprintf(out, "Committer: %s\n", e.Commit.Committer)
				fmt.Fprintf(out, "Date:   %s\n", e.Commit.Committer.When.Format(cfg.DateFormat))
				fmt.Fprintln(out)
				for _, line := range strings.Split(e.Commit.Message, "\n") {
					fmt.Fprintf(out, "    %s\n", line)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	addRepoFlag(cmd, &repoPath)
	cmd.Flags().BoolVar(&oneline, "oneline", false, "compact one-line format")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of commits to show (0 = all)")
	return cmd
}

// buildDecoration returns a string like "(HEAD -> main)" if the commit is
// the walk's starting head, or "" otherwise.
func buildDecoration(commitHash, headHash object.Hash, branchName string) string {
	if commitHash != headHash {
		return ""
	}
	if branchName != "" {
		return "(HEAD -> " + branchName + ")"
	}
	return "(HEAD)"
}

func appendDecoration(existing, extra string) string {
	if existing == "" {
		return extra
	}
	return existing + " " + extra
}

func abbrev(h object.Hash, n int) string {
	if n > 0 && n < len(h) {
		return string(h[:n])
	}
	return string(h)
}
