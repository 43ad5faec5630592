package repo

import (
	"fmt"

	"github.com/gitwalk/gitwalk/pkg/object"
)

// LogEntry is one emitted record of a history walk.
type LogEntry struct {
	Hash   object.Hash
	Commit *object.Commit
	Merged bool // surfaced as the second parent of a merge commit
}

// History walks parent links from start. The mainline follows first
// parents; when a commit has two parents the second parent is emitted
// immediately after it, flagged Merged, and its own ancestry is not
// followed. limit <= 0 walks all the way to the root commit.
//
// Every resolution opens its own reader; nothing is shared across the
// walk. Any unreadable commit aborts the whole walk.
func (r *Repo) History(start object.Hash, limit int) ([]LogEntry, error) {
	current, err := r.Store.ReadCommit(start)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	entries := []LogEntry{{Hash: start, Commit: current}}
	currentHash := start

	for limit <= 0 || len(entries) < limit {
		switch len(current.Parents) {
		case 0:
			// Root commit; the walk is done.
			return entries, nil

		case 1:
			next := current.Parents[0]
			c, err := r.Store.ReadCommit(next)
			if err != nil {
				return nil, fmt.Errorf("history: %w", err)
			}
			entries = append(entries, LogEntry{Hash: next, Commit: c})
			current, currentHash = c, next

		case 2:
			// Surface the merged-in side right next to the merge point,
			// then resume mainline history through the first parent.
			second := current.Parents[1]
			mc, err := r.Store.ReadCommit(second)
			if err != nil {
				return nil, fmt.Errorf("history: %w", err)
			}
			entries = append(entries, LogEntry{Hash: second, Commit: mc, Merged: true})

			first := current.Parents[0]
			fc, err := r.Store.ReadCommit(first)
			if err != nil {
				return nil, fmt.Errorf("history: %w", err)
			}
			entries = append(entries, LogEntry{Hash: first, Commit: fc})
			current, currentHash = fc, first

		default:
			return nil, fmt.Errorf("history: commit %s has %d parents; octopus merges are not supported", currentHash, len(current.Parents))
		}
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
