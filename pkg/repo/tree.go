package repo

import (
	"fmt"

	"github.com/gitwalk/gitwalk/pkg/object"
)

// TreeFileEntry is a single file reached by flattening a tree.
type TreeFileEntry struct {
	Path string
	Mode string
	Hash object.Hash
}

// FlattenTree walks the tree at h depth-first, returning every file with
// its full forward-slash path. Output follows each tree body's on-disk
// entry order. An entry's kind is decided by resolving the object it
// references and reading its header, not by trusting the mode string.
func (r *Repo) FlattenTree(h object.Hash) ([]TreeFileEntry, error) {
	return r.flattenTreeRec(h, "")
}

func (r *Repo) flattenTreeRec(h object.Hash, prefix string) ([]TreeFileEntry, error) {
	tree, err := r.Store.ReadTree(h)
	if err != nil {
		return nil, fmt.Errorf("flatten tree %s: %w", h, err)
	}

	var result []TreeFileEntry
	for _, entry := range tree.Entries {
		kind, err := r.Store.Kind(entry.Hash)
		if err != nil {
			return nil, fmt.Errorf("flatten tree: entry %q: %w", prefix+entry.Name, err)
		}

		if kind == object.TypeTree {
			sub, err := r.flattenTreeRec(entry.Hash, prefix+entry.Name+"/")
			if err != nil {
				return nil, err
			}
			result = append(result, sub...)
		} else {
			result = append(result, TreeFileEntry{
				Path: prefix + entry.Name,
				Mode: entry.Mode,
				Hash: entry.Hash,
			})
		}
	}
	return result, nil
}
