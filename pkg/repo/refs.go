package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gitwalk/gitwalk/pkg/object"
)

// Branch pairs a branch name with the commit hash at its head.
type Branch struct {
	Name string
	Hash object.Hash
}

// ListBranches lists the branches under refs/heads, sorted by name.
// Nested refs (e.g. feature/login) keep forward slashes in the name.
// A repository with no branches yet returns an empty list.
func (r *Repo) ListBranches() ([]Branch, error) {
	root := filepath.Join(r.GitDir, "refs", "heads")

	var branches []Branch
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		branches = append(branches, Branch{
			Name: filepath.ToSlash(rel),
			Hash: object.Hash(strings.TrimSpace(string(data))),
		})
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

// Head returns the content of the HEAD file: a ref path like
// "refs/heads/main" when on a branch, or a raw hash when detached.
func (r *Repo) Head() (string, error) {
	data, err := os.ReadFile(filepath.Join(r.GitDir, "HEAD"))
	if err != nil {
		return "", fmt.Errorf("head: %w", err)
	}
	content := strings.TrimRight(string(data), "\n")

	if strings.HasPrefix(content, "ref: ") {
		return strings.TrimPrefix(content, "ref: "), nil
	}
	return content, nil
}

// CurrentBranch returns the branch HEAD points at, or "" when HEAD is
// detached.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("current branch: %w", err)
	}

	const prefix = "refs/heads/"
	if strings.HasPrefix(head, prefix) {
		return strings.TrimPrefix(head, prefix), nil
	}
	return "", nil
}

// ResolveRef resolves "HEAD", a full ref path like "refs/heads/main", or a
// bare branch name to a commit hash.
func (r *Repo) ResolveRef(name string) (object.Hash, error) {
	if name == "HEAD" {
		head, err := r.Head()
		if err != nil {
			return "", err
		}
		if strings.HasPrefix(head, "refs/") {
			return r.ResolveRef(head)
		}
		// Detached HEAD: the value is a hash.
		h := object.Hash(head)
		if !h.Valid() {
			return "", fmt.Errorf("resolve HEAD: %q is not a commit hash", head)
		}
		return h, nil
	}

	var refPath string
	if strings.HasPrefix(name, "refs/") {
		refPath = filepath.Join(r.GitDir, filepath.FromSlash(name))
	} else {
		refPath = filepath.Join(r.GitDir, "refs", "heads", name)
	}

	data, err := os.ReadFile(refPath)
	if err != nil {
		return "", fmt.Errorf("resolve ref %q: %w", name, err)
	}
	h := object.Hash(strings.TrimSpace(string(data)))
	if !h.Valid() {
		return "", fmt.Errorf("resolve ref %q: %q is not a commit hash", name, string(h))
	}
	return h, nil
}
