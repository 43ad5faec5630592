package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gitwalk/gitwalk/pkg/object"
)

// Repo is a read-only view of a Git repository.
type Repo struct {
	GitDir string        // .git directory
	Store  *object.Store // loose object store under GitDir
}

// Open opens the repository at path. Path may name either a worktree
// containing a .git directory or the .git directory itself.
func Open(path string) (*Repo, error) {
	gitDir := path
	if filepath.Base(gitDir) != ".git" {
		gitDir = filepath.Join(path, ".git")
	}
	info, err := os.Stat(gitDir)
	if err != nil {
		return nil, fmt.Errorf("open repository %q: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open repository %q: %s is not a directory", path, gitDir)
	}
	return &Repo{GitDir: gitDir, Store: object.NewStore(gitDir)}, nil
}
