package repo

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gitwalk/gitwalk/pkg/object"
	"github.com/klauspost/compress/zlib"
)

// initRepoDir lays out a minimal .git directory and returns the opened
// repo along with the worktree path.
func initRepoDir(t *testing.T) (*Repo, string) {
	t.Helper()

	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	for _, sub := range []string{"objects", filepath.Join("refs", "heads")} {
		if err := os.MkdirAll(filepath.Join(gitDir, sub), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", sub, err)
		}
	}
	writeHEAD(t, gitDir, "ref: refs/heads/main\n")

	r, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return r, dir
}

func writeHEAD(t *testing.T, gitDir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte(content), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}
}

func writeBranch(t *testing.T, gitDir, name string, h object.Hash) {
	t.Helper()
	path := filepath.Join(gitDir, "refs", "heads", filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for branch %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(string(h)+"\n"), 0o644); err != nil {
		t.Fatalf("write branch %s: %v", name, err)
	}
}

// writeLoose deflates a "<type> <len>\0<body>" envelope into the fan-out
// layout under gitDir and returns its content hash.
func writeLoose(t *testing.T, gitDir string, typ object.ObjectType, body []byte) object.Hash {
	t.Helper()

	payload := append([]byte(fmt.Sprintf("%s %d\x00", typ, len(body))), body...)
	sum := sha1.Sum(payload)
	h := object.Hash(hex.EncodeToString(sum[:]))

	dir := filepath.Join(gitDir, "objects", string(h[:2]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("deflate: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("deflate close: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, string(h[2:])), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write object: %v", err)
	}
	return h
}

func fakeHash(c byte) object.Hash {
	return object.Hash(strings.Repeat(string(c), 40))
}

func commitBody(tree object.Hash, parents []object.Hash, msg string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "tree %s\n", tree)
	for _, p := range parents {
		fmt.Fprintf(&b, "parent %s\n", p)
	}
	fmt.Fprintf(&b, "author alice <alice@example.com> 1700000000 +0000\n")
	fmt.Fprintf(&b, "committer alice <alice@example.com> 1700000000 +0000\n")
	fmt.Fprintf(&b, "\n%s\n", msg)
	return b.Bytes()
}

func writeCommit(t *testing.T, gitDir string, tree object.Hash, parents []object.Hash, msg string) object.Hash {
	t.Helper()
	return writeLoose(t, gitDir, object.TypeCommit, commitBody(tree, parents, msg))
}

func treeBody(t *testing.T, entries ...object.TreeEntry) []byte {
	t.Helper()
	var b bytes.Buffer
	for _, e := range entries {
		raw, err := hex.DecodeString(string(e.Hash))
		if err != nil || len(raw) != 20 {
			t.Fatalf("bad fixture hash %q", e.Hash)
		}
		fmt.Fprintf(&b, "%s %s\x00", e.Mode, e.Name)
		b.Write(raw)
	}
	return b.Bytes()
}
