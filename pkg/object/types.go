package object

// Hash is a 40-character lowercase hex-encoded SHA-1 digest, the form Git
// uses to address objects in its loose store.
type Hash string

// Valid reports whether h is exactly 40 lowercase hex characters.
func (h Hash) Valid() bool {
	if len(h) != 40 {
		return false
	}
	for i := 0; i < len(h); i++ {
		c := h[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// ObjectType identifies the kind of object stored.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
)

const (
	// Tree mode strings as they appear in tree entry bodies.
	TreeModeDir        = "40000"
	TreeModeFile       = "100644"
	TreeModeExecutable = "100755"
)

// Blob holds raw file data.
type Blob struct {
	Data []byte
}

// TreeEntry is one entry in a tree object.
type TreeEntry struct {
	Mode string
	Name string
	Hash Hash
}

// Tree holds entries in the order they appear in the object body. The
// body carries no ordering guarantee, so callers must not assume the
// entries are sorted.
type Tree struct {
	Entries []TreeEntry
}

// Commit represents a commit pointing to a tree with metadata. Parents
// are in body order; the first parent is the mainline.
type Commit struct {
	TreeHash  Hash
	Parents   []Hash
	Author    Signature
	Committer Signature
	Message   string
}
