package object

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store is a read-only view over a loose object store with Git's
// 2-character fan-out directory layout: objects/ab/cdef0123...
type Store struct {
	root string
}

// NewStore creates a Store rooted at a .git directory. Nothing is touched
// until an object is opened; the Store never writes.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// objectPath returns the filesystem path for a given hash.
func (s *Store) objectPath(h Hash) string {
	return filepath.Join(s.root, "objects", string(h[:2]), string(h[2:]))
}

// Has reports whether the store contains an object with the given hash.
func (s *Store) Has(h Hash) bool {
	if !h.Valid() {
		return false
	}
	_, err := os.Stat(s.objectPath(h))
	return err == nil
}

// Open locates the object for h and returns a Reader positioned at the
// start of its decompressed content. The caller owns the Reader and must
// close it once the object has been decoded, whether or not decoding
// succeeded.
func (s *Store) Open(h Hash) (*Reader, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("object %q: bad hash: %w", h, ErrMalformed)
	}
	f, err := os.Open(s.objectPath(h))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object %s: %w", h, ErrObjectNotFound)
		}
		return nil, fmt.Errorf("object %s: %w", h, err)
	}
	r, err := newReader(f)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", h, err)
	}
	return r, nil
}

// Kind resolves just the type of the object stored under h.
func (s *Store) Kind(h Hash) (ObjectType, error) {
	r, err := s.Open(h)
	if err != nil {
		return "", err
	}
	defer r.Close()

	hdr, err := r.ReadHeader()
	if err != nil {
		return "", fmt.Errorf("object %s: %w", h, err)
	}
	return hdr.Type, nil
}

// openTyped opens h and consumes its header, failing when the stored kind
// does not match what the call site asked for. On success the returned
// Reader is positioned at the start of the body and owned by the caller.
func (s *Store) openTyped(h Hash, want ObjectType) (*Reader, error) {
	r, err := s.Open(h)
	if err != nil {
		return nil, err
	}
	hdr, err := r.ReadHeader()
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("object %s: %w", h, err)
	}
	if hdr.Type != want {
		r.Close()
		return nil, fmt.Errorf("object %s: type mismatch: got %q, want %q", h, hdr.Type, want)
	}
	return r, nil
}

// ReadCommit reads and decodes the commit stored under h.
func (s *Store) ReadCommit(h Hash) (*Commit, error) {
	r, err := s.openTyped(h, TypeCommit)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	c, err := parseCommit(r)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", h, err)
	}
	return c, nil
}

// ReadTree reads and decodes the tree stored under h.
func (s *Store) ReadTree(h Hash) (*Tree, error) {
	r, err := s.openTyped(h, TypeTree)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	t, err := parseTree(r)
	if err != nil {
		return nil, fmt.Errorf("tree %s: %w", h, err)
	}
	return t, nil
}

// ReadBlob reads the blob stored under h into memory.
func (s *Store) ReadBlob(h Hash) (*Blob, error) {
	r, err := s.openTyped(h, TypeBlob)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("blob %s: %w", h, err)
	}
	return &Blob{Data: data}, nil
}

// StreamBlob copies the blob payload for h to w verbatim, without
// buffering the whole object.
func (s *Store) StreamBlob(h Hash, w io.Writer) error {
	r, err := s.openTyped(h, TypeBlob)
	if err != nil {
		return err
	}
	defer r.Close()

	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("blob %s: %w", h, err)
	}
	return nil
}
