package object

import "encoding/hex"

// parseTree decodes tree entries in encounter order. Each entry is an
// ASCII mode, a space, a NUL-terminated name, and 20 raw hash bytes. The
// body carries no entry count; the stream running dry is the sole
// terminal condition.
func parseTree(r *Reader) (*Tree, error) {
	t := &Tree{}
	for r.More() {
		mode, err := r.ReadToken(' ')
		if err != nil {
			return nil, err
		}
		name, err := r.ReadToken(0)
		if err != nil {
			return nil, err
		}
		raw, err := r.ReadFixed(20)
		if err != nil {
			return nil, err
		}
		t.Entries = append(t.Entries, TreeEntry{
			Mode: mode,
			Name: name,
			Hash: Hash(hex.EncodeToString(raw)),
		})
	}
	return t, nil
}
