package object

import "errors"

// Decode failures are never recovered internally. A loose object is either
// fully well-formed or the store is corrupt, so every failure propagates to
// the operation that requested the object and aborts it.
var (
	// ErrObjectNotFound means a hash does not resolve to a stored file.
	ErrObjectNotFound = errors.New("object not found")

	// ErrTruncated means the stream ended before a delimiter was seen or a
	// fixed-width field was fully read.
	ErrTruncated = errors.New("truncated object stream")

	// ErrUnknownType means an object header named a kind other than blob,
	// tree, or commit.
	ErrUnknownType = errors.New("unknown object type")

	// ErrMalformed means a field did not parse as the expected integer,
	// hash, or zone offset.
	ErrMalformed = errors.New("malformed object field")
)
