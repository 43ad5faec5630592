package object

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/klauspost/compress/zlib"
)

// Reader decodes a single loose object. It owns the underlying file handle
// and the inflater; the zlib stream is one-shot and stateful, so a Reader
// must never be reused or shared across objects. The decompressed length is
// not known in advance, so end-of-stream is the only terminal condition.
type Reader struct {
	file *os.File
	zr   io.ReadCloser
	br   *bufio.Reader
}

func newReader(f *os.File) (*Reader, error) {
	zr, err := zlib.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("inflate: %w", err)
	}
	return &Reader{file: f, zr: zr, br: bufio.NewReader(zr)}, nil
}

// ReadToken accumulates bytes up to the next occurrence of delim, consumes
// the delimiter, and returns the bytes before it. Reaching end-of-stream
// before the delimiter fails with ErrTruncated.
func (r *Reader) ReadToken(delim byte) (string, error) {
	tok, err := r.br.ReadString(delim)
	if err != nil {
		return "", fmt.Errorf("read token up to %q: %w", delim, classifyReadError(err))
	}
	return tok[:len(tok)-1], nil
}

// ReadFixed consumes exactly n raw bytes, used for the binary hash that
// follows each tree entry name.
func (r *Reader) ReadFixed(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.br, buf); err != nil {
		return nil, fmt.Errorf("read %d raw bytes: %w", n, classifyReadError(err))
	}
	return buf, nil
}

// classifyReadError maps a clean or premature end of input to
// ErrTruncated; anything else (a corrupt deflate stream, a checksum
// mismatch) is kept as-is so callers see the real failure.
func classifyReadError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// More reports whether any decompressed bytes remain. Only a clean
// end-of-stream counts as exhausted; a stream that fails mid-inflate
// still reports true so the next read surfaces the failure instead of
// the parse loop ending with partial data.
func (r *Reader) More() bool {
	_, err := r.br.Peek(1)
	return err == nil || !errors.Is(err, io.EOF)
}

// Read makes the remaining decompressed bytes available as an io.Reader,
// used to stream blob payloads.
func (r *Reader) Read(p []byte) (int, error) {
	return r.br.Read(p)
}

// Close releases the inflater and the file handle.
func (r *Reader) Close() error {
	zerr := r.zr.Close()
	ferr := r.file.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

// Header is the "<kind> <length>\0" prologue common to all loose objects.
type Header struct {
	Type   ObjectType
	Length int
}

// ReadHeader parses the object prologue. The declared length is consumed
// and returned but not enforced; the body is bounded by end-of-stream.
func (r *Reader) ReadHeader() (Header, error) {
	kind, err := r.ReadToken(' ')
	if err != nil {
		return Header{}, fmt.Errorf("object header: %w", err)
	}
	switch ObjectType(kind) {
	case TypeBlob, TypeTree, TypeCommit:
	default:
		return Header{}, fmt.Errorf("object header kind %q: %w", kind, ErrUnknownType)
	}

	sizeTok, err := r.ReadToken(0)
	if err != nil {
		return Header{}, fmt.Errorf("object header: %w", err)
	}
	length, err := strconv.Atoi(sizeTok)
	if err != nil || length < 0 {
		return Header{}, fmt.Errorf("object header length %q: %w", sizeTok, ErrMalformed)
	}

	return Header{Type: ObjectType(kind), Length: length}, nil
}
