package object

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Store is a read-only, content-addressed loose-object store with a
// 2-character fan-out directory layout: objects/ab/cdef0123...
//
// Objects are immutable, so a Store is safe for concurrent use without
// locking; every read goes straight to disk and nothing is cached.
type Store struct {
	root string
}

// NewStore creates a Store rooted at the repository directory (the one
// containing objects/).
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the store's repository directory.
func (s *Store) Root() string { return s.root }

// ObjectPath returns the filesystem path for a given digest.
func (s *Store) ObjectPath(d Digest) string {
	return filepath.Join(s.root, "objects", string(d[:2]), string(d[2:]))
}

// Has reports whether the store contains a loose object with the digest.
func (s *Store) Has(d Digest) bool {
	if !d.Valid() {
		return false
	}
	_, err := os.Stat(s.ObjectPath(d))
	return err == nil
}

// ReadRaw locates the loose object file for a digest and returns its
// decompressed bytes, envelope included. A missing file wraps ErrNotFound;
// a corrupt or truncated zlib stream wraps ErrFormat.
func (s *Store) ReadRaw(d Digest) ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("object %s: %w: not a 40-char hex digest", d, ErrFormat)
	}

	path := s.ObjectPath(d)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object %s: %w: %s", d, ErrNotFound, path)
		}
		return nil, fmt.Errorf("object %s: open %s: %w", d, path, err)
	}
	defer f.Close()

	zr, err := zlib.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w: zlib: %v", d, ErrFormat, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w: inflate: %v", d, ErrFormat, err)
	}
	return raw, nil
}

// ReadObject reads, inflates, and decodes one object. The decompressed form
// is "<type> <len>\0<body>"; the declared length is kept as metadata only.
func (s *Store) ReadObject(d Digest) (Object, error) {
	raw, err := s.ReadRaw(d)
	if err != nil {
		return nil, err
	}

	objType, size, body, err := splitEnvelope(d, raw)
	if err != nil {
		return nil, err
	}
	return decodeBody(d, objType, size, body)
}

// splitEnvelope parses the "<type> <decimal length>\0" header off the
// decompressed stream.
func splitEnvelope(d Digest, raw []byte) (ObjectType, int64, []byte, error) {
	nulIdx := bytes.IndexByte(raw, 0)
	if nulIdx < 0 {
		return "", 0, nil, fmt.Errorf("object %s: %w: no NUL after header", d, ErrFormat)
	}
	header := string(raw[:nulIdx])
	body := raw[nulIdx+1:]

	name, lenStr, ok := strings.Cut(header, " ")
	if !ok {
		return "", 0, nil, fmt.Errorf("object %s: %w: header %q", d, ErrFormat, header)
	}

	var objType ObjectType
	switch ObjectType(name) {
	case TypeBlob, TypeTree, TypeCommit:
		objType = ObjectType(name)
	default:
		return "", 0, nil, fmt.Errorf("object %s: %w: %q", d, ErrUnknownType, name)
	}

	size, err := strconv.ParseInt(lenStr, 10, 64)
	if err != nil {
		return "", 0, nil, fmt.Errorf("object %s: %w: length %q", d, ErrFormat, lenStr)
	}
	return objType, size, body, nil
}

// ---------------------------------------------------------------------------
// Typed convenience methods
// ---------------------------------------------------------------------------

// ReadBlob reads an object and requires it to be a blob.
func (s *Store) ReadBlob(d Digest) (*Blob, error) {
	obj, err := s.ReadObject(d)
	if err != nil {
		return nil, err
	}
	b, ok := obj.(*Blob)
	if !ok {
		return nil, fmt.Errorf("object %s: %w: got %q, want %q", d, ErrTypeMismatch, obj.Type(), TypeBlob)
	}
	return b, nil
}

// ReadTree reads an object and requires it to be a tree.
func (s *Store) ReadTree(d Digest) (*Tree, error) {
	obj, err := s.ReadObject(d)
	if err != nil {
		return nil, err
	}
	t, ok := obj.(*Tree)
	if !ok {
		return nil, fmt.Errorf("object %s: %w: got %q, want %q", d, ErrTypeMismatch, obj.Type(), TypeTree)
	}
	return t, nil
}

// ReadCommit reads an object and requires it to be a commit.
func (s *Store) ReadCommit(d Digest) (*Commit, error) {
	obj, err := s.ReadObject(d)
	if err != nil {
		return nil, err
	}
	c, ok := obj.(*Commit)
	if !ok {
		return nil, fmt.Errorf("object %s: %w: got %q, want %q", d, ErrTypeMismatch, obj.Type(), TypeCommit)
	}
	return c, nil
}
