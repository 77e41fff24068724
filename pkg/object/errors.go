package object

import "errors"

// Decode and lookup failures wrap one of these sentinels so callers can
// classify with errors.Is without parsing messages.
var (
	// ErrNotFound: no loose object file exists for the digest.
	ErrNotFound = errors.New("object not found")

	// ErrFormat: bytes on disk do not match the expected grammar (bad hex,
	// corrupt zlib stream, truncated tree entry, malformed ident line).
	ErrFormat = errors.New("malformed object")

	// ErrUnknownType: the envelope names a type outside blob/tree/commit.
	ErrUnknownType = errors.New("unknown object type")

	// ErrTypeMismatch: a digest expected to be one variant decoded as another.
	ErrTypeMismatch = errors.New("object type mismatch")
)
