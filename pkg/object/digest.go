package object

import (
	"encoding/hex"
	"fmt"
)

// Digest is a 40-character lowercase hex-encoded SHA-1 content digest.
// The store is content-addressed: the bytes behind a digest never change.
type Digest string

// RawDigestLen is the binary digest size; HexDigestLen its hex encoding.
const (
	RawDigestLen = 20
	HexDigestLen = 40
)

// DigestFromBytes hex-encodes a raw 20-byte digest.
func DigestFromBytes(raw []byte) (Digest, error) {
	if len(raw) != RawDigestLen {
		return "", fmt.Errorf("digest from bytes: %w: got %d bytes, want %d", ErrFormat, len(raw), RawDigestLen)
	}
	return Digest(hex.EncodeToString(raw)), nil
}

// Bytes decodes the digest back to its raw 20-byte form.
func (d Digest) Bytes() ([]byte, error) {
	if len(d) != HexDigestLen {
		return nil, fmt.Errorf("digest %q: %w: got %d hex chars, want %d", d, ErrFormat, len(d), HexDigestLen)
	}
	raw, err := hex.DecodeString(string(d))
	if err != nil {
		return nil, fmt.Errorf("digest %q: %w: %v", d, ErrFormat, err)
	}
	return raw, nil
}

// Valid reports whether the digest is 40 lowercase hex characters.
func (d Digest) Valid() bool {
	if len(d) != HexDigestLen {
		return false
	}
	for i := 0; i < len(d); i++ {
		c := d[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// Short returns an 8-character abbreviation for display.
func (d Digest) Short() string {
	if len(d) > 8 {
		return string(d[:8])
	}
	return string(d)
}
