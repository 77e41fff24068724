package object

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zlib"
)

// writeLooseObject writes a zlib-compressed loose object under root/objects/
// using the standard "<type> <len>\0<body>" envelope and returns its digest.
func writeLooseObject(t *testing.T, root string, objType ObjectType, body []byte) Digest {
	t.Helper()

	envelope := append(fmt.Appendf(nil, "%s %d\x00", objType, len(body)), body...)
	sum := sha1.Sum(envelope)
	d := Digest(hex.EncodeToString(sum[:]))

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(envelope); err != nil {
		t.Fatalf("compress object: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close compressor: %v", err)
	}

	dir := filepath.Join(root, "objects", string(d[:2]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, string(d[2:]))
	if err := os.WriteFile(path, compressed.Bytes(), 0o644); err != nil {
		t.Fatalf("write object %s: %v", path, err)
	}
	return d
}

// treeEntryBytes encodes one binary tree entry: "<mode> <name>\0<raw digest>".
func treeEntryBytes(t *testing.T, mode string, name string, child Digest) []byte {
	t.Helper()

	raw, err := child.Bytes()
	if err != nil {
		t.Fatalf("digest bytes: %v", err)
	}
	var buf bytes.Buffer
	buf.WriteString(mode)
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteByte(0)
	buf.Write(raw)
	return buf.Bytes()
}

// compressBytes zlib-compresses raw bytes for hand-built fixtures.
func compressBytes(t *testing.T, raw []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close compressor: %v", err)
	}
	return buf.Bytes()
}

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return NewStore(dir), dir
}
