package repo

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zlib"

	"github.com/rgilmutdinov/gitview/pkg/object"
)

// newTestRepo creates an empty repository layout (objects/, refs/heads/,
// HEAD on main) in a temp dir and opens it.
func newTestRepo(t *testing.T) *Repo {
	t.Helper()

	gitDir := t.TempDir()
	for _, d := range []string{
		filepath.Join(gitDir, "objects"),
		filepath.Join(gitDir, "refs", "heads"),
	} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	writeHead(t, gitDir, "ref: refs/heads/main\n")

	r, err := Open(gitDir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return r
}

func writeHead(t *testing.T, gitDir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte(content), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}
}

func writeBranch(t *testing.T, r *Repo, name string, d object.Digest) {
	t.Helper()
	path := filepath.Join(r.GitDir, "refs", "heads", name)
	if err := os.WriteFile(path, []byte(string(d)+"\n"), 0o644); err != nil {
		t.Fatalf("write branch %s: %v", name, err)
	}
}

// writeObject stores a zlib-compressed loose object and returns its digest.
func writeObject(t *testing.T, r *Repo, objType object.ObjectType, body []byte) object.Digest {
	t.Helper()

	envelope := append(fmt.Appendf(nil, "%s %d\x00", objType, len(body)), body...)
	sum := sha1.Sum(envelope)
	d := object.Digest(hex.EncodeToString(sum[:]))

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(envelope); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close compressor: %v", err)
	}

	dir := filepath.Join(r.GitDir, "objects", string(d[:2]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, string(d[2:])), compressed.Bytes(), 0o644); err != nil {
		t.Fatalf("write object: %v", err)
	}
	return d
}

func writeBlob(t *testing.T, r *Repo, content string) object.Digest {
	t.Helper()
	return writeObject(t, r, object.TypeBlob, []byte(content))
}

type testTreeEntry struct {
	mode  string
	name  string
	child object.Digest
}

// writeTree stores a binary tree body with entries in the given order.
func writeTree(t *testing.T, r *Repo, entries []testTreeEntry) object.Digest {
	t.Helper()

	var body bytes.Buffer
	for _, e := range entries {
		raw, err := e.child.Bytes()
		if err != nil {
			t.Fatalf("digest bytes: %v", err)
		}
		body.WriteString(e.mode)
		body.WriteByte(' ')
		body.WriteString(e.name)
		body.WriteByte(0)
		body.Write(raw)
	}
	return writeObject(t, r, object.TypeTree, body.Bytes())
}

// writeCommit stores a commit with the given tree, parents (0-2), and
// message, using a fixed ident.
func writeCommit(t *testing.T, r *Repo, tree object.Digest, parents []object.Digest, msg string) object.Digest {
	t.Helper()

	var body bytes.Buffer
	fmt.Fprintf(&body, "tree %s\n", tree)
	for _, p := range parents {
		fmt.Fprintf(&body, "parent %s\n", p)
	}
	fmt.Fprintf(&body, "author Test Author <test@example.com> 1600000000 +0200\n")
	fmt.Fprintf(&body, "committer Test Author <test@example.com> 1600000000 +0200\n")
	fmt.Fprintf(&body, "\n%s", msg)
	return writeObject(t, r, object.TypeCommit, body.Bytes())
}

// linearHistory writes n commits on top of each other and returns their
// digests in creation (root-first) order.
func linearHistory(t *testing.T, r *Repo, n int) []object.Digest {
	t.Helper()

	digests := make([]object.Digest, 0, n)
	var parent object.Digest
	for i := 0; i < n; i++ {
		blob := writeBlob(t, r, fmt.Sprintf("content %d", i))
		tree := writeTree(t, r, []testTreeEntry{{mode: "100644", name: "file.txt", child: blob}})

		var parents []object.Digest
		if parent != "" {
			parents = []object.Digest{parent}
		}
		c := writeCommit(t, r, tree, parents, fmt.Sprintf("commit %d", i))
		digests = append(digests, c)
		parent = c
	}
	return digests
}
