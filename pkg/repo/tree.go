package repo

import (
	"fmt"
	"path"

	"github.com/rgilmutdinov/gitview/pkg/object"
)

// TreeFileEntry is a single file in a flattened tree: its slash-joined path
// from the tree root and its blob digest.
type TreeFileEntry struct {
	Path   string
	Digest object.Digest
}

// FlattenCommitTree decodes the commit at commitDigest and flattens its root
// tree. The digest must name a commit; any other variant is a type mismatch.
func (r *Repo) FlattenCommitTree(commitDigest object.Digest) ([]TreeFileEntry, error) {
	c, err := r.Store.ReadCommit(commitDigest)
	if err != nil {
		return nil, fmt.Errorf("flatten commit: %w", err)
	}
	return r.FlattenTree(c.Tree)
}

// FlattenTree walks a tree recursively and returns all file entries with
// their full forward-slash paths, in the order the entries appear in each
// tree. A child's kind comes from decoding it, not from its mode bits; a
// commit digest inside a tree is a type mismatch.
func (r *Repo) FlattenTree(d object.Digest) ([]TreeFileEntry, error) {
	tree, err := r.Store.ReadTree(d)
	if err != nil {
		return nil, fmt.Errorf("flatten tree: %w", err)
	}
	return r.flattenTreeRec(tree, "")
}

func (r *Repo) flattenTreeRec(tree *object.Tree, prefix string) ([]TreeFileEntry, error) {
	var result []TreeFileEntry
	for _, entry := range tree.Entries {
		fullPath := entry.Name
		if prefix != "" {
			fullPath = path.Join(prefix, entry.Name)
		}

		child, err := r.Store.ReadObject(entry.Digest)
		if err != nil {
			return nil, fmt.Errorf("flatten tree: entry %q: %w", fullPath, err)
		}
		switch c := child.(type) {
		case *object.Tree:
			sub, err := r.flattenTreeRec(c, fullPath)
			if err != nil {
				return nil, err
			}
			result = append(result, sub...)
		case *object.Blob:
			result = append(result, TreeFileEntry{Path: fullPath, Digest: entry.Digest})
		default:
			return nil, fmt.Errorf("flatten tree: entry %q: %w: got %q inside a tree", fullPath, object.ErrTypeMismatch, child.Type())
		}
	}
	return result, nil
}
