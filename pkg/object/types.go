package object

import "time"

// ObjectType identifies the kind of object stored.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
)

// Object is the closed set of decoded loose objects: *Blob, *Tree, *Commit.
// Consumers dispatch with a type switch; the unexported method keeps the set
// closed so a new variant forces every switch site to be revisited.
type Object interface {
	ID() Digest
	Type() ObjectType
	// Size is the byte count declared in the object header. It is advisory
	// metadata for display and is not re-validated against the payload.
	Size() int64

	isObject()
}

type meta struct {
	id   Digest
	size int64
}

func (m meta) ID() Digest  { return m.id }
func (m meta) Size() int64 { return m.size }

// Blob holds raw file content.
type Blob struct {
	meta
	Content []byte
}

func (*Blob) Type() ObjectType { return TypeBlob }
func (*Blob) isObject()        {}

// TreeEntry is one entry in a tree object, in on-disk order.
// Mode carries the raw permission/type bits from the entry header; it does
// not reliably encode whether the child is a tree or a blob, so the child's
// kind must come from decoding it.
type TreeEntry struct {
	Mode   uint32
	Name   string
	Digest Digest
}

// Tree holds an ordered list of entries. The order is exactly the on-disk
// order; it is never re-sorted.
type Tree struct {
	meta
	Entries []TreeEntry
}

func (*Tree) Type() ObjectType { return TypeTree }
func (*Tree) isObject()        {}

// Ident is an author or committer line: name, email, and the instant in the
// recorded zone offset. Times stay in that offset rather than UTC because
// commit times are displayed zone-relative.
type Ident struct {
	Name  string
	Email string
	When  time.Time
}

// Commit points at a tree with metadata. Parent is the mainline parent and is
// empty for root commits; MergeParent is the second parent of a merge commit.
// Commits with more than two parents are not representable and are rejected
// by the decoder.
type Commit struct {
	meta
	Tree        Digest
	Parent      Digest
	MergeParent Digest
	Author      Ident
	Committer   Ident
	Message     string
}

func (*Commit) Type() ObjectType { return TypeCommit }
func (*Commit) isObject()        {}

// IsRoot reports whether the commit has no parents.
func (c *Commit) IsRoot() bool { return c.Parent == "" }

// IsMerge reports whether the commit has a second parent.
func (c *Commit) IsMerge() bool { return c.MergeParent != "" }
