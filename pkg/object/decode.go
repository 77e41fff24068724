package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// decodeBody dispatches on the envelope type and parses the body into the
// matching variant.
func decodeBody(d Digest, objType ObjectType, size int64, body []byte) (Object, error) {
	m := meta{id: d, size: size}
	switch objType {
	case TypeBlob:
		return decodeBlob(m, body), nil
	case TypeTree:
		return decodeTree(m, body)
	case TypeCommit:
		return decodeCommit(m, body)
	default:
		return nil, fmt.Errorf("object %s: %w: %q", d, ErrUnknownType, objType)
	}
}

func decodeBlob(m meta, body []byte) *Blob {
	content := make([]byte, len(body))
	copy(content, body)
	return &Blob{meta: m, Content: content}
}

// decodeTree parses the binary tree body: a sequence of
//
//	<octal mode> SP <name> NUL <20 raw digest bytes>
//
// repeated until the stream is exhausted. There is no entry count in the
// format; running out of bytes mid-entry is a format error.
func decodeTree(m meta, body []byte) (*Tree, error) {
	tree := &Tree{meta: m}
	rest := body
	for len(rest) > 0 {
		sp := bytes.IndexByte(rest, ' ')
		if sp < 0 {
			return nil, fmt.Errorf("object %s: %w: tree entry missing mode separator", m.id, ErrFormat)
		}
		mode, err := strconv.ParseUint(string(rest[:sp]), 8, 32)
		if err != nil {
			return nil, fmt.Errorf("object %s: %w: tree entry mode %q", m.id, ErrFormat, rest[:sp])
		}
		rest = rest[sp+1:]

		nul := bytes.IndexByte(rest, 0)
		if nul < 0 {
			return nil, fmt.Errorf("object %s: %w: tree entry missing name terminator", m.id, ErrFormat)
		}
		name := string(rest[:nul])
		rest = rest[nul+1:]

		if len(rest) < RawDigestLen {
			return nil, fmt.Errorf("object %s: %w: tree entry %q truncated digest (%d bytes)", m.id, ErrFormat, name, len(rest))
		}
		child, err := DigestFromBytes(rest[:RawDigestLen])
		if err != nil {
			return nil, err
		}
		rest = rest[RawDigestLen:]

		tree.Entries = append(tree.Entries, TreeEntry{
			Mode:   uint32(mode),
			Name:   name,
			Digest: child,
		})
	}
	return tree, nil
}

// decodeCommit parses the commit body: "key value" header lines up to the
// first blank line, then the message verbatim (embedded blank lines and all).
func decodeCommit(m meta, body []byte) (*Commit, error) {
	c := &Commit{meta: m}

	rest := string(body)
	var parents []Digest
	for {
		line, remainder, found := strings.Cut(rest, "\n")
		if line == "" {
			// Blank line: everything after it is the message. A body that
			// ends inside the header leaves the message empty.
			if found {
				c.Message = remainder
			}
			break
		}
		if !found {
			return nil, fmt.Errorf("object %s: %w: commit header not terminated by blank line", m.id, ErrFormat)
		}
		rest = remainder

		key, val, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("object %s: %w: commit header line %q", m.id, ErrFormat, line)
		}
		switch key {
		case "tree":
			c.Tree = Digest(val)
		case "parent":
			if len(parents) == 2 {
				return nil, fmt.Errorf("object %s: %w: more than two parent lines", m.id, ErrFormat)
			}
			parents = append(parents, Digest(val))
		case "author":
			ident, err := parseIdent(m.id, val)
			if err != nil {
				return nil, err
			}
			c.Author = ident
		case "committer":
			ident, err := parseIdent(m.id, val)
			if err != nil {
				return nil, err
			}
			c.Committer = ident
		default:
			return nil, fmt.Errorf("object %s: %w: unknown commit header key %q", m.id, ErrFormat, key)
		}
	}

	if len(parents) > 0 {
		c.Parent = parents[0]
	}
	if len(parents) > 1 {
		c.MergeParent = parents[1]
	}
	return c, nil
}

// parseIdent parses "Name <email> <epoch seconds> <signed 4-digit offset>",
// e.g. "Ada L <ada@x> 1600000000 +0200". The instant is kept in the recorded
// offset.
func parseIdent(d Digest, val string) (Ident, error) {
	open := strings.Index(val, " <")
	closeIdx := strings.Index(val, ">")
	if open < 0 || closeIdx < open {
		return Ident{}, fmt.Errorf("object %s: %w: ident %q", d, ErrFormat, val)
	}
	name := val[:open]
	email := val[open+2 : closeIdx]

	rest := strings.TrimPrefix(val[closeIdx+1:], " ")
	epochStr, zoneStr, ok := strings.Cut(rest, " ")
	if !ok {
		return Ident{}, fmt.Errorf("object %s: %w: ident %q missing timestamp", d, ErrFormat, val)
	}
	epoch, err := strconv.ParseInt(epochStr, 10, 64)
	if err != nil {
		return Ident{}, fmt.Errorf("object %s: %w: ident epoch %q", d, ErrFormat, epochStr)
	}
	loc, err := parseZoneOffset(zoneStr)
	if err != nil {
		return Ident{}, fmt.Errorf("object %s: %w: ident zone %q", d, ErrFormat, zoneStr)
	}

	return Ident{
		Name:  name,
		Email: email,
		When:  time.Unix(epoch, 0).In(loc),
	}, nil
}

// parseZoneOffset parses a mandatory-sign 4-digit offset like "+0300" or
// "-0500" into a fixed zone.
func parseZoneOffset(s string) (*time.Location, error) {
	if len(s) != 5 || (s[0] != '+' && s[0] != '-') {
		return nil, fmt.Errorf("bad offset %q", s)
	}
	for i := 1; i < 5; i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, fmt.Errorf("bad offset %q", s)
		}
	}
	hours := int(s[1]-'0')*10 + int(s[2]-'0')
	mins := int(s[3]-'0')*10 + int(s[4]-'0')
	secs := (hours*60 + mins) * 60
	if s[0] == '-' {
		secs = -secs
	}
	return time.FixedZone(s, secs), nil
}
