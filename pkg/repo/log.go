package repo

import (
	"fmt"

	"github.com/rgilmutdinov/gitview/pkg/object"
)

// LogEntry is one rendered history row: the commit, its digest, and whether
// it was surfaced as the merged-in side of a merge rather than as a mainline
// ancestor.
type LogEntry struct {
	Digest   object.Digest
	Commit   *object.Commit
	MergedIn bool
}

// Log walks first-parent history from start and returns the entries in
// child-to-root order. When a commit is a merge, the merge-parent commit is
// emitted immediately after it, flagged MergedIn, before the walk continues
// down the mainline. The merged branch's own ancestry is not followed; only
// the immediate merge-parent commit is surfaced.
//
// Any decode failure aborts the whole walk; there is no partial result.
func (r *Repo) Log(start object.Digest) ([]LogEntry, error) {
	return r.LogN(start, 0)
}

// LogN is Log capped at limit entries. A limit of zero or less means
// unbounded.
func (r *Repo) LogN(start object.Digest, limit int) ([]LogEntry, error) {
	var entries []LogEntry
	full := func() bool { return limit > 0 && len(entries) >= limit }

	current, err := r.Store.ReadCommit(start)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	entries = append(entries, LogEntry{Digest: start, Commit: current})

	for current.Parent != "" && !full() {
		if current.MergeParent != "" {
			merged, err := r.Store.ReadCommit(current.MergeParent)
			if err != nil {
				return nil, fmt.Errorf("log: merge parent: %w", err)
			}
			entries = append(entries, LogEntry{
				Digest:   current.MergeParent,
				Commit:   merged,
				MergedIn: true,
			})
			if full() {
				break
			}
		}

		parentDigest := current.Parent
		parent, err := r.Store.ReadCommit(parentDigest)
		if err != nil {
			return nil, fmt.Errorf("log: parent: %w", err)
		}
		entries = append(entries, LogEntry{Digest: parentDigest, Commit: parent})
		current = parent
	}

	return entries, nil
}
