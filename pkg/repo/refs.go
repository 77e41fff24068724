package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rgilmutdinov/gitview/pkg/object"
)

// ErrBadHead means HEAD does not contain a "ref: refs/heads/<name>" line.
var ErrBadHead = errors.New("malformed HEAD")

// ErrNoBranch means the named branch ref file does not exist.
var ErrNoBranch = errors.New("branch not found")

const headRefPrefix = "ref: refs/heads/"

// CurrentBranch reads HEAD and returns the branch name from its symbolic
// ref line (e.g. "ref: refs/heads/main" -> "main"). Anything else, including
// a detached raw digest, wraps ErrBadHead.
func (r *Repo) CurrentBranch() (string, error) {
	headPath := filepath.Join(r.GitDir, "HEAD")
	data, err := os.ReadFile(headPath)
	if err != nil {
		return "", fmt.Errorf("current branch: read %s: %w", headPath, err)
	}

	content := strings.TrimRight(string(data), "\n")
	if !strings.HasPrefix(content, headRefPrefix) {
		return "", fmt.Errorf("current branch: %w: %q", ErrBadHead, content)
	}
	name := strings.TrimPrefix(content, headRefPrefix)
	if name == "" {
		return "", fmt.Errorf("current branch: %w: %q", ErrBadHead, content)
	}
	return name, nil
}

// ListBranches reads refs/heads/ and returns the branch names sorted
// lexicographically, independent of directory enumeration order. A missing
// refs/heads/ yields an empty list.
func (r *Repo) ListBranches() ([]string, error) {
	headsDir := filepath.Join(r.GitDir, "refs", "heads")

	entries, err := os.ReadDir(headsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list branches: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ResolveBranch reads refs/heads/<name> and returns the head commit digest.
func (r *Repo) ResolveBranch(name string) (object.Digest, error) {
	refPath := filepath.Join(r.GitDir, "refs", "heads", name)
	data, err := os.ReadFile(refPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("resolve branch %q: %w", name, ErrNoBranch)
		}
		return "", fmt.Errorf("resolve branch %q: %w", name, err)
	}

	d := object.Digest(strings.TrimSpace(string(data)))
	if !d.Valid() {
		return "", fmt.Errorf("resolve branch %q: %w: ref content %q", name, object.ErrFormat, strings.TrimSpace(string(data)))
	}
	return d, nil
}
