package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rgilmutdinov/gitview/pkg/object"
)

// Repo is a read-only handle on a repository directory: the directory that
// contains objects/, refs/, and HEAD (a .git directory or a bare layout).
// Nothing here mutates the repository.
type Repo struct {
	GitDir string
	Store  *object.Store
}

// Open opens the repository directory at path. It accepts either the
// repository directory itself or a working tree containing .git/. Returns an
// error if no objects/ directory is found.
func Open(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("open: abs path: %w", err)
	}

	for _, dir := range []string{abs, filepath.Join(abs, ".git")} {
		if isRepoDir(dir) {
			return &Repo{
				GitDir: dir,
				Store:  object.NewStore(dir),
			}, nil
		}
	}
	return nil, fmt.Errorf("open: %s is not a git repository", path)
}

// Discover searches upward from path for a directory containing .git/ and
// opens it. Returns an error if the filesystem root is reached first.
func Discover(path string) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("discover: abs path: %w", err)
	}

	cur := abs
	for {
		gitDir := filepath.Join(cur, ".git")
		if isRepoDir(gitDir) {
			return &Repo{
				GitDir: gitDir,
				Store:  object.NewStore(gitDir),
			}, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return nil, fmt.Errorf("discover: not a git repository (or any parent up to /)")
		}
		cur = parent
	}
}

func isRepoDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "objects"))
	return err == nil && info.IsDir()
}
