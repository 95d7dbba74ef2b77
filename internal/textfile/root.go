package textfile

import (
	"os"
	"path/filepath"

	"github.com/tacogips/repogen/internal/debug"
)

// RepoMarkers are the version-control directories that identify a
// repository root.
var RepoMarkers = []string{".git", ".hg", ".svn"}

// RootFinder locates the repository root that relative locations are
// anchored to.
type RootFinder func() (string, error)

// FindRepoRoot walks from the current working directory upward and returns
// the first directory containing one of RepoMarkers.
func FindRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", newTextFileError(LocationUndefined, "failed to determine working directory", "", err)
	}
	return FindRepoRootFrom(cwd)
}

// FindRepoRootFrom walks from start upward and returns the first directory
// containing one of RepoMarkers as a directory.
func FindRepoRootFrom(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", newTextFileError(LocationUndefined, "failed to resolve start directory", start, err)
	}
	for {
		for _, marker := range RepoMarkers {
			info, err := os.Stat(filepath.Join(dir, marker))
			if err == nil && info.IsDir() {
				debug.Debug("[textfile] Repository root found: %s (marker: %s)", dir, marker)
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", newTextFileError(LocationUndefined, "no repository root found above", start, nil)
		}
		dir = parent
	}
}
