// Package scan discovers git repositories under a workspace root.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Entry is one discovered repository as rendered in list views.
// Entries are recomputed wholesale on every scan and never mutated.
type Entry struct {
	Name     string `json:"name"`     // last path segment
	Path     string `json:"path"`     // absolute repository root
	Subtitle string `json:"subtitle"` // path relative to the workspace root
}

// Scan walks root to at most depth directory levels and returns one Entry
// for every directory that directly contains a .git marker, sorted by name
// with locale-aware ordering. A directory that is a repository is not
// descended into. Symlinked directories are not followed, and
// permission-denied subtrees are skipped.
func Scan(ctx context.Context, root string, depth int) ([]Entry, error) {
	root = filepath.Clean(root)

	st, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("workspace root %s: %w", root, err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("workspace root %s is not a directory", root)
	}

	var entries []Entry
	if err := scanDir(ctx, root, root, 0, depth, &entries); err != nil {
		return nil, err
	}

	sortEntries(entries)
	return entries, nil
}

// scanDir appends an Entry for dir if it is a repository root, otherwise
// recurses into subdirectories while level < depth.
func scanDir(ctx context.Context, root, dir string, level, depth int, entries *[]Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if isRepoRoot(dir) {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			rel = dir
		}
		*entries = append(*entries, Entry{
			Name:     filepath.Base(dir),
			Path:     dir,
			Subtitle: rel,
		})
		return nil
	}

	if level >= depth {
		return nil
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsPermission(err) {
			return nil
		}
		// The root itself was stat'd by Scan; deeper read failures are
		// skipped so one unreadable subtree doesn't kill the scan.
		if dir != root {
			return nil
		}
		return err
	}

	for _, d := range dirents {
		// DirEntry.IsDir does not follow symlinks, so this also skips
		// symlinked directories.
		if !d.IsDir() {
			continue
		}
		name := d.Name()
		if name == ".git" {
			continue
		}
		if err := scanDir(ctx, root, filepath.Join(dir, name), level+1, depth, entries); err != nil {
			return err
		}
	}

	return nil
}

// isRepoRoot checks whether path directly contains a .git marker.
// The marker can be a directory (regular repo) or a file (linked worktree).
func isRepoRoot(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}
