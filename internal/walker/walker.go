// Package walker enumerates candidate files for the organizer.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Files lists the regular files under root.
//
// With recursive set, the whole tree is descended and every file path is
// returned; otherwise only root's immediate entries are listed.
// Directories themselves are never returned. Order is whatever the
// filesystem yields; callers must not rely on it.
func Files(root string, recursive bool) ([]string, error) {
	if recursive {
		var files []string
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, path)
			}
			return nil
		})
		return files, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, filepath.Join(root, entry.Name()))
		}
	}
	return files, nil
}
