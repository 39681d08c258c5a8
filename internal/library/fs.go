package library

import (
	"io"
	"os"
	"path/filepath"
)

// Rename gives the file at path a new name within its own directory.
// newName must be a bare file name, not a path.
func Rename(path, newName string) error {
	return os.Rename(path, filepath.Join(filepath.Dir(path), newName))
}

// Move relocates the file at path into targetDir, creating the directory
// (and parents) if needed. The file keeps its name.
//
// A plain rename is attempted first; when the target is on a different
// filesystem the file is copied and the original removed.
func Move(path, targetDir string) error {
	if err := EnsureDir(targetDir); err != nil {
		return err
	}

	target := filepath.Join(targetDir, filepath.Base(path))
	if err := os.Rename(path, target); err == nil {
		return nil
	}

	if err := copyFile(path, target); err != nil {
		return err
	}
	return os.Remove(path)
}

// EnsureDir creates a directory and all parent directories if they don't
// exist. Directories are created with mode 0755.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}
