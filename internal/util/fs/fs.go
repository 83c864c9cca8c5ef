package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// DirPerm is used for every directory created through MkdirP.
	DirPerm  os.FileMode = 0o755
	// FilePerm is used for every file written through WriteFile.
	FilePerm os.FileMode = 0o644
)

// MkdirP creates path and any missing parents (like `mkdir -p`).
// An already existing directory is not an error.
func MkdirP(path string) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	return os.MkdirAll(path, DirPerm)
}

// RemoveTree removes path and everything below it. A missing path is not an
// error; existed reports whether there was anything to remove.
func RemoveTree(path string) (existed bool, err error) {
	if path == "" {
		return false, fmt.Errorf("path is empty")
	}
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, os.RemoveAll(path)
}

// WriteFile writes data to path, truncating any existing file.
// Parent directories are not created.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, FilePerm)
}

// Exists reports whether anything (file, directory or link) is at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// MissingDirs lists the directories MkdirP(path) would create, deepest
// first, ending just below the closest existing ancestor. It is empty when
// path already exists.
func MissingDirs(path string) []string {
	var missing []string
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		if _, err := os.Lstat(p); !errors.Is(err, fs.ErrNotExist) {
			return missing
		}
		missing = append(missing, p)
		if filepath.Dir(p) == p {
			return missing
		}
	}
}
