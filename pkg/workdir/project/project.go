// Package project resolves conventional directories of a Go module so they
// can be handed to workdir.New.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoModule is returned when no go.mod is found above the start path.
var ErrNoModule = errors.New("no go.mod found")

// Root returns the nearest directory at or above start containing go.mod.
func Root(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if st, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && st.Mode().IsRegular() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w above %s", ErrNoModule, start)
		}
		dir = parent
	}
}

// Subdir joins rel to root. rel must be relative.
func Subdir(root, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("subdir %q must be relative", rel)
	}
	return filepath.Join(root, rel), nil
}

// Testdata returns root/testdata/rel.
func Testdata(root, rel string) (string, error) { return under(root, "testdata", rel) }

// Examples returns root/examples/rel.
func Examples(root, rel string) (string, error) { return under(root, "examples", rel) }

// Bin returns root/bin/rel, the usual home of build output.
func Bin(root, rel string) (string, error) { return under(root, "bin", rel) }

func under(root, dir, rel string) (string, error) {
	return Subdir(filepath.Join(root, dir), rel)
}
