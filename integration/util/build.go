//go:build integration
// +build integration

package util

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
)

// BuildBinary compiles cmd/workdir into outDir and returns the binary path.
// moduleRoot is the directory holding go.mod.
func BuildBinary(ctx context.Context, moduleRoot, outDir string) (string, error) {
	bin := filepath.Join(outDir, "workdir")
	build := exec.CommandContext(ctx, "go", "build", "-o", bin, "./cmd/workdir")
	build.Dir = moduleRoot
	out, err := build.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("go build: %w\n%s", err, string(out))
	}
	return bin, nil
}
