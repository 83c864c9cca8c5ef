// Package workdirtest binds workdir handles to the lifetime of a test.
package workdirtest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vbp1/workdir/pkg/workdir"
)

// Config returns a default configuration for name under a per-test temp dir.
func Config(t testing.TB, name string) workdir.Config {
	t.Helper()
	return workdir.New(filepath.Join(t.TempDir(), name))
}

// Open opens and initializes cfg, failing the test on error. The handle is
// closed when the test and its subtests finish.
func Open(t testing.TB, cfg workdir.Config) *workdir.Dir {
	t.Helper()
	d := cfg.Open()
	t.Cleanup(d.Close)
	require.NoError(t, d.Initialize(), "initialize %s", cfg.Path())
	return d
}

// WriteFile writes contents to name inside d, failing the test on error.
func WriteFile(t testing.TB, d *workdir.Dir, name, contents string) string {
	t.Helper()
	require.NoError(t, d.WriteString(name, contents))
	return d.Join(name)
}
