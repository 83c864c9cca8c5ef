package workdir

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does", "not", "exist")
	cfg := New(path)

	assert.Equal(t, path, cfg.Path())
	assert.False(t, cfg.Retained())
	assert.False(t, cfg.CleansBeforeUse())
	assert.False(t, cfg.SeedsGitignore())
	// building a config never touches the filesystem
	assert.NoDirExists(t, path)
}

func TestPolicyMethodsReturnCopies(t *testing.T) {
	base := New("some/path")

	kept := base.Keep()
	cleaned := base.Clean()
	ignored := base.WithGitignore()

	assert.False(t, base.Retained())
	assert.False(t, base.CleansBeforeUse())
	assert.False(t, base.SeedsGitignore())

	assert.True(t, kept.Retained())
	assert.False(t, kept.CleansBeforeUse())
	assert.False(t, kept.SeedsGitignore())

	assert.True(t, cleaned.CleansBeforeUse())
	assert.False(t, cleaned.Retained())

	assert.True(t, ignored.SeedsGitignore())
	assert.False(t, ignored.Retained())
}

func TestPolicyOrderDoesNotMatter(t *testing.T) {
	a := New("p").Keep().Clean().WithGitignore()
	b := New("p").WithGitignore().Clean().Keep()
	assert.Equal(t, a, b)
	assert.True(t, a.Retained())
	assert.True(t, a.CleansBeforeUse())
	assert.True(t, a.SeedsGitignore())
}

func TestOpenCopiesConfig(t *testing.T) {
	cfg := New(filepath.Join(t.TempDir(), "d"))
	d := cfg.Open()
	cfg = cfg.Keep()

	assert.True(t, cfg.Retained())
	assert.False(t, d.IsPersistent(), "handle must not see later config changes")
	assert.Equal(t, Unrealized, d.State())
}

func TestNewTemp(t *testing.T) {
	a := NewTemp("workdir-test-")
	b := NewTemp("workdir-test-")

	require.NotEqual(t, a.Path(), b.Path())
	assert.Equal(t, filepath.Clean(os.TempDir()), filepath.Dir(a.Path()))
	assert.True(t, strings.HasPrefix(filepath.Base(a.Path()), "workdir-test-"))
	assert.NoDirExists(t, a.Path())
}
