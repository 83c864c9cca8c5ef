package workdir

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Config describes a directory and the policy applied to it.
// The zero policy is: temporary, not cleaned, no ignore marker.
type Config struct {
	path      string
	retain    bool
	clean     bool
	gitignore bool
	logger    *slog.Logger
}

// New returns the default configuration for path. The path is not checked.
func New(path string) Config {
	return Config{path: path}
}

// NewTemp returns a configuration for a fresh, not yet existing path under
// the system temp directory. The last path element starts with prefix.
func NewTemp(prefix string) Config {
	return New(filepath.Join(os.TempDir(), prefix+uuid.NewString()))
}

// Keep marks the directory persistent: it is left on disk when the scope ends.
func (c Config) Keep() Config {
	c.retain = true
	return c
}

// Clean makes Initialize remove any existing content at the path first.
func (c Config) Clean() Config {
	c.clean = true
	return c
}

// WithGitignore makes Initialize write a ".gitignore" that ignores everything.
func (c Config) WithGitignore() Config {
	c.gitignore = true
	return c
}

// WithLogger sets the logger used for lifecycle events and cleanup failures.
// A nil logger falls back to slog.Default.
func (c Config) WithLogger(l *slog.Logger) Config {
	c.logger = l
	return c
}

// Path returns the configured directory path.
func (c Config) Path() string { return c.path }

// Retained reports whether the directory is kept when the scope ends.
func (c Config) Retained() bool { return c.retain }

// CleansBeforeUse reports whether Initialize wipes existing content.
func (c Config) CleansBeforeUse() bool { return c.clean }

// SeedsGitignore reports whether Initialize writes the ignore marker.
func (c Config) SeedsGitignore() bool { return c.gitignore }

// Open returns an unrealized handle for c. The handle keeps its own copy of
// the configuration, so later changes to c do not affect it.
func (c Config) Open() *Dir {
	return &Dir{cfg: c}
}
