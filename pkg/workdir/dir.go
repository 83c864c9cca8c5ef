package workdir

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/vbp1/workdir/internal/util/fs"
)

// GitignoreName and GitignoreContent make up the ignore marker.
const (
	GitignoreName    = ".gitignore"
	GitignoreContent = "*\n"
)

// State is the position of a Dir in its lifecycle.
type State int

const (
	// Unrealized handles hold a configuration only.
	Unrealized State = iota
	// Initialized handles have had their policy applied to the filesystem.
	Initialized
	// Ended handles have been closed.
	Ended
)

func (s State) String() string {
	switch s {
	case Unrealized:
		return "unrealized"
	case Initialized:
		return "initialized"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Dir owns the decision of when its directory is removed.
type Dir struct {
	cfg       Config
	state     State
	// parents lists ancestors of the path that Initialize had to create,
	// deepest first. Close removes them again if they are empty.
	parents   []string
	closeOnce sync.Once
}

// Initialize applies the policy: clean (if set), create the directory with
// missing parents, then seed the ignore marker (if set). The first failure
// aborts; whatever was done before it is left in place. Calling Initialize
// again re-applies the same steps; until it succeeds State reports
// Unrealized.
func (d *Dir) Initialize() error {
	if d.state == Ended {
		return ErrClosed
	}
	d.state = Unrealized
	path := d.cfg.path
	if d.cfg.clean {
		existed, err := fs.RemoveTree(path)
		if err != nil {
			return &IOError{Op: "clean", Path: path, Err: err}
		}
		if existed {
			d.logger().Debug("workdir cleaned", "path", path)
		}
	}
	if missing := fs.MissingDirs(path); len(missing) > len(d.parents)+1 {
		d.parents = missing[1:]
	}
	if err := fs.MkdirP(path); err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	if d.cfg.gitignore {
		if err := d.WriteGitignore(); err != nil {
			return err
		}
	}
	d.state = Initialized
	d.logger().Debug("workdir initialized", "path", path, "keep", d.cfg.retain)
	return nil
}

// Close ends the handle's scope. Temporary directories are removed with all
// of their content, followed by the parents Initialize created as long as
// they are empty. Directories that existed before are never touched.
// Persistent directories are left alone. Only the first call has an effect.
// Removal failures are logged, never returned.
func (d *Dir) Close() {
	d.closeOnce.Do(func() {
		d.state = Ended
		path := d.cfg.path
		if d.cfg.retain {
			d.logger().Debug("workdir kept", "path", path)
			return
		}
		existed, err := fs.RemoveTree(path)
		if err != nil {
			d.logger().Warn("workdir cleanup failed", "path", path, "err", err)
			return
		}
		if existed {
			d.logger().Debug("workdir removed", "path", path)
		}
		for _, p := range d.parents {
			// a non-empty parent is shared with someone else; stop there
			if err := os.Remove(p); err != nil {
				break
			}
			d.logger().Debug("workdir parent removed", "path", p)
		}
	})
}

// Use opens cfg, initializes it and calls fn with the handle. The handle is
// closed when Use returns, including when Initialize or fn fails or fn panics.
func Use(cfg Config, fn func(d *Dir) error) error {
	d := cfg.Open()
	defer d.Close()
	if err := d.Initialize(); err != nil {
		return err
	}
	return fn(d)
}

// Config returns the configuration the handle was opened with.
func (d *Dir) Config() Config { return d.cfg }

// Path returns the directory path as configured.
func (d *Dir) Path() string { return d.cfg.path }

// State reports where the handle is in its lifecycle.
func (d *Dir) State() State { return d.state }

// IsPersistent reports whether the directory survives Close.
func (d *Dir) IsPersistent() bool { return d.cfg.retain }

// Join joins the directory path with elem.
func (d *Dir) Join(elem ...string) string {
	return filepath.Join(append([]string{d.cfg.path}, elem...)...)
}

// Exists reports whether anything is at the directory's path.
func (d *Dir) Exists() bool { return fs.Exists(d.cfg.path) }

// IsDir reports whether the path is an existing directory.
func (d *Dir) IsDir() bool {
	st, err := os.Stat(d.cfg.path)
	return err == nil && st.IsDir()
}

// IsFile reports whether the path is an existing regular file.
func (d *Dir) IsFile() bool {
	st, err := os.Stat(d.cfg.path)
	return err == nil && st.Mode().IsRegular()
}

func (d *Dir) String() string {
	return fmt.Sprintf("Dir(%s, %s, keep=%t)", d.cfg.path, d.state, d.cfg.retain)
}

func (d *Dir) logger() *slog.Logger {
	if d.cfg.logger != nil {
		return d.cfg.logger
	}
	return slog.Default()
}
