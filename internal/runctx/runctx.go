package runctx

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vbp1/workdir/internal/lock"
	"github.com/vbp1/workdir/pkg/workdir"
)

// Options tune a run.
type Options struct {
	// Lock takes an advisory lock on the directory path for the whole run.
	Lock bool
	// LockWait is how long to wait for a busy lock; 0 fails immediately.
	LockWait time.Duration
}

// RunCtx ties one working directory to one CLI invocation: it holds the
// optional path lock and ends the directory's scope on Close.
type RunCtx struct {
	Dir  *workdir.Dir
	lock *lock.FileLock
}

// New locks (if asked) and initializes cfg. On failure everything acquired
// so far is released, including the directory scope.
func New(ctx context.Context, cfg workdir.Config, opts Options) (*RunCtx, error) {
	rc := &RunCtx{}
	if opts.Lock {
		l, err := lock.New(cfg.Path())
		if err != nil {
			return nil, err
		}
		if err := l.Acquire(ctx, opts.LockWait); err != nil {
			return nil, err
		}
		rc.lock = l
	}
	rc.Dir = cfg.Open()
	if err := rc.Dir.Initialize(); err != nil {
		rc.Close()
		return nil, err
	}
	return rc, nil
}

// Close ends the directory scope, then releases the lock. Safe to call
// multiple times.
func (r *RunCtx) Close() {
	if r.Dir != nil {
		r.Dir.Close()
	}
	if r.lock != nil {
		if err := r.lock.Release(); err != nil {
			slog.Warn("release workdir lock", "lock", r.lock.Path(), "err", err)
		}
		r.lock = nil
	}
}

// Path joins the run directory with elem.
func (r *RunCtx) Path(elem ...string) string { return r.Dir.Join(elem...) }

func (r *RunCtx) String() string { return fmt.Sprintf("RunCtx(%s)", r.Dir.Path()) }
