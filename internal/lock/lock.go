package lock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("workdir is locked by another process")

const retryDelay = 100 * time.Millisecond

// FileLock is an advisory lock keyed on a working directory path. The lock
// file lives in the system temp dir, never inside the directory itself, so
// cleaning or removing the directory does not disturb it.
type FileLock struct {
	fl     *flock.Flock
	target string
}

// New returns an unlocked lock for dir.
func New(dir string) (*FileLock, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	sum := sha256.Sum256([]byte(abs))
	name := filepath.Join(os.TempDir(), fmt.Sprintf("workdir_%s.lock", hex.EncodeToString(sum[:8])))
	return &FileLock{fl: flock.New(name), target: abs}, nil
}

// Acquire takes the lock. With wait == 0 it fails fast with ErrLocked;
// otherwise it retries until the lock is free, wait elapses or ctx is done.
func (l *FileLock) Acquire(ctx context.Context, wait time.Duration) error {
	if wait <= 0 {
		ok, err := l.fl.TryLock()
		if err != nil {
			return fmt.Errorf("lock %s: %w", l.target, err)
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrLocked, l.target)
		}
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	ok, err := l.fl.TryLockContext(ctx, retryDelay)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s (waited %s)", ErrLocked, l.target, wait)
		}
		return fmt.Errorf("lock %s: %w", l.target, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, l.target)
	}
	return nil
}

// Release unlocks and removes the lock file. Removal is best-effort.
func (l *FileLock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return err
	}
	_ = os.Remove(l.fl.Path())
	return nil
}

// Path returns the lock file location.
func (l *FileLock) Path() string { return l.fl.Path() }
