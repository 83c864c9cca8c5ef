package lock

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestFileLock(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "work")

	l1, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := l1.Acquire(context.Background(), 0); err != nil {
		t.Fatalf("first lock failed: %v", err)
	}
	defer func() { _ = l1.Release() }()

	l2, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if l1.Path() != l2.Path() {
		t.Fatalf("same dir must map to same lock file: %s vs %s", l1.Path(), l2.Path())
	}
	err = l2.Acquire(context.Background(), 0)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}

func TestFileLockWaitTimesOut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "work")
	l1, _ := New(dir)
	if err := l1.Acquire(context.Background(), 0); err != nil {
		t.Fatalf("first lock failed: %v", err)
	}
	defer func() { _ = l1.Release() }()

	l2, _ := New(dir)
	start := time.Now()
	err := l2.Acquire(context.Background(), 300*time.Millisecond)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if time.Since(start) < 250*time.Millisecond {
		t.Fatalf("returned before wait elapsed")
	}
}

func TestFileLockReleaseAllowsNext(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "work")
	l1, _ := New(dir)
	if err := l1.Acquire(context.Background(), 0); err != nil {
		t.Fatalf("lock: %v", err)
	}
	if err := l1.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	l2, _ := New(dir)
	if err := l2.Acquire(context.Background(), 0); err != nil {
		t.Fatalf("relock: %v", err)
	}
	_ = l2.Release()
}

func TestDifferentDirsDoNotConflict(t *testing.T) {
	tmp := t.TempDir()
	a, _ := New(filepath.Join(tmp, "a"))
	b, _ := New(filepath.Join(tmp, "b"))
	if err := a.Acquire(context.Background(), 0); err != nil {
		t.Fatalf("a: %v", err)
	}
	defer func() { _ = a.Release() }()
	if err := b.Acquire(context.Background(), 0); err != nil {
		t.Fatalf("b: %v", err)
	}
	_ = b.Release()
}
