package process

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"syscall"
	"time"
)

// Result describes a finished command.
type Result struct {
	Cmd      string
	Args     []string
	Dir      string
	ExitCode int
	Duration time.Duration
	Err      error
}

// Streams are attached to the child process. Nil fields are discarded.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// gracePeriod is how long a canceled child gets between SIGTERM and SIGKILL.
const gracePeriod = 5 * time.Second

// RunIn runs bin with args inside dir, logging start and end. When ctx is
// canceled the child receives SIGTERM and is killed after gracePeriod.
// A non-zero exit is reported through ExitCode, not Err.
func RunIn(ctx context.Context, dir string, s Streams, bin string, args ...string) Result {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	cmd.Cancel = func() error { return cmd.Process.Signal(syscall.SIGTERM) }
	cmd.WaitDelay = gracePeriod

	slog.Info("exec start", "cmd", bin, "args", args, "dir", dir)
	start := time.Now()

	err := cmd.Run()
	duration := time.Since(start)

	exitCode := 0
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		err = nil
	}

	slog.Info("exec done", "cmd", bin, "code", exitCode, "dur", duration, "err", err)

	return Result{
		Cmd:      bin,
		Args:     args,
		Dir:      dir,
		ExitCode: exitCode,
		Duration: duration,
		Err:      err,
	}
}
