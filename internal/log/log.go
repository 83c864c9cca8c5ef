package log

import (
	"fmt"
	"io"
	"log/slog"
)

// Options select the level and handler of the process logger.
type Options struct {
	Debug   bool
	Verbose bool
	// Format is "text" (default) or "json".
	Format  string
}

// Setup builds the process logger writing to w and installs it with
// slog.SetDefault. Debug wins over Verbose; with neither only warnings and
// errors are emitted, which keeps cleanup failures visible.
func Setup(w io.Writer, opts Options) (*slog.Logger, error) {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelInfo
	}
	if opts.Debug {
		level = slog.LevelDebug
	}
	ho := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch opts.Format {
	case "", "text":
		h = slog.NewTextHandler(w, ho)
	case "json":
		h = slog.NewJSONHandler(w, ho)
	default:
		return nil, fmt.Errorf("unknown log format %q (want text|json)", opts.Format)
	}
	l := slog.New(h)
	slog.SetDefault(l)
	return l, nil
}
