package signalctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithSignals returns a context canceled on SIGINT or SIGTERM. The received
// signal, if any, is delivered on the returned channel. Call stop to release
// the signal handler once the guarded work is done.
func WithSignals(parent context.Context) (ctx context.Context, stop func(), sigCh <-chan os.Signal) {
	ctx, cancel := context.WithCancel(parent)
	in := make(chan os.Signal, 1)
	out := make(chan os.Signal, 1)
	signal.Notify(in, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ctx.Done():
		case s := <-in:
			out <- s
			cancel()
		}
	}()

	stop = func() {
		signal.Stop(in)
		cancel()
	}
	return ctx, stop, out
}
