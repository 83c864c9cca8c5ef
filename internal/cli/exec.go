package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vbp1/workdir/internal/process"
	"github.com/vbp1/workdir/internal/runctx"
	"github.com/vbp1/workdir/internal/util/signalctx"
)

// ExitError carries the exit code of a command run by `workdir exec`.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("command exited with code %d", e.Code) }

func newExecCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec PATH -- COMMAND [ARGS...]",
		Short: "Run a command inside a scoped working directory",
		Long: `Apply the policy to PATH, run COMMAND with PATH as its working directory,
then end the directory's scope: unless --keep is given PATH is removed,
also when the command fails or workdir is interrupted.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, sigCh := signalctx.WithSignals(cmd.Context())
			defer stop()

			rc, err := runctx.New(ctx, cfg.policy(args[0]), runctx.Options{
				Lock:     cfg.Lock,
				LockWait: cfg.LockWait,
			})
			if err != nil {
				return err
			}
			defer rc.Close()

			res := process.RunIn(ctx, rc.Dir.Path(), process.Streams{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			}, args[1], args[2:]...)

			select {
			case s := <-sigCh:
				slog.Warn("interrupted", "signal", s.String(), "dir", rc.Dir.Path())
			default:
			}
			if res.Err != nil {
				return fmt.Errorf("run %s: %w", res.Cmd, res.Err)
			}
			if res.ExitCode != 0 {
				return &ExitError{Code: res.ExitCode}
			}
			return nil
		},
	}
	addPolicyFlags(cmd, cfg, true)
	f := cmd.Flags()
	f.BoolVar(&cfg.Lock, "lock", false, "Hold an advisory lock on PATH while the command runs")
	f.DurationVar(&cfg.LockWait, "lock-wait", 0, "How long to wait for a busy lock (0 = fail immediately)")
	return cmd
}
