package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vbp1/workdir/internal/log"
	"github.com/vbp1/workdir/pkg/workdir"
)

// Config holds values of CLI flags.
type Config struct {
	Debug     bool
	Verbose   bool
	LogFormat string

	Keep      bool
	Clean     bool
	Gitignore bool

	Lock     bool
	LockWait time.Duration
}

// policy converts the policy flags of cfg into a workdir configuration.
func (c *Config) policy(path string) workdir.Config {
	wc := workdir.New(path)
	if c.Keep {
		wc = wc.Keep()
	}
	if c.Clean {
		wc = wc.Clean()
	}
	if c.Gitignore {
		wc = wc.WithGitignore()
	}
	return wc
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	cfg := &Config{}
	root := &cobra.Command{
		Use:           "workdir",
		Short:         "Create, seed and clean up working directories",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := log.Setup(cmd.ErrOrStderr(), log.Options{
				Debug:   cfg.Debug,
				Verbose: cfg.Verbose,
				Format:  cfg.LogFormat,
			})
			return err
		},
	}

	f := root.PersistentFlags()
	f.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	f.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	f.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text|json")

	root.AddCommand(newInitCmd(cfg), newExecCmd(cfg), newStatusCmd())
	return root
}

func addPolicyFlags(cmd *cobra.Command, cfg *Config, withKeep bool) {
	f := cmd.Flags()
	if withKeep {
		f.BoolVar(&cfg.Keep, "keep", false, "Leave the directory on disk when done")
	}
	f.BoolVar(&cfg.Clean, "clean", false, "Remove existing content before use")
	f.BoolVar(&cfg.Gitignore, "gitignore", false, "Seed a .gitignore that ignores everything")
}

// Execute parses flags and runs the root command.
func Execute() error { return NewRootCmd().Execute() }
