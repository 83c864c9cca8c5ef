package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init PATH",
		Short: "Create a persistent directory, optionally cleaned and git-ignored",
		Long: `Create PATH (and missing parents) and apply the requested policy.
The directory is always kept: a temporary one would be removed as soon as
the command exits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := cfg.policy(args[0]).Keep().Open()
			defer d.Close()
			if err := d.Initialize(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Path())
			return nil
		},
	}
	addPolicyFlags(cmd, cfg, false)
	return cmd
}
