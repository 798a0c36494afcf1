package cli

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/vinser/issuewalk/internal/state"
)

type InitOptions struct {
	*RootOptions
	X     int
	Y     int
	Force bool
}

// NewInitCommand creates the init command, which writes a fresh store.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the position store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.StateFile); err == nil && !opts.Force {
				return eris.Errorf("%s already exists, use --force to overwrite", opts.StateFile)
			}
			pos := state.Position{X: opts.X, Y: opts.Y}
			if err := opts.store().Init(pos); err != nil {
				return err
			}
			opts.logger.Info().Str("path", opts.StateFile).Int("x", pos.X).Int("y", pos.Y).Msg("store created")
			fmt.Fprintf(cmd.OutOrStdout(), "walker at %s\n", pos)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.X, "x", 0, "starting x")
	cmd.Flags().IntVar(&opts.Y, "y", 0, "starting y")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite an existing store")

	return cmd
}
