package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vinser/issuewalk/internal/render"
)

// NewShowCommand creates the show command.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the board for the stored position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := opts.store().Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Board(pos, render.DefaultCols, render.DefaultRows))
			return nil
		},
	}
}
