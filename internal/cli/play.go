package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vinser/issuewalk/internal/model/play"
)

// NewPlayCommand creates the play command, an interactive local session.
func NewPlayCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Move the walker from the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// log lines would tear the alt screen
			opts.logger = zerolog.Nop()
			proc := newProcessor(cmd.Context(), opts)
			model := play.New(cmd.Context(), proc, opts.store(), 40, 16)
			_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&opts.SVGFile, "svg", opts.SVGFile, "SVG file to regenerate")
	cmd.Flags().StringVar(&opts.ReadmeFile, "readme", opts.ReadmeFile, "README to refresh between issuewalk markers (empty to skip)")
	cmd.Flags().StringVar(&opts.Night, "night", opts.Night, "board lighting: never, always or real")

	return cmd
}
