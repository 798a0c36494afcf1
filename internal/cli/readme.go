package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vinser/issuewalk/internal/readme"
)

type ReadmeOptions struct {
	*RootOptions
	Preview bool
	Width   int
}

// NewReadmeCommand creates the readme command.
func NewReadmeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReadmeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "readme",
		Short: "Refresh the issuewalk section of the README",
		Long: `Refresh the issuewalk section of the README.

The section sits between these markers, which must already be present:

  ` + readme.StartMarker + `
  ` + readme.EndMarker,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := opts.store().Load()
			if err != nil {
				return err
			}
			if opts.Preview {
				section := readme.Section(opts.Repo, opts.SVGFile, pos)
				fmt.Fprint(cmd.OutOrStdout(), readme.Preview(section, opts.Width))
				return nil
			}
			if opts.ReadmeFile == "" {
				opts.ReadmeFile = readme.DefaultPath
			}
			if err := opts.Readme().Render(cmd.Context(), pos); err != nil {
				return err
			}
			opts.logger.Info().Str("path", opts.ReadmeFile).Msg("readme updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.ReadmeFile, "readme", opts.ReadmeFile, "README to update (default README.md)")
	cmd.Flags().StringVar(&opts.Repo, "repo", opts.Repo, "owner/name used for issue links")
	cmd.Flags().StringVar(&opts.SVGFile, "svg", opts.SVGFile, "SVG path referenced by the section")
	cmd.Flags().BoolVarP(&opts.Preview, "preview", "p", false, "print the section instead of writing it")
	cmd.Flags().IntVar(&opts.Width, "width", 80, "preview word wrap width")

	return cmd
}
