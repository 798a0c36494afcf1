package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/vinser/issuewalk/internal/ambilite"
	"github.com/vinser/issuewalk/internal/geoip"
	"github.com/vinser/issuewalk/internal/move"
	"github.com/vinser/issuewalk/internal/render"
)

// NewMoveCommand creates the move command, the workflow entrypoint.
func NewMoveCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [identifier]",
		Short: "Apply one move to the stored position and regenerate the board",
		Long: `Apply one move to the stored position and regenerate the board.

The move identifier is the argument, or ISSUE_TITLE when none is given.
Only "move_up" changes the position; anything else re-renders it unchanged
unless --strict is set.

Example:
  ISSUE_TITLE=move_up issuewalk move --readme README.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mv := opts.IssueTitle
			if len(args) == 1 {
				mv = args[0]
			}
			proc := newProcessor(cmd.Context(), opts)
			pos, err := proc.Process(cmd.Context(), mv)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "walker at %s\n", pos)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.SVGFile, "svg", opts.SVGFile, "SVG file to regenerate")
	cmd.Flags().StringVar(&opts.ReadmeFile, "readme", opts.ReadmeFile, "README to refresh between issuewalk markers (empty to skip)")
	cmd.Flags().StringVar(&opts.Repo, "repo", opts.Repo, "owner/name used for issue links")
	cmd.Flags().BoolVar(&opts.Strict, "strict", opts.Strict, "fail on unrecognized moves instead of ignoring them")
	cmd.Flags().StringVar(&opts.Night, "night", opts.Night, "board lighting: never, always or real")

	return cmd
}

func newProcessor(ctx context.Context, opts *RootOptions) *move.Processor {
	renderers := move.Renderers{render.NewSVG(opts.SVGFile, sky(ctx, opts))}
	if opts.ReadmeEnabled() {
		renderers = append(renderers, opts.Readme())
	}
	return move.NewProcessor(opts.store(), renderers,
		move.WithLogger(opts.logger),
		move.WithStrict(opts.Strict),
	)
}

// sky returns the board lighting, resolved on first use so that moves
// rejected before rendering never trigger a location lookup.
func sky(ctx context.Context, opts *RootOptions) func(time.Time) float64 {
	var (
		once  sync.Once
		light func(time.Time) float64
	)
	return func(t time.Time) float64 {
		once.Do(func() { light = resolveSky(ctx, opts) })
		return light(t)
	}
}

// resolveSky picks the board lighting. A real night needs a location: the
// configured one, or the runner's according to geoip. Without either the
// board stays in daylight.
func resolveSky(ctx context.Context, opts *RootOptions) func(time.Time) float64 {
	observer := opts.Observer()
	if opts.Night != ambilite.NightReal || observer.Known() {
		return ambilite.Sky(opts.Night, observer)
	}
	client := geoip.NewClient()
	client.URL = opts.GeoIPURL
	loc, err := client.Locate(ctx)
	if err != nil {
		opts.logger.Warn().Err(err).Msg("location unknown, using daylight")
		return ambilite.Sky(ambilite.NightNever, observer)
	}
	opts.logger.Debug().Str("city", loc.City).Str("timezone", loc.Timezone).Msg("location resolved")
	return ambilite.Sky(ambilite.NightReal, loc.Observer())
}
