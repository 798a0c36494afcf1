// Package cli wires the issuewalk commands.
package cli

import (
	"io"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/vinser/issuewalk/internal/config"
	"github.com/vinser/issuewalk/internal/geoip"
	"github.com/vinser/issuewalk/internal/state"
)

// RootOptions holds settings shared by all commands.
type RootOptions struct {
	config.Config
	GeoIPURL string

	logger zerolog.Logger
}

// NewRootCommand creates the root command. Flag defaults come from the
// environment so a workflow can configure the tool either way.
func NewRootCommand(version string) *cobra.Command {
	cfg, cfgErr := config.Load()
	opts := &RootOptions{Config: cfg, GeoIPURL: geoip.DefaultURL}

	cmd := &cobra.Command{
		Use:           "issuewalk",
		Short:         "Walk a sprite around a README, one issue at a time",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			logger, err := newLogger(opts.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVarP(&opts.StateFile, "state", "s", opts.StateFile, "position store file")
	cmd.PersistentFlags().StringVar(&opts.GeoIPURL, "geoip-url", opts.GeoIPURL, "geoip API used when --night=real has no location")
	_ = cmd.PersistentFlags().MarkHidden("geoip-url")

	cmd.AddCommand(NewMoveCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewReadmeCommand(opts))
	cmd.AddCommand(NewPlayCommand(opts))

	return cmd
}

func (o *RootOptions) store() *state.File {
	return state.NewFile(o.StateFile)
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), eris.Wrapf(err, "invalid log level %q", level)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
