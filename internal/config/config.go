// Package config loads run settings from the environment a GitHub Actions
// workflow provides. Command-line flags override these values.
package config

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/vinser/issuewalk/internal/ambilite"
	"github.com/vinser/issuewalk/internal/readme"
	"github.com/vinser/issuewalk/internal/render"
	"github.com/vinser/issuewalk/internal/state"
)

type Config struct {
	IssueTitle string  `config:"ISSUE_TITLE"`
	StateFile  string  `config:"WALK_STATE_FILE"`
	SVGFile    string  `config:"WALK_SVG_FILE"`
	ReadmeFile string  `config:"WALK_README_FILE"`
	Repo       string  `config:"GITHUB_REPOSITORY"`
	Strict     bool    `config:"WALK_STRICT"`
	Night      string  `config:"WALK_NIGHT"`
	Lat        float64 `config:"WALK_LAT"`
	Lon        float64 `config:"WALK_LON"`
	Timezone   string  `config:"WALK_TIMEZONE"`
	LogLevel   string  `config:"WALK_LOG_LEVEL"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		StateFile: state.DefaultPath,
		SVGFile:   render.DefaultPath,
		Night:     ambilite.NightDefault,
		LogLevel:  "info",
	}
}

// Load overlays environment variables onto Default. The result is not
// validated: flags may still override it, so callers run Validate last.
func Load() (Config, error) {
	cfg := Default()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "loading config from environment")
	}
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores defaults for variables set to an empty string.
func (c *Config) fillDefaults() {
	def := Default()
	if c.StateFile == "" {
		c.StateFile = def.StateFile
	}
	if c.SVGFile == "" {
		c.SVGFile = def.SVGFile
	}
	if c.Night == "" {
		c.Night = def.Night
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

func (c Config) Validate() error {
	switch c.Night {
	case ambilite.NightNever, ambilite.NightAlways, ambilite.NightReal:
	default:
		return eris.Errorf("invalid night option %q: use %s, %s or %s",
			c.Night, ambilite.NightNever, ambilite.NightAlways, ambilite.NightReal)
	}
	if c.StateFile == "" {
		return eris.New("state file path is empty")
	}
	return nil
}

// Observer returns the configured location. It is unknown when no timezone is set.
func (c Config) Observer() ambilite.Observer {
	return ambilite.Observer{Lat: c.Lat, Lon: c.Lon, Timezone: c.Timezone}
}

// ReadmeEnabled reports whether moves also refresh the README section.
func (c Config) ReadmeEnabled() bool {
	return c.ReadmeFile != ""
}

// Readme returns the README updater for this config.
func (c Config) Readme() *readme.Updater {
	return &readme.Updater{Path: c.ReadmeFile, Repo: c.Repo, SVGPath: c.SVGFile}
}
