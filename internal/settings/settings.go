// Package settings holds process level settings. Values are read from the
// environment first, command line flags override them.
package settings

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ProfileNone = ""
	ProfileCPU  = "cpu"
	ProfileMem  = "mem"
)

type Settings struct {
	LogLevel string `env:"DICE_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"DICE_LOG_FILE"`

	// StorePath overrides the location of the config store. If empty, the
	// store lives in the users config directory.
	StorePath string `env:"DICE_STORE_PATH"`

	Assets  string `env:"DICE_ASSETS" envDefault:"assets"`
	Profile string `env:"DICE_PROFILE"`

	FakeLoad time.Duration `env:"DICE_FAKE_LOAD" envDefault:"5s"`
}

// Parse reads settings from environ and applies flags from args.
// If environ is nil, the process environment is used.
func Parse(args []string, environ map[string]string, output io.Writer) (Settings, error) {
	var settings Settings

	options := env.Options{Environment: environ}
	if err := env.ParseWithOptions(&settings, options); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("dice-master", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&settings.LogFile, "log-file", settings.LogFile, "path of a rotating log file")
	fs.StringVar(&settings.StorePath, "store", settings.StorePath, "path of the config store")
	fs.StringVar(&settings.Assets, "assets", settings.Assets, "directory to load assets from")
	fs.StringVar(&settings.Profile, "profile", settings.Profile, "enable profiling: cpu or mem")
	fs.DurationVar(&settings.FakeLoad, "fake-load", settings.FakeLoad, "duration of the simulated loading task, 0 uses the default")

	if err := fs.Parse(args); err != nil {
		return Settings{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := settings.validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func (s Settings) validate() error {
	switch s.Profile {
	case ProfileNone, ProfileCPU, ProfileMem:
	default:
		return fmt.Errorf("unknown profile mode %q", s.Profile)
	}

	if s.FakeLoad < 0 {
		return fmt.Errorf("fake load duration must not be negative: %s", s.FakeLoad)
	}

	return nil
}
