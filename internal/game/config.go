package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/juan-medina/dice-master/engine/kv"
	"gopkg.in/yaml.v3"
)

const (
	Organization = "NewOlds"
	Application  = "dice_master"

	// ConfigKey is the key of the Config within the store.
	ConfigKey = "game_config"
)

type DisplayMode uint8

const (
	Windowed DisplayMode = iota
	FullScreen
)

func (m DisplayMode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case FullScreen:
		return "fullscreen"
	default:
		return fmt.Sprintf("DisplayMode(%d)", uint8(m))
	}
}

// Toggle returns the other display mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == FullScreen {
		return Windowed
	}

	return FullScreen
}

func (m DisplayMode) MarshalYAML() (any, error) {
	switch m {
	case Windowed, FullScreen:
		return m.String(), nil
	default:
		return nil, fmt.Errorf("unknown display mode %d", uint8(m))
	}
}

func (m *DisplayMode) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}

	switch value {
	case "windowed":
		*m = Windowed
	case "fullscreen":
		*m = FullScreen
	default:
		return fmt.Errorf("unknown display mode %q", value)
	}

	return nil
}

// Config is the persisted configuration of the game.
type Config struct {
	Mode DisplayMode `yaml:"display_mode"`
}

// ConfigStore is the resource holding the store the Config is persisted in.
type ConfigStore struct {
	Store kv.Store
}

// LoadConfig loads the config from the store. A missing or unreadable config
// is replaced with the default config.
func LoadConfig(ctx context.Context, store kv.Store) Config {
	var config Config

	err := store.Get(ctx, ConfigKey, &config)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		slog.Debug("No config stored, using defaults")
		return Config{}

	case err != nil:
		slog.Warn("Failed to load config, using defaults", slog.String("err", err.Error()))
		return Config{}
	}

	slog.Debug("Config loaded", slog.Any("mode", config.Mode))
	return config
}

func SaveConfig(ctx context.Context, store kv.Store, config Config) error {
	if err := store.Set(ctx, ConfigKey, config); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	return nil
}
