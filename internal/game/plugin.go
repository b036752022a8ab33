// Package game wires the screens, the persisted configuration and the global
// key bindings of dice master.
package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/kv"
	"github.com/juan-medina/dice-master/engine/ui"
)

const storeTimeout = 2 * time.Second

// ChangeDisplayMode requests to switch the window into the given mode.
type ChangeDisplayMode struct {
	Mode DisplayMode
}

type Options struct {
	// Store persists the Config. Defaults to an in memory store.
	Store kv.Store
}

func Plugin(options Options) engine.Plugin {
	return engine.PluginFunc(func(app *engine.App) {
		app.AddPlugin(engine.PluginFunc(ui.Plugin))

		store := options.Store
		if store == nil {
			store = kv.NewMemory()
		}

		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		config := LoadConfig(ctx, store)
		cancel()

		app.InsertResource(&config)
		app.InsertResource(ConfigStore{Store: store})

		insertIfMissing(app, Sounds{})
		insertIfMissing(app, Window{})

		app.InitState(engine.StateType[Screen]{
			InitialValue: Splash,
			Values:       Screens,
		})

		app.InitState(engine.SubStateType[Screen, Submenu]{
			Parent:       Menu,
			InitialValue: SubmenuMain,
			Inactive:     SubmenuNone,
			Values:       Submenus,
		})

		app.AddMessage(engine.MessageType[ChangeDisplayMode]())

		app.AddSystems(engine.Startup, applyDisplayModeSystem)

		app.AddSystems(engine.Update,
			engine.System(toggleDisplayModeSystem).RunIf(ui.KeyJustPressed(ui.KeyEnter)),
			engine.System(exitOnEscapeSystem).RunIf(ui.KeyJustPressed(ui.KeyEscape)),
		)

		app.AddSystems(engine.PostUpdate, changeDisplayModeSystem)
		app.AddSystems(engine.Last, saveOnExitSystem)
	})
}

func insertIfMissing[T any](app *engine.App, value T) {
	if _, exists := engine.ResourceOf[T](app.World()); !exists {
		app.InsertResource(&value)
	}
}

func applyDisplayModeSystem(config Config, window Window) {
	window.Apply(config.Mode)
}

func toggleDisplayModeSystem(keys ui.Keys, config Config, changes *engine.MessageWriter[ChangeDisplayMode]) {
	if keys.IsAltPressed() {
		changes.Write(ChangeDisplayMode{Mode: config.Mode.Toggle()})
	}
}

func exitOnEscapeSystem(exit *engine.MessageWriter[engine.AppExit]) {
	exit.Write(engine.AppExit{Code: 0})
}

func changeDisplayModeSystem(
	changes *engine.MessageReader[ChangeDisplayMode],
	config *Config,
	window Window,
	store ConfigStore,
) {
	for _, change := range changes.Read() {
		if change.Mode == config.Mode {
			continue
		}

		slog.Info("Change display mode", slog.Any("mode", change.Mode))

		config.Mode = change.Mode
		window.Apply(change.Mode)

		if err := saveWithTimeout(store, *config); err != nil {
			slog.Warn("Failed to save config", slog.String("err", err.Error()))
		}
	}
}

func saveOnExitSystem(exits *engine.MessageReader[engine.AppExit], config Config, store ConfigStore) {
	if len(exits.Read()) == 0 {
		return
	}

	if err := saveWithTimeout(store, config); err != nil {
		slog.Error("Failed to save config on exit", slog.String("err", err.Error()))
		return
	}

	slog.Debug("Config saved on exit", slog.Any("mode", config.Mode))
}

func saveWithTimeout(store ConfigStore, config Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	return SaveConfig(ctx, store.Store, config)
}
