package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/kv"
	"github.com/juan-medina/dice-master/enginebiten"
	"github.com/juan-medina/dice-master/internal/game"
	"github.com/juan-medina/dice-master/internal/logging"
	"github.com/juan-medina/dice-master/internal/scenes"
	"github.com/juan-medina/dice-master/internal/settings"
	"github.com/pkg/profile"
)

func main() {
	os.Exit(run())
}

func run() int {
	config, err := settings.Parse(os.Args[1:], nil, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	if err != nil {
		slog.Error("Invalid settings", slog.String("err", err.Error()))
		return 2
	}

	logFile := logging.Setup(config.LogLevel, config.LogFile)
	defer func() { _ = logFile.Close() }()

	switch config.Profile {
	case settings.ProfileCPU:
		defer profile.Start(profile.CPUProfile).Stop()
	case settings.ProfileMem:
		defer profile.Start(profile.MemProfile).Stop()
	}

	store := openStore(config.StorePath)
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close config store", slog.String("err", err.Error()))
		}
	}()

	var app engine.App

	app.AddPlugin(game.Plugin(game.Options{Store: store}))
	app.AddPlugin(scenes.Plugin(scenes.Options{FakeLoadDuration: config.FakeLoad}))
	app.AddPlugin(enginebiten.GamePlugin(enginebiten.Options{
		Assets: os.DirFS(config.Assets),
	}))

	err = app.Run()

	var exitErr *engine.ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code

	case err != nil:
		slog.Error("Game failed", slog.String("err", err.Error()))
		return 1
	}

	return 0
}

func openStore(path string) kv.Store {
	var store kv.Store
	var err error

	if path != "" {
		store, err = kv.OpenSQLite(path)
	} else {
		store, err = kv.OpenScoped(game.Organization, game.Application)
	}

	if err != nil {
		slog.Warn("Config store not available, settings will not be persisted",
			slog.String("err", err.Error()))

		return kv.NewMemory()
	}

	return store
}
