// Package scenes contains the screens of dice master. Each screen spawns its
// nodes on enter and clears them on exit.
package scenes

import (
	"time"

	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/progress"
	"github.com/juan-medina/dice-master/internal/effects"
)

const defaultFakeLoadDuration = 5 * time.Second

type Options struct {
	// FakeLoadDuration is the time until the synthetic loading task reports done.
	// Defaults to five seconds.
	FakeLoadDuration time.Duration
}

type loadingSettings struct {
	fakeLoadDuration time.Duration
}

// Plugin adds all screens. The game plugin must be added first.
func Plugin(options Options) engine.Plugin {
	return engine.PluginFunc(func(app *engine.App) {
		if options.FakeLoadDuration <= 0 {
			options.FakeLoadDuration = defaultFakeLoadDuration
		}

		app.InsertResource(loadingSettings{fakeLoadDuration: options.FakeLoadDuration})

		app.AddPlugin(engine.PluginFunc(progress.Plugin))

		app.AddPlugin(engine.PluginFunc(effects.Plugin))

		app.AddPlugin(engine.PluginFunc(splashPlugin))
		app.AddPlugin(engine.PluginFunc(loadingPlugin))
		app.AddPlugin(engine.PluginFunc(menuPlugin))
		app.AddPlugin(engine.PluginFunc(helloPlugin))

		app.AddSystems(engine.PostUpdate, buttonColorsSystem)
	})
}
