// Package enginebiten runs an engine.App on top of ebiten. It feeds input into
// the ui resources, draws the ui.Nodes and provides audio and window control
// to the game.
package enginebiten

import (
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/progress"
	"github.com/juan-medina/dice-master/engine/ui"
	"github.com/juan-medina/dice-master/internal/game"
)

type WindowConfig struct {
	Title  string
	Width  int
	Height int

	// MinWidth and MinHeight limit resizing of the window.
	MinWidth  int
	MinHeight int
}

type Options struct {
	Window WindowConfig

	// Assets is the file system images and sounds are loaded from.
	// Defaults to the assets directory in the working directory.
	Assets fs.FS
}

func DefaultWindowConfig() WindowConfig {
	width, height := int(ui.DesignSize.X), int(ui.DesignSize.Y)

	return WindowConfig{
		Title:     "Dice Master!",
		Width:     width,
		Height:    height,
		MinWidth:  width / 2,
		MinHeight: height / 2,
	}
}

// GamePlugin configures the app to run with ebiten. It must be added after
// the game plugin, as it replaces the default sound player and window.
func GamePlugin(options Options) engine.Plugin {
	return engine.PluginFunc(func(app *engine.App) {
		app.AddPlugin(engine.PluginFunc(ui.Plugin))
		app.AddPlugin(engine.PluginFunc(progress.Plugin))

		if options.Window == (WindowConfig{}) {
			options.Window = DefaultWindowConfig()
		}

		assetFS := options.Assets
		if assetFS == nil {
			assetFS = os.DirFS("assets")
		}

		assets := newAssets(assetFS)

		app.InsertResource(options.Window)
		app.InsertResource(assets)
		app.InsertResource(screenRenderTarget{})

		app.InsertResource(game.Sounds{Player: newAudioPlayer(audioContext(), assets)})
		app.InsertResource(game.Window{Display: display{}})

		app.AddSystems(engine.PreStartup, startLoadingAssetsSystem)
		app.AddSystems(engine.First, updateInputSystem)
		app.AddSystems(engine.Render, renderSystem)
		app.AddSystems(engine.Last, stopOnExitSystem)

		app.RunWorld(runWorld)
	})
}

type display struct{}

func (display) SetFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
}
