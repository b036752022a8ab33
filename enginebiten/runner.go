package enginebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/ui"
)

type screenRenderTarget struct {
	Image *ebiten.Image
}

func runWorld(world *engine.World) error {
	theGame := &runner{World: world}
	world.InsertResource(theGame)

	win := engine.MustResourceOf[WindowConfig](world)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(win.MinWidth, win.MinHeight, -1, -1)

	var options ebiten.RunGameOptions
	options.SingleThread = true

	err := ebiten.RunGameWithOptions(theGame, &options)

	switch {
	case errors.Is(err, ebiten.Termination):
		return engine.MustResourceOf[engine.AppExitStatus](world).Err()

	case err != nil:
		return fmt.Errorf("run game: %w", err)
	}

	return nil
}

// runner implements ebiten.Game. One frame of the Main schedule runs per Draw.
type runner struct {
	World *engine.World

	// set to a non nil value to exit the app
	appExit error
}

func (g *runner) Update() error {
	return g.appExit
}

func (g *runner) Draw(screen *ebiten.Image) {
	g.World.InsertResource(screenRenderTarget{Image: screen})
	g.World.RunSchedule(engine.Main)
}

func (g *runner) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// nodes are placed in design resolution, ebiten scales to the window
	return int(ui.DesignSize.X), int(ui.DesignSize.Y)
}

func stopOnExitSystem(status engine.AppExitStatus, theGame *runner) {
	if status.Requested {
		theGame.appExit = ebiten.Termination
	}
}
