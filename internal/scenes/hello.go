package scenes

import (
	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/color"
	"github.com/juan-medina/dice-master/engine/gm"
	"github.com/juan-medina/dice-master/engine/ui"
	"github.com/juan-medina/dice-master/internal/game"
)

func helloPlugin(app *engine.App) {
	app.AddSystems(engine.OnEnter(game.Hello), setupHelloSystem)
	app.AddSystems(engine.OnExit(game.Hello), ui.ClearScene(game.Hello))

	app.AddSystems(engine.Update, engine.System(helloActionsSystem).RunIf(engine.InState(game.Hello)))
}

func setupHelloSystem(nodes *ui.Nodes) {
	center := ui.DesignSize.Mul(0.5)

	nodes.Spawn(ui.Node{
		Scope:     game.Hello,
		Kind:      ui.KindText,
		Rect:      gm.RectWithCenterAndSize(center, gm.VecOf(800, 120)),
		Text:      "Hello World!",
		TextSize:  titleFontSize,
		TextColor: color.White,
	})

	nodes.Spawn(button(game.Hello, center.Add(gm.VecOf(0, 150)), "Menu", ActionMenu))
}

func helloActionsSystem(
	clicks *engine.MessageReader[ui.Clicked],
	nextScreen *engine.NextState[game.Screen],
	sounds game.Sounds,
) {
	for _, action := range actionsOf(clicks.Read()) {
		if action == ActionMenu {
			nextScreen.Set(game.Menu)
			sounds.Play(game.SoundClick)
		}
	}
}
