package scenes

import (
	"log/slog"

	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/color"
	"github.com/juan-medina/dice-master/engine/gm"
	"github.com/juan-medina/dice-master/engine/ui"
	"github.com/juan-medina/dice-master/internal/game"
)

const titleFontSize = 80

var (
	menuPanelSize = gm.VecOf(600, 700)
	menuTitleSize = gm.VecOf(500, 100)

	// first row of buttons below the title
	menuColumnTop = 430.0
	menuRowHeight = 85.0
)

func menuPlugin(app *engine.App) {
	app.AddSystems(engine.OnEnter(game.Menu), setupMenuSystem)
	app.AddSystems(engine.OnExit(game.Menu), ui.ClearScene(game.Menu))

	app.AddSystems(engine.OnEnter(game.SubmenuMain), setupMainMenuSystem)
	app.AddSystems(engine.OnExit(game.SubmenuMain), ui.ClearScene(game.SubmenuMain))

	app.AddSystems(engine.OnEnter(game.SubmenuOptions), setupOptionsMenuSystem)
	app.AddSystems(engine.OnExit(game.SubmenuOptions), ui.ClearScene(game.SubmenuOptions))

	app.AddSystems(engine.Update,
		engine.System(menuActionsSystem).RunIf(engine.InState(game.Menu)),
		engine.System(syncDisplayModeSelectionSystem).RunIf(engine.InState(game.SubmenuOptions)),
	)
}

func menuRow(row int) gm.Vec {
	return gm.VecOf(ui.DesignSize.X/2, menuColumnTop+float64(row)*menuRowHeight)
}

func setupMenuSystem(nodes *ui.Nodes) {
	center := ui.DesignSize.Mul(0.5)

	panel := nodes.Spawn(ui.Node{
		Scope: game.Menu,
		Kind:  ui.KindPanel,
		Rect:  gm.RectWithCenterAndSize(center, menuPanelSize),
		Color: color.Gray(0.5),
	})

	nodes.SpawnChild(panel, ui.Node{
		Kind:      ui.KindText,
		Rect:      gm.RectWithCenterAndSize(gm.VecOf(center.X, menuColumnTop-menuRowHeight-50), menuTitleSize),
		Text:      "Menu!",
		TextSize:  titleFontSize,
		TextColor: color.White,
	})
}

func setupMainMenuSystem(nodes *ui.Nodes) {
	nodes.Spawn(button(game.SubmenuMain, menuRow(0), "Play", ActionPlay))
	nodes.Spawn(button(game.SubmenuMain, menuRow(1), "Options", ActionOptions))
	nodes.Spawn(button(game.SubmenuMain, menuRow(2), "Quit", ActionQuit))
}

func setupOptionsMenuSystem(nodes *ui.Nodes, config game.Config) {
	nodes.Spawn(setting(game.SubmenuOptions, menuRow(0), "Windowed", ActionWindowed, config.Mode == game.Windowed))
	nodes.Spawn(setting(game.SubmenuOptions, menuRow(1), "FullScreen", ActionFullScreen, config.Mode == game.FullScreen))
	nodes.Spawn(button(game.SubmenuOptions, menuRow(3), "Back", ActionBack))
}

func menuActionsSystem(
	clicks *engine.MessageReader[ui.Clicked],
	nextScreen *engine.NextState[game.Screen],
	nextSubmenu *engine.NextState[game.Submenu],
	changes *engine.MessageWriter[game.ChangeDisplayMode],
	exit *engine.MessageWriter[engine.AppExit],
	sounds game.Sounds,
) {
	for _, action := range actionsOf(clicks.Read()) {
		slog.Debug("Menu action", slog.Any("action", action))

		switch action {
		case ActionPlay:
			nextScreen.Set(game.Hello)
			nextSubmenu.Set(game.SubmenuNone)

		case ActionOptions:
			nextSubmenu.Set(game.SubmenuOptions)

		case ActionBack:
			nextSubmenu.Set(game.SubmenuMain)

		case ActionQuit:
			exit.Write(engine.AppExit{Code: 0})

		case ActionWindowed:
			changes.Write(game.ChangeDisplayMode{Mode: game.Windowed})

		case ActionFullScreen:
			changes.Write(game.ChangeDisplayMode{Mode: game.FullScreen})

		default:
			// belongs to another screen
			continue
		}

		sounds.Play(game.SoundClick)
	}
}

func syncDisplayModeSelectionSystem(changes *engine.MessageReader[game.ChangeDisplayMode], nodes *ui.Nodes) {
	for _, change := range changes.Read() {
		for node := range nodes.Items() {
			switch node.Action {
			case ActionWindowed:
				node.Selected = change.Mode == game.Windowed

			case ActionFullScreen:
				node.Selected = change.Mode == game.FullScreen
			}
		}
	}
}
