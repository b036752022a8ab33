package scenes

import (
	"log/slog"

	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/color"
	"github.com/juan-medina/dice-master/engine/gm"
	"github.com/juan-medina/dice-master/engine/progress"
	"github.com/juan-medina/dice-master/engine/ui"
	"github.com/juan-medina/dice-master/internal/effects"
	"github.com/juan-medina/dice-master/internal/game"
)

const (
	FakeLongTask = "fake_long_task"

	spinnerSpeed = 200
)

var spinnerSize = gm.VecOf(128, 128)

func loadingPlugin(app *engine.App) {
	app.AddSystems(engine.OnEnter(game.Loading), setupLoadingSystem, trackFakeLongTaskSystem)
	app.AddSystems(engine.OnExit(game.Loading), ui.ClearScene(game.Loading))

	// progress is checked before the task reports, completion is seen on the next update
	app.AddSystems(engine.Update,
		engine.System(checkProgressSystem, fakeLongTaskSystem, printProgressSystem).
			RunIf(engine.InState(game.Loading)),
	)
}

func setupLoadingSystem(nodes *ui.Nodes, rotators *ui.Attachments[effects.Rotate]) {
	spinner := nodes.Spawn(ui.Node{
		Scope: game.Loading,
		Kind:  ui.KindImage,
		Rect:  gm.RectWithOriginAndSize(ui.DesignSize.Sub(spinnerSize), spinnerSize),
		Color: color.White,
		Image: game.ImageSpinner,
	})

	rotators.Attach(spinner, effects.Rotate{DegreesPerSecond: spinnerSpeed})
}

func checkProgressSystem(counter *progress.Counter, nextState *engine.NextState[game.Screen]) {
	if counter.IsComplete() {
		slog.Debug("Loading complete", slog.Any("progress", counter.Progress()))
		nextState.Set(game.Menu)
	}
}

func printProgressSystem(counter *progress.Counter, lastDone *engine.Local[int]) {
	current := counter.Progress()

	if current.Done > lastDone.Value {
		lastDone.Value = current.Done

		slog.Debug("Changed progress",
			slog.Int("done", current.Done),
			slog.Int("total", current.Total))
	}
}

func trackFakeLongTaskSystem(counter *progress.Counter) {
	counter.Report(FakeLongTask, false)
}

// fakeLongTaskSystem stands in for a real task, it is done once the game ran
// for the configured duration.
func fakeLongTaskSystem(vt engine.VirtualTime, settings loadingSettings, counter *progress.Counter) {
	counter.Report(FakeLongTask, vt.Elapsed >= settings.fakeLoadDuration)
}
