package scenes

import (
	"time"

	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/color"
	"github.com/juan-medina/dice-master/engine/gm"
	"github.com/juan-medina/dice-master/engine/ui"
	"github.com/juan-medina/dice-master/internal/effects"
	"github.com/juan-medina/dice-master/internal/game"
)

const (
	fadeInDuration  = 2 * time.Second
	pauseDuration   = 2 * time.Second
	fadeOutDuration = 1 * time.Second

	// extra time on a black screen before moving on
	splashGrace = 1 * time.Second
)

var logoSize = gm.VecOf(512, 512)

func splashPlugin(app *engine.App) {
	app.AddSystems(engine.OnEnter(game.Splash), setupSplashSystem)
	app.AddSystems(engine.OnExit(game.Splash), ui.ClearScene(game.Splash))
}

func setupSplashSystem(
	nodes *ui.Nodes,
	animators *ui.Attachments[effects.Animator],
	sounds game.Sounds,
	scheduled *engine.ScheduledTransition[game.Screen],
) {
	logo := nodes.Spawn(ui.Node{
		Scope: game.Splash,
		Kind:  ui.KindImage,
		Rect:  gm.RectWithCenterAndSize(ui.DesignSize.Mul(0.5), logoSize),
		Color: color.White.WithAlpha(effects.Invisible),
		Image: game.ImageLogo,
	})

	fade := effects.FadeInOut(fadeInDuration, pauseDuration, fadeOutDuration)
	animators.Attach(logo, effects.Animator{Sequence: fade, Lens: effects.AlphaLens{}})

	sounds.Play(game.SoundAnnouncement)

	scheduled.Schedule(game.Loading, fade.TotalDuration()+splashGrace)
}
