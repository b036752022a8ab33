package scenes

import (
	"testing"
	"time"

	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/kv"
	"github.com/juan-medina/dice-master/engine/progress"
	"github.com/juan-medina/dice-master/engine/ui"
	"github.com/juan-medina/dice-master/internal/effects"
	"github.com/juan-medina/dice-master/internal/game"
	"github.com/stretchr/testify/require"
)

const frameDelta = 100 * time.Millisecond

type recordingSounds struct {
	played []string
}

func (s *recordingSounds) Play(name string) {
	s.played = append(s.played, name)
}

type testGame struct {
	t      *testing.T
	app    *engine.App
	sounds *recordingSounds
	store  *kv.Memory
}

func newTestGame(t *testing.T) *testGame {
	t.Helper()

	var app engine.App
	app.InsertResource(engine.TimeUpdateStrategy{ManualDelta: frameDelta})

	sounds := &recordingSounds{}
	app.InsertResource(game.Sounds{Player: sounds})

	store := kv.NewMemory()
	app.AddPlugin(game.Plugin(game.Options{Store: store}))
	app.AddPlugin(Plugin(Options{}))

	return &testGame{t: t, app: &app, sounds: sounds, store: store}
}

func (g *testGame) screen() game.Screen {
	return engine.MustResourceOf[engine.State[game.Screen]](g.app.World()).Current()
}

func (g *testGame) submenu() game.Submenu {
	return engine.MustResourceOf[engine.State[game.Submenu]](g.app.World()).Current()
}

func (g *testGame) nodes() *ui.Nodes {
	return engine.MustResourceOf[ui.Nodes](g.app.World())
}

func (g *testGame) elapsed() time.Duration {
	return engine.MustResourceOf[engine.VirtualTime](g.app.World()).Elapsed
}

func (g *testGame) frames(count int) {
	for range count {
		g.app.Update()
	}
}

func (g *testGame) node(text string) *ui.Node {
	g.t.Helper()

	node, ok := g.nodes().Find(func(node *ui.Node) bool { return node.Text == text })
	require.True(g.t, ok, "no node with text %q", text)
	return node
}

// click presses and releases the pointer on the node with the given text.
func (g *testGame) click(text string) {
	g.t.Helper()

	pointer := engine.MustResourceOf[ui.Pointer](g.app.World())
	center := g.node(text).Rect.Center()

	pointer.Update(center, true)
	g.app.Update()

	pointer.Update(center, false)
	g.app.Update()
}

// enterMenu skips the splash and loading screens.
func (g *testGame) enterMenu() {
	g.app.Update()

	engine.MustResourceOf[engine.NextState[game.Screen]](g.app.World()).Set(game.Menu)
	g.app.Update()

	require.Equal(g.t, game.Menu, g.screen())
}

func TestSplashMovesOnAfterSixSecondsThroughLoading(t *testing.T) {
	g := newTestGame(t)

	g.app.Update()
	require.Equal(t, game.Splash, g.screen())
	require.Equal(t, []string{game.SoundAnnouncement}, g.sounds.played)

	logo := g.node("")
	require.Equal(t, game.ImageLogo, logo.Image)

	// the logo fades in
	g.frames(19)
	require.InDelta(t, 1.0, logo.Color.A, 1e-6)

	g.frames(40)
	require.Equal(t, game.Splash, g.screen())
	require.Equal(t, 6*time.Second, g.elapsed())

	// nothing is tracked before the loading screen is entered
	require.Zero(t, engine.MustResourceOf[progress.Counter](g.app.World()).TotalCount())

	// six seconds after the splash was entered
	g.app.Update()
	require.Equal(t, game.Loading, g.screen())
	require.Equal(t, game.SubmenuNone, g.submenu())
	require.Equal(t, game.ImageSpinner, g.node("").Image)

	_, scheduled := engine.MustResourceOf[engine.ScheduledTransition[game.Screen]](g.app.World()).Pending()
	require.False(t, scheduled)

	// the fake task is past its duration and reports done on the first update
	counter := engine.MustResourceOf[progress.Counter](g.app.World())
	require.False(t, counter.IsComplete())

	g.app.Update()
	require.Equal(t, game.Loading, g.screen())
	require.True(t, counter.IsComplete())

	g.app.Update()
	require.Equal(t, game.Menu, g.screen())
	require.Equal(t, game.SubmenuMain, g.submenu())

	// splash and loading nodes are gone
	for node := range g.nodes().Items() {
		require.NotEqual(t, game.Splash, node.Scope)
		require.NotEqual(t, game.Loading, node.Scope)
	}

	g.node("Menu!")
	g.node("Play")
}

func TestLoadingCompletesAfterFakeTask(t *testing.T) {
	g := newTestGame(t)
	g.app.Update()

	engine.MustResourceOf[engine.NextState[game.Screen]](g.app.World()).Set(game.Loading)
	g.app.Update()
	require.Equal(t, game.Loading, g.screen())

	counter := engine.MustResourceOf[progress.Counter](g.app.World())
	for g.elapsed() < 5*time.Second-frameDelta {
		g.app.Update()
		require.False(t, counter.IsComplete())
		require.Equal(t, game.Loading, g.screen())
	}

	// the task reports done at exactly five seconds
	g.app.Update()
	require.Equal(t, 5*time.Second, g.elapsed())
	require.True(t, counter.IsComplete())
	require.Equal(t, game.Loading, g.screen())

	g.app.Update()
	require.Equal(t, game.Menu, g.screen())
	require.Equal(t, game.SubmenuMain, g.submenu())
}

func TestLoadingSpinnerRotates(t *testing.T) {
	g := newTestGame(t)
	g.app.Update()

	engine.MustResourceOf[engine.NextState[game.Screen]](g.app.World()).Set(game.Loading)
	g.app.Update()

	spinner, ok := g.nodes().Find(func(node *ui.Node) bool { return node.Image == game.ImageSpinner })
	require.True(t, ok)

	rotators := engine.MustResourceOf[ui.Attachments[effects.Rotate]](g.app.World())
	_, ok = rotators.Get(spinner.Id)
	require.True(t, ok)

	before := spinner.Rotation
	g.frames(5)

	// 200 degree per second for half a second
	require.InDelta(t, float64((before + 100).Normalized()), float64(spinner.Rotation), 1e-6)
}

func TestMenuOptionsSelectDisplayMode(t *testing.T) {
	g := newTestGame(t)
	g.enterMenu()

	g.click("Options")
	require.Equal(t, game.SubmenuOptions, g.submenu())

	windowed := g.node("Windowed")
	fullscreen := g.node("FullScreen")
	require.True(t, windowed.Selected)
	require.False(t, fullscreen.Selected)

	pointer := engine.MustResourceOf[ui.Pointer](g.app.World())
	pointer.Update(fullscreen.Rect.Center(), true)
	g.app.Update()

	require.True(t, fullscreen.Selected)
	require.False(t, windowed.Selected)
	require.Equal(t, clickedColor, fullscreen.Color)
	require.Equal(t, normalColor, windowed.Color)

	require.Equal(t, game.FullScreen, engine.MustResourceOf[game.Config](g.app.World()).Mode)

	pointer.Update(fullscreen.Rect.Center(), false)
	g.app.Update()

	// still selected, now hovered
	require.Equal(t, hoveredSelectedColor, fullscreen.Color)

	g.click("Back")
	require.Equal(t, game.SubmenuMain, g.submenu())
	g.node("Play")

	require.Equal(t, []string{
		game.SoundAnnouncement,
		game.SoundClick, game.SoundClick, game.SoundClick,
	}, g.sounds.played)
}

func TestMenuOptionsFollowAltEnter(t *testing.T) {
	g := newTestGame(t)
	g.enterMenu()
	g.click("Options")

	keys := engine.MustResourceOf[ui.Keys](g.app.World())
	keys.Update(ui.KeyAltLeft, true)
	keys.Update(ui.KeyEnter, true)
	g.app.Update()

	require.True(t, g.node("FullScreen").Selected)
	require.False(t, g.node("Windowed").Selected)
}

func TestPlayAndBackToMenu(t *testing.T) {
	g := newTestGame(t)
	g.enterMenu()

	g.click("Play")
	require.Equal(t, game.Hello, g.screen())
	require.Equal(t, game.SubmenuNone, g.submenu())
	g.node("Hello World!")

	for node := range g.nodes().Items() {
		require.Equal(t, game.Hello, node.Scope)
	}

	g.click("Menu")
	require.Equal(t, game.Menu, g.screen())
	require.Equal(t, game.SubmenuMain, g.submenu())
}

func TestQuitExitsAndSavesConfig(t *testing.T) {
	g := newTestGame(t)
	g.enterMenu()

	engine.MustResourceOf[game.Config](g.app.World()).Mode = game.FullScreen

	g.click("Quit")

	status := engine.MustResourceOf[engine.AppExitStatus](g.app.World())
	require.True(t, status.Requested)
	require.Equal(t, 0, status.Code)

	var stored game.Config
	require.NoError(t, g.store.Get(t.Context(), game.ConfigKey, &stored))
	require.Equal(t, game.FullScreen, stored.Mode)
}
