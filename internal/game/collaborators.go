package game

const (
	ImageLogo    = "splash/newolds.png"
	ImageSpinner = "loading/load.png"

	SoundAnnouncement = "splash/newolds.ogg"
	SoundClick        = "menu/click.ogg"
)

// Images and SoundFiles list the assets a backend should load.
var (
	Images     = []string{ImageLogo, ImageSpinner}
	SoundFiles = []string{SoundAnnouncement, SoundClick}
)

type SoundPlayer interface {
	Play(name string)
}

// Sounds plays sounds through the backends SoundPlayer.
// Without a player, sounds are silently skipped.
type Sounds struct {
	Player SoundPlayer
}

func (s Sounds) Play(name string) {
	if s.Player != nil {
		s.Player.Play(name)
	}
}

type Display interface {
	SetFullscreen(fullscreen bool)
}

// Window applies display modes through the backends Display.
type Window struct {
	Display Display
}

func (w Window) Apply(mode DisplayMode) {
	if w.Display != nil {
		w.Display.SetFullscreen(mode == FullScreen)
	}
}
