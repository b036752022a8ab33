package enginebiten

import (
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"path"
	"sync"
	"time"

	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juan-medina/dice-master/engine/progress"
	"github.com/juan-medina/dice-master/internal/game"
)

// Assets loads images and sounds in the background. Each asset is tracked
// as a task of the progress.Counter under its path.
type Assets struct {
	fs fs.FS

	mu     sync.Mutex
	images map[string]*ebiten.Image
	sounds map[string][]byte
}

func newAssets(fsys fs.FS) *Assets {
	return &Assets{
		fs:     fsys,
		images: map[string]*ebiten.Image{},
		sounds: map[string][]byte{},
	}
}

// Image returns the image if it finished loading.
func (a *Assets) Image(name string) (*ebiten.Image, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	img, ok := a.images[path.Clean(name)]
	return img, ok
}

// Sound returns the encoded bytes of a sound if it finished loading.
func (a *Assets) Sound(name string) ([]byte, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	buf, ok := a.sounds[path.Clean(name)]
	return buf, ok
}

func (a *Assets) loadImage(name string) error {
	fp, err := a.fs.Open(name)
	if err != nil {
		return fmt.Errorf("open image %q: %w", name, err)
	}

	defer func() { _ = fp.Close() }()

	img, _, err := image.Decode(fp)
	if err != nil {
		return fmt.Errorf("decode image %q: %w", name, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.images[path.Clean(name)] = ebiten.NewImageFromImage(img)
	return nil
}

func (a *Assets) loadSound(name string) error {
	buf, err := fs.ReadFile(a.fs, name)
	if err != nil {
		return fmt.Errorf("read sound %q: %w", name, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.sounds[path.Clean(name)] = buf
	return nil
}

// startLoading registers all assets as pending tasks and loads them in
// background goroutines, reporting to inbox when done.
func (a *Assets) startLoading(counter *progress.Counter, inbox *progress.Inbox, images, sounds []string) {
	start := func(name string, load func(string) error) {
		counter.Report(name, false)

		go func() {
			startTime := time.Now()

			// a missing asset is not fatal, it is simply not drawn or played
			if err := load(name); err != nil {
				slog.Warn("Failed to load asset",
					slog.String("path", name),
					slog.String("err", err.Error()))
			} else {
				slog.Debug("Finish loading asset",
					slog.String("path", name),
					slog.Duration("duration", time.Since(startTime)))
			}

			inbox.Send(name, true)
		}()
	}

	for _, name := range images {
		start(name, a.loadImage)
	}

	for _, name := range sounds {
		start(name, a.loadSound)
	}
}

func startLoadingAssetsSystem(assets *Assets, counter *progress.Counter, inbox *progress.Inbox) {
	assets.startLoading(counter, inbox, game.Images, game.SoundFiles)
}
