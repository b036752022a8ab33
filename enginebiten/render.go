package enginebiten

import (
	"bytes"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/color"
	"github.com/juan-medina/dice-master/engine/ui"
	"golang.org/x/image/font/gofont/goregular"
)

var defaultFontSource = sync.OnceValue(func() *text.GoTextFaceSource {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	return source
})

var clearColor = color.Black

type renderCache struct {
	path  vector.Path
	faces map[float64]*text.GoTextFace
}

func (c *renderCache) faceOf(size float64) *text.GoTextFace {
	if c.faces == nil {
		c.faces = map[float64]*text.GoTextFace{}
	}

	face, ok := c.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: defaultFontSource(), Size: size}
		c.faces[size] = face
	}

	return face
}

func renderSystem(
	target screenRenderTarget,
	nodes *ui.Nodes,
	assets *Assets,
	cache *engine.Local[renderCache],
	missing *engine.Local[map[string]bool],
) {
	screen := target.Image
	if screen == nil {
		return
	}

	screen.Fill(clearColor)

	c := &cache.Value

	for node := range nodes.Items() {
		switch node.Kind {
		case ui.KindPanel, ui.KindButton:
			fillRect(screen, &c.path, node)

		case ui.KindImage:
			img, ok := assets.Image(node.Image)
			if !ok {
				if missing.Value == nil {
					missing.Value = map[string]bool{}
				}

				if !missing.Value[node.Image] {
					missing.Value[node.Image] = true
					slog.Debug("Image not available yet", slog.String("path", node.Image))
				}

				continue
			}

			drawImage(screen, img, node)
		}

		if node.Text != "" {
			drawText(screen, c.faceOf(node.TextSize), node)
		}
	}
}

func fillRect(screen *ebiten.Image, path *vector.Path, node *ui.Node) {
	if node.Color.A <= 0 {
		return
	}

	rect := node.Rect

	path.Reset()
	path.MoveTo(float32(rect.Min.X), float32(rect.Min.Y))
	path.LineTo(float32(rect.Max.X), float32(rect.Min.Y))
	path.LineTo(float32(rect.Max.X), float32(rect.Max.Y))
	path.LineTo(float32(rect.Min.X), float32(rect.Max.Y))
	path.Close()

	vector.FillPath(screen, path, node.Color, true, vector.FillRuleNonZero)
}

func drawImage(screen *ebiten.Image, img *ebiten.Image, node *ui.Node) {
	imageSize := img.Bounds().Size()
	if imageSize.X == 0 || imageSize.Y == 0 {
		return
	}

	size := node.Rect.Size()
	center := node.Rect.Center()

	var op ebiten.DrawImageOptions

	// rotate around the center of the image, then scale to the nodes size
	op.GeoM.Translate(-float64(imageSize.X)/2, -float64(imageSize.Y)/2)
	op.GeoM.Scale(size.X/float64(imageSize.X), size.Y/float64(imageSize.Y))
	op.GeoM.Rotate(node.Rotation.Radians())
	op.GeoM.Translate(center.X, center.Y)

	op.ColorScale.Scale(node.Color.PremultipliedValues())
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(img, &op)
}

func drawText(screen *ebiten.Image, face *text.GoTextFace, node *ui.Node) {
	if node.TextColor.A <= 0 {
		return
	}

	center := node.Rect.Center()

	var op text.DrawOptions
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.Scale(node.TextColor.PremultipliedValues())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter

	text.Draw(screen, node.Text, face, &op)
}
