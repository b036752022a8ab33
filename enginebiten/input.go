package enginebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juan-medina/dice-master/engine/gm"
	"github.com/juan-medina/dice-master/engine/ui"
)

var ebitenKeys = map[ui.Key]ebiten.Key{
	ui.KeyEscape:   ebiten.KeyEscape,
	ui.KeyEnter:    ebiten.KeyEnter,
	ui.KeyAltLeft:  ebiten.KeyAltLeft,
	ui.KeyAltRight: ebiten.KeyAltRight,
}

func updateInputSystem(pointer *ui.Pointer, keys *ui.Keys) {
	x, y := ebiten.CursorPosition()
	pointer.Update(gm.VecOf(float64(x), float64(y)), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	for _, key := range ui.AllKeys() {
		keys.Update(key, ebiten.IsKeyPressed(ebitenKeys[key]))
	}
}
