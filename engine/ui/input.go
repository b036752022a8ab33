package ui

import (
	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/gm"
)

// Pointer is the state of the mouse in design resolution coordinates.
type Pointer struct {
	Position gm.Vec

	Pressed     bool
	JustPressed bool
}

// Update sets the new pressed state and derives JustPressed from the previous one.
func (p *Pointer) Update(position gm.Vec, pressed bool) {
	p.JustPressed = pressed && !p.Pressed
	p.Pressed = pressed
	p.Position = position
}

type Key uint8

const (
	KeyEscape Key = iota
	KeyEnter
	KeyAltLeft
	KeyAltRight

	keyCount
)

func AllKeys() []Key {
	keys := make([]Key, 0, keyCount)
	for key := range keyCount {
		keys = append(keys, key)
	}

	return keys
}

// Keys is the keyboard state of the current frame.
type Keys struct {
	pressed     [keyCount]bool
	justPressed [keyCount]bool
}

// Update sets the state of a key for the current frame.
func (k *Keys) Update(key Key, pressed bool) {
	k.justPressed[key] = pressed && !k.pressed[key]
	k.pressed[key] = pressed
}

func (k Keys) IsPressed(key Key) bool {
	return k.pressed[key]
}

func (k Keys) IsJustPressed(key Key) bool {
	return k.justPressed[key]
}

// IsAltPressed is true if either alt key is pressed.
func (k Keys) IsAltPressed() bool {
	return k.pressed[KeyAltLeft] || k.pressed[KeyAltRight]
}

func KeyJustPressed(key Key) engine.Systems {
	return engine.System(func(keys Keys) bool {
		return keys.IsJustPressed(key)
	})
}
