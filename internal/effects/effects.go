// Package effects animates ui nodes: fades driven by a tween.Sequence and constant rotation.
package effects

import (
	"time"

	"github.com/juan-medina/dice-master/engine"
	"github.com/juan-medina/dice-master/engine/gm"
	"github.com/juan-medina/dice-master/engine/tween"
	"github.com/juan-medina/dice-master/engine/ui"
)

const (
	Invisible = 0.0
	Visible   = 1.0
)

// FadeInOut fades from invisible to visible, holds and fades out again.
func FadeInOut(in, pause, out time.Duration) *tween.Sequence {
	return tween.NewSequence(
		tween.Tween(tween.QuadraticIn, in, Invisible, Visible),
		tween.Pause(pause),
		tween.Tween(tween.QuadraticOut, out, Visible, Invisible),
	)
}

// Lens writes the current value of an animation into a node.
type Lens interface {
	Apply(node *ui.Node, value float64)
}

// AlphaLens sets the alpha of the nodes color and text color.
type AlphaLens struct{}

func (AlphaLens) Apply(node *ui.Node, value float64) {
	node.Color.A = float32(value)
	node.TextColor.A = float32(value)
}

// Animator drives a Lens on the node it is attached to.
type Animator struct {
	Sequence *tween.Sequence
	Lens     Lens

	applied bool
}

// Rotate spins the node it is attached to at a constant speed.
type Rotate struct {
	DegreesPerSecond float64
}

// Step returns the angle after rotating for delta seconds, wrapped to [0, 360).
func (r Rotate) Step(angle gm.Deg, deltaSecs float64) gm.Deg {
	return (angle + gm.Deg(r.DegreesPerSecond*deltaSecs)).Normalized()
}

func Plugin(app *engine.App) {
	app.AddPlugin(engine.PluginFunc(ui.Plugin))
	app.AddPlugin(ui.AttachmentsOf[Animator]())
	app.AddPlugin(ui.AttachmentsOf[Rotate]())

	app.AddSystems(engine.Update, animateSystem, rotateSystem)
}

func animateSystem(vt engine.VirtualTime, nodes *ui.Nodes, animators *ui.Attachments[Animator]) {
	for id, animator := range animators.Items() {
		node, ok := nodes.Get(id)
		if !ok {
			continue
		}

		wasFinished := animator.Sequence.Finished()

		value := animator.Sequence.Tick(vt.Delta)

		// a finished sequence is applied once more, so an empty one still sets its final value
		if animator.Lens != nil && (!wasFinished || !animator.applied) {
			animator.Lens.Apply(node, value)
			animator.applied = true
		}
	}
}

func rotateSystem(vt engine.VirtualTime, nodes *ui.Nodes, rotators *ui.Attachments[Rotate]) {
	for id, rotate := range rotators.Items() {
		if node, ok := nodes.Get(id); ok {
			node.Rotation = rotate.Step(node.Rotation, vt.DeltaSecs)
		}
	}
}
