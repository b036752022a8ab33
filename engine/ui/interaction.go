package ui

import (
	"slices"

	"github.com/juan-medina/dice-master/engine"
)

// Clicked is written when the pointer was just pressed on a button.
type Clicked struct {
	Node   NodeId
	Action any
}

func interactionSystem(
	nodes *Nodes,
	pointer Pointer,
	clicked *engine.MessageWriter[Clicked],
	buttons *engine.Local[[]*Node],
) {
	buttons.Value = buttons.Value[:0]
	for node := range nodes.Items() {
		if node.Kind == KindButton {
			buttons.Value = append(buttons.Value, node)
		}
	}

	// top most node first
	slices.Reverse(buttons.Value)

	hit := false

	for _, button := range buttons.Value {
		if hit || !button.Rect.Contains(pointer.Position) {
			button.Interaction = InteractionNone
			continue
		}

		// only the top most button receives the pointer
		hit = true

		if !pointer.Pressed {
			button.Interaction = InteractionHovered
			continue
		}

		button.Interaction = InteractionPressed

		if pointer.JustPressed {
			clicked.Write(Clicked{Node: button.Id, Action: button.Action})
		}
	}

	clear(buttons.Value)
}
