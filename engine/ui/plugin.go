package ui

import (
	"github.com/juan-medina/dice-master/engine"
)

// Plugin inserts the node tree and the input resources. Adding it more than once has no effect.
func Plugin(app *engine.App) {
	if _, exists := engine.ResourceOf[Nodes](app.World()); exists {
		return
	}

	app.InsertResource(&Nodes{})
	app.InsertResource(&Pointer{})
	app.InsertResource(&Keys{})

	app.AddMessage(engine.MessageType[Clicked]())

	app.AddSystems(engine.PreUpdate, interactionSystem)
}
