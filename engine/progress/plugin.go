package progress

import (
	"github.com/juan-medina/dice-master/engine"
)

// Plugin inserts the Counter and an Inbox for reports from background work.
// Adding it more than once has no effect.
func Plugin(app *engine.App) {
	if _, exists := engine.ResourceOf[Counter](app.World()); exists {
		return
	}

	app.InsertResource(&Counter{})
	app.InsertResource(NewInbox(64))

	app.AddSystems(engine.First, drainInboxSystem)
}
