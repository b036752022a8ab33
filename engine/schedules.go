package engine

var (
	// Main is the main schedule that executes all other schedules in the correct order.
	Main = MakeScheduleId("Main")

	PreStartup      = MakeScheduleId("PreStartup")
	Startup         = MakeScheduleId("Startup")
	PostStartup     = MakeScheduleId("PostStartup")
	First           = MakeScheduleId("First")
	PreUpdate       = MakeScheduleId("PreUpdate")
	Update          = MakeScheduleId("Update")
	StateTransition = MakeScheduleId("StateTransition")
	PostUpdate      = MakeScheduleId("PostUpdate")
	PreRender       = MakeScheduleId("PreRender")
	Render          = MakeScheduleId("Render")
	PostRender      = MakeScheduleId("PostRender")
	Last            = MakeScheduleId("Last")
)

func configureSchedules(app *App) {
	app.InsertResource(VirtualTime{
		Scale: 1.0,
	})

	app.InsertResource(TimeUpdateStrategy{})
	app.InsertResource(AppExitStatus{})

	app.AddSystems(Main, updateVirtualTime, runMainSchedule)

	// buffers rotate before exit requests are read. Readers see the previous
	// buffer, so a request of this frame is still handled in this frame.
	app.AddMessage(MessageType[AppExit]())
	app.AddSystems(Last, readAppExitSystem)
}

func runMainSchedule(world *World, initialized *Local[bool]) {
	if !initialized.Value {
		initialized.Value = true

		// initialize once
		world.RunSchedule(PreStartup)
		world.RunSchedule(StateTransition)
		world.RunSchedule(Startup)
		world.RunSchedule(PostStartup)
	}

	// start the new frame
	world.RunSchedule(First)

	// the update schedule. Transitions requested by Update are
	// applied before the frame ends.
	world.RunSchedule(PreUpdate)
	world.RunSchedule(Update)
	world.RunSchedule(StateTransition)
	world.RunSchedule(PostUpdate)

	world.RunSchedule(PreRender)
	world.RunSchedule(Render)
	world.RunSchedule(PostRender)

	// end the frame
	world.RunSchedule(Last)
}
