package engine

import (
	"fmt"
	"reflect"
)

type App struct {
	world *World
	run   RunWorld
}

func (a *App) World() *World {
	if a.world == nil {
		a.world = NewWorld()

		configureSchedules(a)
	}

	return a.world
}

func (a *App) AddPlugin(plugin Plugin) {
	plugin.ApplyTo(a)
}

func (a *App) AddSystems(scheduleId ScheduleId, system AnySystem, systems ...AnySystem) {
	if !reflect.ValueOf(scheduleId).Comparable() {
		panic(fmt.Sprintf("scheduleId must be comparable: %s", scheduleId))
	}

	a.World().AddSystems(scheduleId, system, systems...)
}

func (a *App) InsertResource(res any) {
	a.World().InsertResource(res)
}

func (a *App) InitState(newState NewState) {
	newState.configureStateIn(a)
}

func (a *App) AddMessage(newMessage AddMessageType) {
	newMessage.configureMessageIn(a)
}

func (a *App) RunWorld(run RunWorld) {
	a.run = run
}

// Update runs exactly one frame of the Main schedule.
func (a *App) Update() {
	a.World().RunSchedule(Main)
}

// Run runs the app until an AppExit message was processed.
// It returns an *ExitError if the app exited with a non zero code.
func (a *App) Run() error {
	if a.run == nil {
		a.run = func(world *World) error {
			status := MustResourceOf[AppExitStatus](world)

			for !status.Requested {
				world.RunSchedule(Main)
			}

			return status.Err()
		}
	}

	return a.run(a.World())
}

type Plugin interface {
	ApplyTo(app *App)
}

type PluginFunc func(app *App)

func (plugin PluginFunc) ApplyTo(app *App) {
	plugin(app)
}

type RunWorld func(world *World) error

type NewState interface {
	configureStateIn(app *App)
}
