package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAppRunUntilExit(t *testing.T) {
	var app App
	app.InsertResource(TimeUpdateStrategy{ManualDelta: 10 * time.Millisecond})

	frames := 0
	app.AddSystems(Update, func(exit *MessageWriter[AppExit]) {
		frames++
		if frames == 3 {
			exit.Write(AppExit{})
		}
	})

	require.NoError(t, app.Run())
	require.Equal(t, 3, frames)
	require.Equal(t, 30*time.Millisecond, MustResourceOf[VirtualTime](app.World()).Elapsed)
}

func TestAppRunExitCode(t *testing.T) {
	var app App
	app.AddSystems(Update, func(exit *MessageWriter[AppExit]) {
		exit.Write(AppExit{Code: 2})
		exit.Write(AppExit{Code: 3})
	})

	err := app.Run()

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestAppStartupRunsOnce(t *testing.T) {
	var app App

	var schedules []string
	app.AddSystems(PreStartup, func() { schedules = append(schedules, "PreStartup") })
	app.AddSystems(Startup, func() { schedules = append(schedules, "Startup") })
	app.AddSystems(PostStartup, func() { schedules = append(schedules, "PostStartup") })
	app.AddSystems(First, func() { schedules = append(schedules, "First") })
	app.AddSystems(Update, func() { schedules = append(schedules, "Update") })
	app.AddSystems(Last, func() { schedules = append(schedules, "Last") })

	app.Update()
	app.Update()

	require.Equal(t, []string{
		"PreStartup", "Startup", "PostStartup",
		"First", "Update", "Last",
		"First", "Update", "Last",
	}, schedules)
}

func TestAppPlugin(t *testing.T) {
	var app App

	app.AddPlugin(PluginFunc(func(app *App) {
		app.InsertResource(counter{Value: 42})
	}))

	require.Equal(t, 42, MustResourceOf[counter](app.World()).Value)
}

func TestVirtualTimeScale(t *testing.T) {
	var app App
	app.InsertResource(TimeUpdateStrategy{ManualDelta: 100 * time.Millisecond})
	MustResourceOf[VirtualTime](app.World()).Scale = 0.5

	app.Update()

	vt := MustResourceOf[VirtualTime](app.World())
	require.Equal(t, 50*time.Millisecond, vt.Delta)
	require.InDelta(t, 0.05, vt.DeltaSecs, 1e-9)
}

func TestAppExitHandledAfterBufferRotation(t *testing.T) {
	var app App
	app.AddSystems(Update, func(exit *MessageWriter[AppExit], done *Local[bool]) {
		if !done.Value {
			done.Value = true
			exit.Write(AppExit{Code: 4})
		}
	})

	// written during update, the buffers rotate in Last before the request is read
	app.Update()

	status := MustResourceOf[AppExitStatus](app.World())
	require.True(t, status.Requested)
	require.Equal(t, 4, status.Code)
}
