package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type MyMessage int

func TestMessages(t *testing.T) {
	var app App

	app.AddMessage(MessageType[MyMessage]())

	var messagesWritten int
	var expected []MyMessage

	writer := func(w *MessageWriter[MyMessage]) {
		messagesWritten += 1
		w.Write(MyMessage(messagesWritten))
	}

	var read []MyMessage
	reader := func(w *MessageReader[MyMessage]) {
		read = append(read[:0], w.Read()...)
	}

	w := app.World()
	w.AddSystems(Update, reader)

	check := func() {
		t.Helper()
		w.RunSchedule(Update)
		require.Equal(t, expected, read)
	}

	// start of frame 1
	w.RunSystem(writer)
	w.RunSystem(writer)

	expected = []MyMessage{1, 2}
	check()

	// second call should not read anything
	expected = []MyMessage{}
	check()

	// send another one in the same frame, should be received
	w.RunSystem(writer)

	expected = []MyMessage{3}
	check()

	// send some more to be read in the next frame
	w.RunSystem(writer)
	w.RunSystem(writer)

	// end of frame 1
	w.RunSchedule(Last)

	// frame 2
	expected = []MyMessage{4, 5}
	check()

	// send some more to be read in the next frame
	w.RunSystem(writer) // 6
	w.RunSystem(writer) // 7

	// end of frame 2
	w.RunSchedule(Last)

	// frame 3
	// just write one message and then end the frame
	w.RunSystem(writer) // 8
	w.RunSchedule(Last)

	// frame 4
	// messages from frame 2 were not picked up, should be gone now,
	// messages from frame 3 should be readable
	expected = []MyMessage{8}
	check()
}

func TestMessageTypeNotRegistered(t *testing.T) {
	w := NewWorld()

	require.Panics(t, func() {
		w.AddSystems(Update, func(*MessageReader[MyMessage]) {})
	})
}
