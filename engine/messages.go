package engine

import (
	"fmt"
	"reflect"
)

type AddMessageType interface {
	configureMessageIn(app *App)
}

func MessageType[E any]() AddMessageType {
	return newMessage[E]{}
}

type newMessage[E any] struct{}

func (newMessage[E]) configureMessageIn(app *App) {
	if _, exists := ResourceOf[Messages[E]](app.World()); exists {
		return
	}

	app.InsertResource(&Messages[E]{})
	app.AddSystems(Last, updateMessagesSystem[E])
}

func updateMessagesSystem[E any](messages *Messages[E]) {
	messages.Update()
}

type MessageId int

type MessageWithId[M any] struct {
	Id      MessageId
	Message M
}

// Messages is a double buffered message queue. Messages written in one frame
// can be read until the end of the next frame.
type Messages[E any] struct {
	_ noCopy

	prevId MessageId
	curr   []MessageWithId[E]
	prev   []MessageWithId[E]
}

func (e *Messages[E]) AppendTo(target []MessageWithId[E]) []MessageWithId[E] {
	target = append(target, e.prev...)
	target = append(target, e.curr...)
	return target
}

func (e *Messages[E]) Send(message E) {
	e.prevId += 1

	e.curr = append(e.curr, MessageWithId[E]{
		Id:      e.prevId,
		Message: message,
	})
}

// Update rotates the buffers. Messages that were not read
// within two frames are dropped.
func (e *Messages[E]) Update() {
	e.curr, e.prev = e.prev, e.curr

	// reuse the memory of the current buffer
	clear(e.curr)
	e.curr = e.curr[:0]
}

func (e *Messages[E]) Reader() *MessageReader[E] {
	return &MessageReader[E]{messages: e}
}

func (e *Messages[E]) Writer() *MessageWriter[E] {
	return &MessageWriter[E]{messages: e}
}

type MessageWriter[E any] struct {
	_ noCopy

	messages *Messages[E]
}

func (w *MessageWriter[E]) Write(message E) {
	w.messages.Send(message)
}

func (w *MessageWriter[E]) init(world *World) SystemParamState {
	messages := messagesOf[E](world)
	return valueSystemParamState(reflect.ValueOf(messages.Writer()))
}

type MessageReader[E any] struct {
	_ noCopy

	messages *Messages[E]
	lastId   MessageId

	scratch       []E
	scratchWithId []MessageWithId[E]
}

// Read returns all messages this reader has not seen yet.
// The returned slice is only valid until the next call to Read.
func (r *MessageReader[E]) Read() []E {
	r.scratchWithId = r.messages.AppendTo(r.scratchWithId[:0])

	buffer := r.scratchWithId

	// skip the messages we've already read
	for len(buffer) > 0 {
		if buffer[0].Id > r.lastId {
			break
		}

		buffer = buffer[1:]
	}

	if len(buffer) > 0 {
		// store the last id we've seen
		r.lastId = buffer[len(buffer)-1].Id
	}

	// convert to message slice, reuse scratch buffer
	messages := r.scratch[:0]
	for _, message := range buffer {
		messages = append(messages, message.Message)
	}

	// keep scratch buffer for reuse
	r.scratch = messages

	return messages
}

func (r *MessageReader[E]) init(world *World) SystemParamState {
	messages := messagesOf[E](world)
	return valueSystemParamState(reflect.ValueOf(messages.Reader()))
}

func messagesOf[E any](world *World) *Messages[E] {
	messages, ok := ResourceOf[Messages[E]](world)
	if !ok {
		panic(fmt.Sprintf("message type %s not registered", reflect.TypeFor[E]()))
	}

	return messages
}
