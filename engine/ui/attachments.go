package ui

import (
	"iter"
	"maps"
	"slices"

	"github.com/juan-medina/dice-master/engine"
)

// Attachments holds values of type T per node. Values of nodes that were
// despawned are dropped at the end of the frame.
type Attachments[T any] struct {
	values map[NodeId]*T
}

func (a *Attachments[T]) Attach(id NodeId, value T) *T {
	if a.values == nil {
		a.values = map[NodeId]*T{}
	}

	a.values[id] = &value
	return a.values[id]
}

func (a *Attachments[T]) Get(id NodeId) (*T, bool) {
	value, ok := a.values[id]
	return value, ok
}

func (a *Attachments[T]) Detach(id NodeId) {
	delete(a.values, id)
}

func (a *Attachments[T]) Len() int {
	return len(a.values)
}

// Items iterates over all attached values, ordered by node id.
func (a *Attachments[T]) Items() iter.Seq2[NodeId, *T] {
	return func(yield func(NodeId, *T) bool) {
		for _, id := range slices.Sorted(maps.Keys(a.values)) {
			if !yield(id, a.values[id]) {
				return
			}
		}
	}
}

func (a *Attachments[T]) prune(nodes *Nodes) {
	maps.DeleteFunc(a.values, func(id NodeId, _ *T) bool {
		return !nodes.Contains(id)
	})
}

// AttachmentsOf returns a plugin that registers the Attachments[T] resource.
func AttachmentsOf[T any]() engine.Plugin {
	return engine.PluginFunc(func(app *engine.App) {
		if _, exists := engine.ResourceOf[Attachments[T]](app.World()); exists {
			return
		}

		app.InsertResource(&Attachments[T]{})
		app.AddSystems(engine.Last, pruneAttachmentsSystem[T])
	})
}

func pruneAttachmentsSystem[T any](attachments *Attachments[T], nodes *Nodes) {
	attachments.prune(nodes)
}
