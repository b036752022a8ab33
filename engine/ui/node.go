// Package ui is a small retained node tree describing what is currently on screen.
//
// The tree does not render anything itself. A backend reads the nodes each frame
// and feeds pointer and keyboard input back into the Pointer and Keys resources.
package ui

import (
	"iter"
	"slices"

	"github.com/juan-medina/dice-master/engine/color"
	"github.com/juan-medina/dice-master/engine/gm"
)

// DesignSize is the resolution all node rectangles are given in.
var DesignSize = gm.VecOf(1920, 1080)

type NodeId uint32

type Kind uint8

const (
	KindPanel Kind = iota
	KindText
	KindImage
	KindButton
)

type Interaction uint8

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

type Node struct {
	Id     NodeId
	Parent NodeId

	// Scope groups nodes that are despawned together, usually the screen that spawned them.
	Scope any

	Kind Kind
	Rect gm.Rect

	// Color fills panels and buttons and tints images.
	Color color.Color

	Text      string
	TextSize  float64
	TextColor color.Color

	// Image is the asset path of the image to draw.
	Image    string
	Rotation gm.Deg

	// Action is written with the Clicked message when a button is clicked.
	Action any

	Selected    bool
	Interaction Interaction
}

// Nodes holds all nodes in spawn order. Later nodes are drawn on top of earlier ones.
type Nodes struct {
	lastId NodeId
	byId   map[NodeId]*Node
	order  []NodeId
}

// Spawn adds a copy of node and returns its new id.
func (n *Nodes) Spawn(node Node) NodeId {
	if n.byId == nil {
		n.byId = map[NodeId]*Node{}
	}

	n.lastId++

	node.Id = n.lastId
	n.byId[node.Id] = &node
	n.order = append(n.order, node.Id)

	return node.Id
}

// SpawnChild spawns node as a child of parent in the scope of its parent.
func (n *Nodes) SpawnChild(parent NodeId, node Node) NodeId {
	node.Parent = parent

	if parentNode, ok := n.Get(parent); ok {
		node.Scope = parentNode.Scope
	}

	return n.Spawn(node)
}

func (n *Nodes) Get(id NodeId) (*Node, bool) {
	node, ok := n.byId[id]
	return node, ok
}

func (n *Nodes) Contains(id NodeId) bool {
	_, ok := n.byId[id]
	return ok
}

// Despawn removes the node and all of its children.
func (n *Nodes) Despawn(id NodeId) {
	n.despawnWhere(func(node *Node) bool {
		return n.isWithin(node, id)
	})
}

// DespawnScope removes all nodes of the given scope.
func (n *Nodes) DespawnScope(scope any) {
	n.despawnWhere(func(node *Node) bool {
		return node.Scope == scope
	})
}

func (n *Nodes) despawnWhere(pred func(node *Node) bool) {
	// decide first, removing nodes changes the parent chains
	var remove []NodeId
	for _, id := range n.order {
		if pred(n.byId[id]) {
			remove = append(remove, id)
		}
	}

	for _, id := range remove {
		delete(n.byId, id)
	}

	n.order = slices.DeleteFunc(n.order, func(id NodeId) bool {
		_, exists := n.byId[id]
		return !exists
	})
}

func (n *Nodes) isWithin(node *Node, ancestor NodeId) bool {
	for {
		if node.Id == ancestor {
			return true
		}

		parent, ok := n.byId[node.Parent]
		if !ok {
			return false
		}

		node = parent
	}
}

// Items iterates over all nodes in spawn order.
func (n *Nodes) Items() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, id := range n.order {
			if !yield(n.byId[id]) {
				return
			}
		}
	}
}

// Find returns the first node that matches pred.
func (n *Nodes) Find(pred func(node *Node) bool) (*Node, bool) {
	for node := range n.Items() {
		if pred(node) {
			return node, true
		}
	}

	return nil, false
}

func (n *Nodes) Len() int {
	return len(n.order)
}

// ClearScene returns a system that despawns all nodes of the given scope.
func ClearScene(scope any) func(nodes *Nodes) {
	return func(nodes *Nodes) {
		nodes.DespawnScope(scope)
	}
}
