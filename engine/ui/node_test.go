package ui

import (
	"slices"
	"testing"

	"github.com/juan-medina/dice-master/engine/gm"
	"github.com/stretchr/testify/require"
)

func textsOf(nodes *Nodes) []string {
	var texts []string
	for node := range nodes.Items() {
		texts = append(texts, node.Text)
	}

	return texts
}

func TestNodesSpawnOrder(t *testing.T) {
	var nodes Nodes

	first := nodes.Spawn(Node{Text: "first"})
	second := nodes.Spawn(Node{Text: "second"})

	require.NotEqual(t, first, second)
	require.Equal(t, 2, nodes.Len())
	require.Equal(t, []string{"first", "second"}, textsOf(&nodes))

	node, ok := nodes.Get(second)
	require.True(t, ok)
	require.Equal(t, second, node.Id)
}

func TestNodesDespawnChildren(t *testing.T) {
	var nodes Nodes

	panel := nodes.Spawn(Node{Text: "panel", Scope: "menu"})
	button := nodes.SpawnChild(panel, Node{Text: "button"})
	nodes.SpawnChild(button, Node{Text: "label"})
	nodes.Spawn(Node{Text: "other"})

	child, _ := nodes.Get(button)
	require.Equal(t, "menu", child.Scope)

	nodes.Despawn(panel)

	require.Equal(t, []string{"other"}, textsOf(&nodes))
	require.False(t, nodes.Contains(button))
}

func TestNodesDespawnScope(t *testing.T) {
	var nodes Nodes

	nodes.Spawn(Node{Text: "logo", Scope: "splash"})
	nodes.Spawn(Node{Text: "title", Scope: "menu"})
	nodes.Spawn(Node{Text: "spinner", Scope: "splash"})

	ClearScene("splash")(&nodes)

	require.Equal(t, []string{"title"}, textsOf(&nodes))

	title, ok := nodes.Find(func(node *Node) bool { return node.Text == "title" })
	require.True(t, ok)
	require.Equal(t, "menu", title.Scope)
}

func TestAttachmentsPruned(t *testing.T) {
	var nodes Nodes
	var attachments Attachments[int]

	first := nodes.Spawn(Node{})
	second := nodes.Spawn(Node{})

	attachments.Attach(first, 1)
	*attachments.Attach(second, 2) += 10

	value, ok := attachments.Get(second)
	require.True(t, ok)
	require.Equal(t, 12, *value)

	nodes.Despawn(first)
	attachments.prune(&nodes)

	var ids []NodeId
	for id := range attachments.Items() {
		ids = append(ids, id)
	}

	require.Equal(t, []NodeId{second}, ids)
}

func TestIsWithin(t *testing.T) {
	var nodes Nodes

	root := nodes.Spawn(Node{})
	child := nodes.SpawnChild(root, Node{})

	node, _ := nodes.Get(child)
	require.True(t, nodes.isWithin(node, root))

	rootNode, _ := nodes.Get(root)
	require.False(t, nodes.isWithin(rootNode, child))

	require.True(t, slices.Contains(AllKeys(), KeyAltRight))
	require.Equal(t, gm.VecOf(1920, 1080), DesignSize)
}
