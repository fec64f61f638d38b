package inspect

import (
	"context"
	"errors"
	"testing"

	"github.com/mj1618/atspi-inspect/internal/model"
	"github.com/mj1618/atspi-inspect/internal/platform"
	"github.com/mj1618/atspi-inspect/internal/platform/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildEditorTree creates a small application graph:
//
//	kate (application)
//	├── Untitled (frame)
//	│   ├── File (menu)
//	│   └── Document (text)
//	└── Settings (dialog)
func buildEditorTree() (*fake.Bus, model.ObjectRef) {
	bus := fake.New()
	bus.AddApp(":1.217", "kate")
	root := model.ObjectRef{Bus: ":1.217", Path: platform.RootPath}
	frame, _ := bus.AddChild(root, "/org/a11y/atspi/accessible/1", "Untitled", "frame")
	bus.AddChild(frame, "/org/a11y/atspi/accessible/2", "File", "menu")
	bus.AddChild(frame, "/org/a11y/atspi/accessible/3", "Document", "text")
	bus.AddChild(root, "/org/a11y/atspi/accessible/4", "Settings", "dialog")
	return bus, root
}

func names(nodes []model.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name.String()
	}
	return out
}

// TestWalk_FullTree verifies structure, enumeration order and roles.
func TestWalk_FullTree(t *testing.T) {
	bus, root := buildEditorTree()

	tree := NewWalker(bus, nil).Walk(context.Background(), root, 0)

	assert.Equal(t, root, tree.Ref)
	assert.Equal(t, "kate", tree.Name.String())
	assert.Equal(t, "application", tree.Role)
	require.Len(t, tree.Children, 2)
	assert.Equal(t, []string{"Untitled", "Settings"}, names(tree.Children))
	assert.Equal(t, []string{"File", "Document"}, names(tree.Children[0].Children))
	assert.True(t, tree.Children[1].IsLeaf())
	assert.Equal(t, 5, tree.Count())
}

// TestWalk_ChildEnumerationFailure verifies that a failing node becomes an
// error-marked leaf while its siblings are walked normally.
func TestWalk_ChildEnumerationFailure(t *testing.T) {
	bus, root := buildEditorTree()
	frame := model.ObjectRef{Bus: ":1.217", Path: "/org/a11y/atspi/accessible/1"}
	bus.Object(frame).ChildrenErr = &platform.RemoteError{Name: "org.freedesktop.DBus.Error.NoReply"}

	tree := NewWalker(bus, nil).Walk(context.Background(), root, 0)

	require.Len(t, tree.Children, 2)
	broken := tree.Children[0]
	assert.Empty(t, broken.Children)
	require.Error(t, broken.Err)
	assert.False(t, broken.IsLeaf())
	assert.Equal(t, "Untitled", broken.Name.String())

	var te *TraversalError
	require.ErrorAs(t, broken.Err, &te)
	assert.Equal(t, frame, te.Ref)
	assert.Contains(t, te.Error(), "NoReply")

	sibling := tree.Children[1]
	assert.NoError(t, sibling.Err)
	assert.True(t, sibling.IsLeaf())
}

// TestWalk_MissingChild verifies that a child the remote lists but cannot
// serve is recorded with failure markers.
func TestWalk_MissingChild(t *testing.T) {
	bus, root := buildEditorTree()
	ghost := model.ObjectRef{Bus: ":1.217", Path: "/org/a11y/atspi/accessible/99"}
	bus.Object(root).Children = append(bus.Object(root).Children, ghost)

	tree := NewWalker(bus, nil).Walk(context.Background(), root, 0)

	require.Len(t, tree.Children, 3)
	g := tree.Children[2]
	assert.Equal(t, ghost, g.Ref)
	assert.Equal(t, model.KindError, g.Name.Kind)
	assert.Empty(t, g.Role)
	assert.Error(t, g.Err)
}

// TestWalk_NameFailureTolerated verifies that a failing name read does not
// stop the walk below that node.
func TestWalk_NameFailureTolerated(t *testing.T) {
	bus, root := buildEditorTree()
	frame := model.ObjectRef{Bus: ":1.217", Path: "/org/a11y/atspi/accessible/1"}
	bus.Object(frame).PropErrs[platform.PropName] = errors.New("no reply")
	bus.Object(frame).RoleErr = errors.New("no reply")

	tree := NewWalker(bus, nil).Walk(context.Background(), root, 0)

	f := tree.Children[0]
	assert.Equal(t, "Error: no reply", f.Name.String())
	assert.Equal(t, "unknown", f.Label())
	assert.Len(t, f.Children, 2)
}

// TestWalk_DepthBound verifies truncation at the depth limit.
func TestWalk_DepthBound(t *testing.T) {
	bus, root := buildEditorTree()

	tree := NewWalker(bus, nil).Walk(context.Background(), root, 1)

	require.Len(t, tree.Children, 2)
	assert.False(t, tree.Truncated)
	assert.True(t, tree.Children[0].Truncated, "frame has children beyond the bound")
	assert.Empty(t, tree.Children[0].Children)
	assert.False(t, tree.Children[1].Truncated, "dialog has no children to cut")
	assert.True(t, tree.Children[1].IsLeaf())
}

// TestWalk_CycleBoundedByDepth verifies that a malformed cyclic graph is
// cut off by the depth bound instead of recursing forever.
func TestWalk_CycleBoundedByDepth(t *testing.T) {
	bus, root := buildEditorTree()
	frame := model.ObjectRef{Bus: ":1.217", Path: "/org/a11y/atspi/accessible/1"}
	bus.Object(frame).Children = append([]model.ObjectRef{root}, bus.Object(frame).Children...)

	tree := NewWalker(bus, nil).Walk(context.Background(), root, 4)

	n := tree
	depth := 0
	for len(n.Children) > 0 {
		n = n.Children[0]
		depth++
	}
	assert.Equal(t, 4, depth)
	assert.True(t, n.Truncated)
}

// TestWalk_SkipsNullChildren verifies null references in a child list are
// dropped and do not count toward truncation.
func TestWalk_SkipsNullChildren(t *testing.T) {
	bus, root := buildEditorTree()
	settings := model.ObjectRef{Bus: ":1.217", Path: "/org/a11y/atspi/accessible/4"}
	null := model.ObjectRef{Bus: ":1.217", Path: model.NullPath}
	bus.Object(root).Children = append([]model.ObjectRef{null}, bus.Object(root).Children...)
	bus.Object(settings).Children = []model.ObjectRef{null}

	tree := NewWalker(bus, nil).Walk(context.Background(), root, 0)
	assert.Equal(t, []string{"Untitled", "Settings"}, names(tree.Children))
	assert.True(t, tree.Children[1].IsLeaf())

	bounded := NewWalker(bus, nil).Walk(context.Background(), root, 1)
	require.Len(t, bounded.Children, 2)
	assert.True(t, bounded.Children[0].Truncated)
	assert.False(t, bounded.Children[1].Truncated)
}
