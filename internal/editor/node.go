package editor

import "tabsblock/internal/block"

// Node is one block instance in the editor. It implements block.PropertyBag
// and the capability set a block widget needs from its host.
type Node struct {
	editor *Editor
	id     string
	props  block.Props
}

// ID returns the node id.
func (n *Node) ID() string {
	return n.id
}

// Props returns the committed props. Callers must not modify the Tabs slice;
// use MutateProps.
func (n *Node) Props() block.Props {
	return n.props
}

// MutateProps applies fn to a copy of the props and commits the result.
func (n *Node) MutateProps(fn func(*block.Props)) {
	next := n.props.Clone()
	fn(&next)
	n.editor.commit(n, next)
}

// IsAuthoringMode reports the editor-wide edit-mode flag.
func (n *Node) IsAuthoringMode() bool {
	return n.editor.Enabled()
}

// SelectThisNode makes this node the editor's selected node.
func (n *Node) SelectThisNode() {
	n.editor.SelectNode(n.id)
}

// Selected reports whether this node is the editor's selected node.
func (n *Node) Selected() bool {
	return n.editor.Selected() == n.id
}
