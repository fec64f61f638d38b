package model

// Node is one accessible object in a walked tree.
//
// A node whose child enumeration failed has no children and a non-nil Err;
// a node cut off by the depth bound has Truncated set. Neither is a leaf.
type Node struct {
	Ref       ObjectRef
	Name      Result
	Role      string // Best-effort; empty when the role could not be read
	Children  []Node
	Err       error
	Truncated bool
}

// IsLeaf reports whether the node genuinely has no children.
func (n Node) IsLeaf() bool {
	return len(n.Children) == 0 && n.Err == nil && !n.Truncated
}

// Label is the short text identifying the node in paths.
func (n Node) Label() string {
	if n.Role != "" {
		return n.Role
	}
	return "unknown"
}

// Count returns the number of nodes in the subtree rooted at n.
func (n Node) Count() int {
	total := 1
	for i := range n.Children {
		total += n.Children[i].Count()
	}
	return total
}
