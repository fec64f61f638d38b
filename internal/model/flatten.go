package model

// FlatNode is a node with a path breadcrumb instead of children.
type FlatNode struct {
	Bus       string `yaml:"bus"                 json:"bus"`
	Path      string `yaml:"path"                json:"path"`
	Name      string `yaml:"name"                json:"name"`
	Role      string `yaml:"role,omitempty"      json:"role,omitempty"`
	Depth     int    `yaml:"depth"               json:"depth"`
	Trail     string `yaml:"trail"               json:"trail"`
	Error     string `yaml:"error,omitempty"     json:"error,omitempty"`
	Truncated bool   `yaml:"truncated,omitempty" json:"truncated,omitempty"`
}

// FlattenTree converts a node tree into a flat list in depth-first order.
// Each entry gets a trail showing its location in the tree using node
// labels joined with " > ".
func FlattenTree(root Node) []FlatNode {
	var result []FlatNode
	flattenRecursive(root, "", 0, &result)
	return result
}

func flattenRecursive(n Node, parentTrail string, depth int, result *[]FlatNode) {
	trail := n.Label()
	if parentTrail != "" {
		trail = parentTrail + " > " + n.Label()
	}

	flat := FlatNode{
		Bus:       n.Ref.Bus,
		Path:      n.Ref.Path,
		Name:      n.Name.String(),
		Role:      n.Role,
		Depth:     depth,
		Trail:     trail,
		Truncated: n.Truncated,
	}
	if n.Err != nil {
		flat.Error = n.Err.Error()
	}
	*result = append(*result, flat)

	for _, child := range n.Children {
		flattenRecursive(child, trail, depth+1, result)
	}
}
