package model

import "strings"

// FilterApplications returns the applications whose name or bus name
// contains text (case-insensitive). An empty text returns apps unchanged.
func FilterApplications(apps []Application, text string) []Application {
	if text == "" {
		return apps
	}
	textLower := strings.ToLower(text)
	var result []Application
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.Name), textLower) ||
			strings.Contains(strings.ToLower(app.Bus), textLower) {
			result = append(result, app)
		}
	}
	return result
}

// FilterTree prunes the tree to nodes whose role is in roles, after
// meta-role expansion. Ancestors of a matching node are kept so the result
// stays a tree rooted at root. An empty roles list returns root unchanged.
func FilterTree(root Node, roles []string) Node {
	expanded := ExpandRoles(roles)
	if len(expanded) == 0 {
		return root
	}
	roleSet := make(map[string]bool, len(expanded))
	for _, r := range expanded {
		roleSet[r] = true
	}
	filtered, _ := filterNode(root, roleSet)
	return filtered
}

func filterNode(n Node, roleSet map[string]bool) (Node, bool) {
	var children []Node
	for _, c := range n.Children {
		if fc, ok := filterNode(c, roleSet); ok {
			children = append(children, fc)
		}
	}
	filtered := n
	filtered.Children = children
	return filtered, roleSet[strings.ToLower(n.Role)] || len(children) > 0
}
