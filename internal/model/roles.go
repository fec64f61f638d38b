package model

import "strings"

// MetaRoles maps meta-role names to the AT-SPI role names they expand to.
var MetaRoles = map[string][]string{
	"interactive": {
		"push button", "toggle button", "check box", "radio button", "combo box",
		"entry", "password text", "spin button", "slider", "link", "menu item",
		"check menu item", "radio menu item", "page tab",
	},
	"text":      {"label", "text", "paragraph", "heading", "static", "caption"},
	"container": {"frame", "window", "dialog", "panel", "filler", "scroll pane", "page tab list", "tool bar"},
}

// ExpandRoles expands any meta-roles in the given list to their concrete
// roles. Other roles pass through lowercased. Duplicates are removed.
func ExpandRoles(roles []string) []string {
	seen := make(map[string]bool, len(roles))
	var expanded []string
	add := func(r string) {
		if !seen[r] {
			seen[r] = true
			expanded = append(expanded, r)
		}
	}
	for _, r := range roles {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" {
			continue
		}
		if concrete, ok := MetaRoles[r]; ok {
			for _, c := range concrete {
				add(c)
			}
			continue
		}
		add(r)
	}
	return expanded
}
