package model

import "testing"

func TestFilterApplications_Empty(t *testing.T) {
	apps := []Application{{Bus: ":1.1", Name: "kate"}, {Bus: ":1.2", Name: "konsole"}}
	result := FilterApplications(apps, "")
	if len(result) != 2 {
		t.Errorf("expected 2 applications, got %d", len(result))
	}
}

func TestFilterApplications_CaseInsensitive(t *testing.T) {
	apps := []Application{
		{Bus: ":1.1", Name: "Kate"},
		{Bus: ":1.2", Name: "konsole"},
		{Bus: ":1.3", Name: "katepart"},
	}
	result := FilterApplications(apps, "KATE")
	if len(result) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(result))
	}
	if result[0].Bus != ":1.1" || result[1].Bus != ":1.3" {
		t.Errorf("unexpected order: %v", result)
	}
}

func TestFilterApplications_MatchesBusName(t *testing.T) {
	apps := []Application{{Bus: "org.kde.kate", Name: ""}, {Bus: ":1.2", Name: "konsole"}}
	result := FilterApplications(apps, "org.kde")
	if len(result) != 1 || result[0].Bus != "org.kde.kate" {
		t.Errorf("expected org.kde.kate, got %v", result)
	}
}

func filterSample() Node {
	return Node{Role: "application", Children: []Node{
		{Role: "frame", Children: []Node{
			{Role: "push button", Name: ValueOf("OK")},
			{Role: "label", Name: ValueOf("Hello")},
		}},
		{Role: "frame", Children: []Node{
			{Role: "label", Name: ValueOf("Other")},
		}},
	}}
}

func TestFilterTree_NoRoles(t *testing.T) {
	root := filterSample()
	result := FilterTree(root, nil)
	if result.Count() != root.Count() {
		t.Errorf("expected %d nodes, got %d", root.Count(), result.Count())
	}
}

func TestFilterTree_KeepsAncestors(t *testing.T) {
	result := FilterTree(filterSample(), []string{"Push Button"})
	if len(result.Children) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(result.Children))
	}
	frame := result.Children[0]
	if len(frame.Children) != 1 || frame.Children[0].Role != "push button" {
		t.Errorf("expected only the push button under frame, got %+v", frame.Children)
	}
}

func TestFilterTree_NoMatchKeepsRoot(t *testing.T) {
	result := FilterTree(filterSample(), []string{"table"})
	if result.Role != "application" {
		t.Errorf("expected root to be kept, got %q", result.Role)
	}
	if len(result.Children) != 0 {
		t.Errorf("expected no children, got %d", len(result.Children))
	}
}
