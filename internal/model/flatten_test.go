package model

import (
	"errors"
	"testing"
)

func ref(path string) ObjectRef {
	return ObjectRef{Bus: ":1.5", Path: path}
}

func TestFlattenTree_SingleNode(t *testing.T) {
	result := FlattenTree(Node{Ref: ref("/root"), Name: ValueOf("kate"), Role: "application"})
	if len(result) != 1 {
		t.Fatalf("expected 1 flat node, got %d", len(result))
	}
	if result[0].Trail != "application" {
		t.Errorf("expected trail 'application', got %q", result[0].Trail)
	}
	if result[0].Name != "kate" {
		t.Errorf("expected name 'kate', got %q", result[0].Name)
	}
}

func TestFlattenTree_NestedTrail(t *testing.T) {
	root := Node{
		Ref: ref("/root"), Role: "application", Name: ValueOf("kate"),
		Children: []Node{
			{
				Ref: ref("/1"), Role: "frame", Name: ValueOf("Untitled"),
				Children: []Node{
					{Ref: ref("/2"), Role: "push button", Name: ValueOf("OK")},
				},
			},
		},
	}
	result := FlattenTree(root)
	if len(result) != 3 {
		t.Fatalf("expected 3 flat nodes, got %d", len(result))
	}
	want := []string{"application", "application > frame", "application > frame > push button"}
	for i, w := range want {
		if result[i].Trail != w {
			t.Errorf("node %d: expected trail %q, got %q", i, w, result[i].Trail)
		}
		if result[i].Depth != i {
			t.Errorf("node %d: expected depth %d, got %d", i, i, result[i].Depth)
		}
	}
}

func TestFlattenTree_PreservesMarkers(t *testing.T) {
	root := Node{
		Ref: ref("/root"), Name: ValueOf("app"),
		Children: []Node{
			{Ref: ref("/broken"), Name: NoValue(), Err: errors.New("boom")},
			{Ref: ref("/deep"), Name: ValueOf("deep"), Truncated: true},
		},
	}
	result := FlattenTree(root)
	if len(result) != 3 {
		t.Fatalf("expected 3 flat nodes, got %d", len(result))
	}
	if result[1].Error != "boom" {
		t.Errorf("expected error 'boom', got %q", result[1].Error)
	}
	if result[1].Name != NoValueText {
		t.Errorf("expected no-value name, got %q", result[1].Name)
	}
	if !result[2].Truncated {
		t.Error("expected truncated marker on third node")
	}
	if result[0].Trail != "unknown" {
		t.Errorf("expected fallback label 'unknown', got %q", result[0].Trail)
	}
}
