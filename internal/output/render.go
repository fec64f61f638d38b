package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/mj1618/atspi-inspect/internal/model"
)

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// WriteText renders reports as property tables followed by their trees.
func WriteText(w io.Writer, reports []ApplicationReport) error {
	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Application: %s (%s) - Accessible Properties of its root object:\n",
			r.Application.DisplayName(), r.Application.Bus)
		b.WriteString(RenderProperties(r.props))
		b.WriteString("\n")

		if r.root == nil {
			continue
		}
		fmt.Fprintf(&b, "\nApplication: %s (%s) - Tree of Accessible Objects:\n",
			r.Application.DisplayName(), r.Application.Bus)
		if r.Flat != nil {
			b.WriteString(RenderFlat(r.Flat))
		} else {
			b.WriteString(RenderTree(*r.root))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderProperties renders a property set as a two-column bordered table.
func RenderProperties(props model.PropertySet) string {
	rows := make([][]string, 0, len(props))
	for _, p := range props {
		value := p.Result.String()
		if p.Result.Kind == model.KindError {
			value = errorStyle.Render(value)
		}
		rows = append(rows, []string{string(p.Key) + ":", value})
	}
	return table.New().
		Border(lipgloss.ASCIIBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Rows(rows...).
		String()
}

// RenderTree renders a node tree with tree(1)-style connectors.
func RenderTree(root model.Node) string {
	return buildTree(root).String()
}

func buildTree(n model.Node) *tree.Tree {
	t := tree.Root(nodeLabel(n))
	for _, c := range n.Children {
		if len(c.Children) == 0 {
			t.Child(nodeLabel(c))
			continue
		}
		t.Child(buildTree(c))
	}
	return t
}

// nodeLabel is "role: name" followed by any traversal markers.
func nodeLabel(n model.Node) string {
	label := n.Label() + ": " + n.Name.String()
	if n.Err != nil {
		label += " " + errorStyle.Render("[traversal error: "+n.Err.Error()+"]")
	}
	if n.Truncated {
		label += " " + markerStyle.Render("[depth limit reached]")
	}
	return label
}

// RenderFlat renders a flattened tree as a table of trails and names.
func RenderFlat(nodes []model.FlatNode) string {
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		note := ""
		switch {
		case n.Error != "":
			note = errorStyle.Render("traversal error: " + n.Error)
		case n.Truncated:
			note = markerStyle.Render("depth limit reached")
		}
		rows = append(rows, []string{n.Trail, n.Name, n.Path, note})
	}
	return table.New().
		Border(lipgloss.ASCIIBorder()).
		Headers("Trail", "Name", "Path", "Note").
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Rows(rows...).
		String()
}

// RenderApplications renders registered applications as a table.
func RenderApplications(apps []model.Application) string {
	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, []string{a.Bus, a.Name, a.Root.Path})
	}
	return table.New().
		Border(lipgloss.ASCIIBorder()).
		Headers("Bus", "Name", "Root").
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Rows(rows...).
		String()
}
