package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mj1618/atspi-inspect/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatText

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat validates a --format value. An empty value selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (use text, yaml, or json)", s)
	}
}

// PropertyEntry is one row of a property set in structured output.
type PropertyEntry struct {
	Key    string `yaml:"key"             json:"key"`
	Status string `yaml:"status"          json:"status"`
	Value  string `yaml:"value,omitempty" json:"value,omitempty"`
	Error  string `yaml:"error,omitempty" json:"error,omitempty"`
}

// NodeReport is a tree node in structured output.
type NodeReport struct {
	Bus       string       `yaml:"bus"                 json:"bus"`
	Path      string       `yaml:"path"                json:"path"`
	Name      string       `yaml:"name"                json:"name"`
	Role      string       `yaml:"role,omitempty"      json:"role,omitempty"`
	Error     string       `yaml:"error,omitempty"     json:"error,omitempty"`
	Truncated bool         `yaml:"truncated,omitempty" json:"truncated,omitempty"`
	Children  []NodeReport `yaml:"children,omitempty"  json:"children,omitempty"`
}

// ApplicationReport is everything printed for one resolved application.
type ApplicationReport struct {
	Application model.Application `yaml:"application"     json:"application"`
	Properties  []PropertyEntry   `yaml:"properties"      json:"properties"`
	Tree        *NodeReport       `yaml:"tree,omitempty"  json:"tree,omitempty"`
	Flat        []model.FlatNode  `yaml:"flat,omitempty"  json:"flat,omitempty"`

	props model.PropertySet
	root  *model.Node
}

// NewApplicationReport builds the report for app. tree may be nil when the
// tree was not requested; flat selects the flattened tree form.
func NewApplicationReport(app model.Application, props model.PropertySet, tree *model.Node, flat bool) ApplicationReport {
	r := ApplicationReport{
		Application: app,
		Properties:  make([]PropertyEntry, 0, len(props)),
		props:       props,
		root:        tree,
	}
	for _, p := range props {
		entry := PropertyEntry{Key: string(p.Key), Status: p.Result.Kind.String()}
		switch {
		case p.Result.OK():
			entry.Value = p.Result.String()
		case p.Result.Kind == model.KindError && p.Result.Err != nil:
			entry.Error = p.Result.Err.Error()
		}
		r.Properties = append(r.Properties, entry)
	}
	if tree != nil {
		if flat {
			r.Flat = model.FlattenTree(*tree)
		} else {
			n := newNodeReport(*tree)
			r.Tree = &n
		}
	}
	return r
}

func newNodeReport(n model.Node) NodeReport {
	r := NodeReport{
		Bus:       n.Ref.Bus,
		Path:      n.Ref.Path,
		Name:      n.Name.String(),
		Role:      n.Role,
		Truncated: n.Truncated,
	}
	if n.Err != nil {
		r.Error = n.Err.Error()
	}
	for _, c := range n.Children {
		r.Children = append(r.Children, newNodeReport(c))
	}
	return r
}

// Write serializes v to w. Text falls back to YAML for values without a
// text rendering.
func Write(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, v, PrettyOutput)
	case FormatYAML, FormatText:
		if format == FormatText {
			switch tv := v.(type) {
			case []ApplicationReport:
				return WriteText(w, tv)
			case []model.Application:
				_, err := io.WriteString(w, RenderApplications(tv)+"\n")
				return err
			}
		}
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteJSON serializes v to w as JSON.
// If pretty is true, uses indentation; otherwise single-line.
func WriteJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// WriteYAML serializes v to w as YAML.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
