package model

import "fmt"

// ObjectRef addresses one remote accessible object: the bus connection that
// owns it plus the object path inside that connection.
type ObjectRef struct {
	Bus  string `yaml:"bus"  json:"bus"`
	Path string `yaml:"path" json:"path"`
}

// NullPath is the path AT-SPI uses for "no object".
const NullPath = "/org/a11y/atspi/null"

// IsNull reports whether the reference points at the AT-SPI null object.
func (r ObjectRef) IsNull() bool {
	return r.Path == NullPath
}

// String renders the reference as "(bus, path)".
func (r ObjectRef) String() string {
	return fmt.Sprintf("(%s, %s)", r.Bus, r.Path)
}
