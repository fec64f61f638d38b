//go:build linux

package linux

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/mj1618/atspi-inspect/internal/model"
	"github.com/mj1618/atspi-inspect/internal/platform"
)

// wireRef is the (so) structure AT-SPI uses for object references.
type wireRef struct {
	Name string
	Path dbus.ObjectPath
}

func (w wireRef) ref() model.ObjectRef {
	return model.ObjectRef{Bus: w.Name, Path: string(w.Path)}
}

// decodeValue converts a property value received inside a variant into the
// types documented on platform.Bus.
func decodeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return val, nil
	case int32:
		return int(val), nil
	case uint32:
		return int(val), nil
	case int64:
		return int(val), nil
	case uint64:
		return int(val), nil
	case dbus.ObjectPath:
		return string(val), nil
	case []any:
		// (so) arrives as a two-element struct
		if len(val) == 2 {
			name, okName := val[0].(string)
			path, okPath := val[1].(dbus.ObjectPath)
			if okName && okPath {
				return wireRef{Name: name, Path: path}.ref(), nil
			}
		}
		return nil, fmt.Errorf("unexpected structure %v", val)
	default:
		return nil, fmt.Errorf("unexpected value type %T", v)
	}
}

// remoteError converts a godbus error reply into a platform.RemoteError.
// Other errors are returned unchanged.
func remoteError(err error) error {
	if err == nil {
		return nil
	}
	var de dbus.Error
	if errors.As(err, &de) {
		return &platform.RemoteError{Name: de.Name, Message: errorMessage(de.Body)}
	}
	var dep *dbus.Error
	if errors.As(err, &dep) && dep != nil {
		return &platform.RemoteError{Name: dep.Name, Message: errorMessage(dep.Body)}
	}
	return err
}

func errorMessage(body []any) string {
	if len(body) == 0 {
		return ""
	}
	if s, ok := body[0].(string); ok {
		return s
	}
	return fmt.Sprint(body[0])
}
