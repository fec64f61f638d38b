// Package inspect reads properties and walks the accessible-object tree of a
// resolved application. Remote failures are recorded on the affected
// property or node; they never abort the whole operation.
package inspect

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mj1618/atspi-inspect/internal/model"
	"github.com/mj1618/atspi-inspect/internal/platform"
)

// busProperties maps each recognized key to the bus property backing it.
var busProperties = map[model.PropertyKey]string{
	model.KeyName:         platform.PropName,
	model.KeyDescription:  platform.PropDescription,
	model.KeyLocale:       platform.PropLocale,
	model.KeyAccessibleID: platform.PropAccessibleID,
	model.KeyChildCount:   platform.PropChildCount,
	model.KeyParent:       platform.PropParent,
	model.KeyHelpText:     platform.PropHelpText,
}

// Inspector fetches the recognized property set of an accessible object.
type Inspector struct {
	bus    platform.Bus
	logger *slog.Logger
}

// NewInspector creates an Inspector. A nil logger discards diagnostics.
func NewInspector(bus platform.Bus, logger *slog.Logger) *Inspector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Inspector{bus: bus, logger: logger}
}

// Inspect reads every recognized property of ref, one call per key.
// The returned set always holds every key exactly once.
func (i *Inspector) Inspect(ctx context.Context, ref model.ObjectRef) model.PropertySet {
	set := make(model.PropertySet, 0, len(model.PropertyKeys))
	for _, key := range model.PropertyKeys {
		prop := busProperties[key]
		v, err := i.bus.Property(ctx, ref, prop)
		if err != nil {
			i.logReadFailure(ref, prop, err)
		}
		set = append(set, model.Property{Key: key, Result: toResult(v, err)})
	}
	return set
}

// logReadFailure logs missing interfaces or properties at debug level and
// anything else as a warning.
func (i *Inspector) logReadFailure(ref model.ObjectRef, prop string, err error) {
	var re *platform.RemoteError
	if errors.As(err, &re) && re.Unimplemented() {
		i.logger.Debug("property not implemented", "bus", ref.Bus, "path", ref.Path, "property", prop, "error", err)
		return
	}
	i.logger.Warn("property read failed", "bus", ref.Bus, "path", ref.Path, "property", prop, "error", err)
}

// toResult classifies one property read. Empty strings and nil values are
// reported as no value.
func toResult(v any, err error) model.Result {
	if err != nil {
		return model.Failed(err)
	}
	switch val := v.(type) {
	case nil:
		return model.NoValue()
	case string:
		if val == "" {
			return model.NoValue()
		}
		return model.ValueOf(val)
	default:
		return model.ValueOf(val)
	}
}
