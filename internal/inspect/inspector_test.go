package inspect

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/mj1618/atspi-inspect/internal/model"
	"github.com/mj1618/atspi-inspect/internal/platform"
	"github.com/mj1618/atspi-inspect/internal/platform/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kateBus builds the kate scenario: a root reporting its own bus with the
// null path as parent and no Locale support.
func kateBus() (*fake.Bus, model.ObjectRef) {
	bus := fake.New()
	app := bus.AddApp(":1.217", "kate")
	app.Props[platform.PropDescription] = ""
	app.Props[platform.PropAccessibleID] = ""
	app.Props[platform.PropChildCount] = 1
	app.Props[platform.PropParent] = model.ObjectRef{Bus: ":1.217", Path: model.NullPath}
	app.Props[platform.PropHelpText] = ""
	app.PropErrs[platform.PropLocale] = &platform.RemoteError{
		Name:    fake.ErrUnknownInterface,
		Message: "No such interface “org.a11y.atspi.Accessible” on object at path /org/a11y/atspi/accessible/root",
	}
	return bus, model.ObjectRef{Bus: ":1.217", Path: platform.RootPath}
}

// TestInspect_KateScenario verifies value, no-value and error markers on a
// partially implemented root object.
func TestInspect_KateScenario(t *testing.T) {
	bus, root := kateBus()

	set := NewInspector(bus, nil).Inspect(context.Background(), root)
	require.Len(t, set, len(model.PropertyKeys))

	name, _ := set.Get(model.KeyName)
	assert.Equal(t, "kate", name.String())

	count, _ := set.Get(model.KeyChildCount)
	assert.Equal(t, model.KindValue, count.Kind)
	assert.Equal(t, 1, count.Value)
	assert.Equal(t, "1", count.String())

	locale, _ := set.Get(model.KeyLocale)
	assert.Equal(t, model.KindError, locale.Kind)
	assert.Contains(t, locale.String(), "UnknownInterface")

	parent, _ := set.Get(model.KeyParent)
	assert.Equal(t, model.ObjectRef{Bus: ":1.217", Path: "/org/a11y/atspi/null"}, parent.Value)

	desc, _ := set.Get(model.KeyDescription)
	assert.Equal(t, model.KindNoValue, desc.Kind)
	assert.Equal(t, model.NoValueText, desc.String())
}

// TestInspect_EveryKeyExactlyOnce verifies the set shape even when every
// read fails.
func TestInspect_EveryKeyExactlyOnce(t *testing.T) {
	bus := fake.New()
	missing := model.ObjectRef{Bus: ":1.404", Path: platform.RootPath}

	set := NewInspector(bus, nil).Inspect(context.Background(), missing)
	require.Len(t, set, len(model.PropertyKeys))
	for i, key := range model.PropertyKeys {
		assert.Equal(t, key, set[i].Key)
		assert.Equal(t, model.KindError, set[i].Result.Kind, "key %s", key)
	}
	assert.Equal(t, len(model.PropertyKeys), set.Failures())
}

// TestInspect_OneCallPerKey verifies that each key is read exactly once and
// a failure does not stop the remaining reads.
func TestInspect_OneCallPerKey(t *testing.T) {
	bus, root := kateBus()
	bus.Object(root).PropErrs[platform.PropName] = errors.New("no reply")

	set := NewInspector(bus, nil).Inspect(context.Background(), root)

	assert.Len(t, bus.Calls(), len(model.PropertyKeys))
	help, _ := set.Get(model.KeyHelpText)
	assert.Equal(t, model.KindNoValue, help.Kind)
	name, _ := set.Get(model.KeyName)
	assert.Equal(t, "Error: no reply", name.String())
}

func TestToResult(t *testing.T) {
	tests := []struct {
		name string
		v    any
		err  error
		kind model.ResultKind
		want string
	}{
		{"string", "kate", nil, model.KindValue, "kate"},
		{"empty string", "", nil, model.KindNoValue, model.NoValueText},
		{"nil", nil, nil, model.KindNoValue, model.NoValueText},
		{"int", 4, nil, model.KindValue, "4"},
		{"zero", 0, nil, model.KindValue, "0"},
		{"ref", model.ObjectRef{Bus: ":1.2", Path: "/a"}, nil, model.KindValue, "(:1.2, /a)"},
		{"error", "ignored", errors.New("boom"), model.KindError, "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := toResult(tt.v, tt.err)
			assert.Equal(t, tt.kind, r.Kind)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

// TestInspect_LogLevels verifies missing interfaces are logged at debug and
// other failures as warnings.
func TestInspect_LogLevels(t *testing.T) {
	bus, root := kateBus()
	bus.Object(root).PropErrs[platform.PropName] = errors.New("no reply")

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	NewInspector(bus, logger).Inspect(context.Background(), root)

	out := buf.String()
	assert.Contains(t, out, `"property":"Name"`)
	assert.NotContains(t, out, `"property":"Locale"`)
}
