// Package fake provides an in-memory platform.Bus populated with synthetic
// accessible-object graphs.
package fake

import (
	"context"
	"fmt"
	"sync"

	"github.com/mj1618/atspi-inspect/internal/model"
	"github.com/mj1618/atspi-inspect/internal/platform"
)

// Error names used by the fake for missing objects and properties.
const (
	ErrUnknownObject    = "org.freedesktop.DBus.Error.UnknownObject"
	ErrUnknownProperty  = "org.freedesktop.DBus.Error.UnknownProperty"
	ErrUnknownInterface = "org.freedesktop.DBus.Error.UnknownInterface"
)

// Object is one synthetic accessible object.
type Object struct {
	Interfaces    []string
	Props         map[string]any
	PropErrs      map[string]error
	Role          string
	RoleErr       error
	Children      []model.ObjectRef
	ChildrenErr   error
	IntrospectErr error
}

// Bus is an in-memory platform.Bus. The zero value is not usable; call New.
type Bus struct {
	mu      sync.Mutex
	apps    []model.ObjectRef
	objects map[model.ObjectRef]*Object
	calls   []string
	closed  bool

	// AppsErr, when set, is returned by Applications.
	AppsErr error
}

var _ platform.Bus = (*Bus)(nil)

// New returns an empty bus.
func New() *Bus {
	return &Bus{objects: make(map[model.ObjectRef]*Object)}
}

// Add registers obj at ref and returns it.
func (b *Bus) Add(ref model.ObjectRef, obj *Object) *Object {
	b.mu.Lock()
	defer b.mu.Unlock()
	if obj.Props == nil {
		obj.Props = make(map[string]any)
	}
	if obj.PropErrs == nil {
		obj.PropErrs = make(map[string]error)
	}
	b.objects[ref] = obj
	return obj
}

// AddApp registers an application root named name on bus and lists it in
// the registry after any previously added applications.
func (b *Bus) AddApp(bus, name string) *Object {
	ref := model.ObjectRef{Bus: bus, Path: platform.RootPath}
	obj := b.Add(ref, &Object{
		Interfaces: []string{platform.AccessibleInterface, "org.a11y.atspi.Application"},
		Role:       "application",
		Props:      map[string]any{platform.PropName: name},
	})
	b.mu.Lock()
	b.apps = append(b.apps, ref)
	b.mu.Unlock()
	return obj
}

// AddChild registers a child object under parent and returns it.
func (b *Bus) AddChild(parent model.ObjectRef, path, name, role string) (model.ObjectRef, *Object) {
	ref := model.ObjectRef{Bus: parent.Bus, Path: path}
	obj := b.Add(ref, &Object{
		Interfaces: []string{platform.AccessibleInterface},
		Role:       role,
		Props:      map[string]any{platform.PropName: name},
	})
	b.mu.Lock()
	if p, ok := b.objects[parent]; ok {
		p.Children = append(p.Children, ref)
	}
	b.mu.Unlock()
	return ref, obj
}

// Object returns the object registered at ref.
func (b *Bus) Object(ref model.ObjectRef) *Object {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.objects[ref]
}

// Calls returns the recorded method calls as "Method bus path" strings.
func (b *Bus) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

// Closed reports whether Close was called.
func (b *Bus) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

func (b *Bus) lookup(method string, ref model.ObjectRef) (*Object, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, fmt.Sprintf("%s %s %s", method, ref.Bus, ref.Path))
	obj, ok := b.objects[ref]
	if !ok {
		return nil, &platform.RemoteError{Name: ErrUnknownObject, Message: fmt.Sprintf("no object at %s", ref)}
	}
	return obj, nil
}

// Applications returns the registered application roots in registration order.
func (b *Bus) Applications(ctx context.Context) ([]model.ObjectRef, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, "Applications")
	if b.AppsErr != nil {
		return nil, b.AppsErr
	}
	return append([]model.ObjectRef(nil), b.apps...), nil
}

// Introspect implements platform.Bus.
func (b *Bus) Introspect(ctx context.Context, ref model.ObjectRef) ([]string, error) {
	obj, err := b.lookup("Introspect", ref)
	if err != nil {
		return nil, err
	}
	if obj.IntrospectErr != nil {
		return nil, obj.IntrospectErr
	}
	return append([]string(nil), obj.Interfaces...), nil
}

// Property implements platform.Bus.
func (b *Bus) Property(ctx context.Context, ref model.ObjectRef, name string) (any, error) {
	obj, err := b.lookup("Property."+name, ref)
	if err != nil {
		return nil, err
	}
	if err := obj.PropErrs[name]; err != nil {
		return nil, err
	}
	v, ok := obj.Props[name]
	if !ok {
		return nil, &platform.RemoteError{Name: ErrUnknownProperty, Message: fmt.Sprintf("no property %q", name)}
	}
	return v, nil
}

// Children implements platform.Bus.
func (b *Bus) Children(ctx context.Context, ref model.ObjectRef) ([]model.ObjectRef, error) {
	obj, err := b.lookup("Children", ref)
	if err != nil {
		return nil, err
	}
	if obj.ChildrenErr != nil {
		return nil, obj.ChildrenErr
	}
	return append([]model.ObjectRef(nil), obj.Children...), nil
}

// RoleName implements platform.Bus.
func (b *Bus) RoleName(ctx context.Context, ref model.ObjectRef) (string, error) {
	obj, err := b.lookup("RoleName", ref)
	if err != nil {
		return "", err
	}
	if obj.RoleErr != nil {
		return "", obj.RoleErr
	}
	return obj.Role, nil
}

// Close implements platform.Bus.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}
