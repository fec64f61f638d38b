//go:build linux

package linux

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"slices"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/mj1618/atspi-inspect/internal/model"
	"github.com/mj1618/atspi-inspect/internal/platform"
)

const (
	introspectMethod = "org.freedesktop.DBus.Introspectable.Introspect"
	propertiesGet    = "org.freedesktop.DBus.Properties.Get"
	getChildren      = platform.AccessibleInterface + ".GetChildren"
	getRoleName      = platform.AccessibleInterface + ".GetRoleName"
)

// DBusBus implements platform.Bus over a dedicated accessibility bus connection.
type DBusBus struct {
	conn   *dbus.Conn
	logger *slog.Logger
}

// NewBus connects to the accessibility bus. When opts.Address is empty the
// address is discovered through the session bus.
func NewBus(opts platform.Options) (*DBusBus, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	address := opts.Address
	if address == "" {
		var err error
		address, err = discoverAddress(logger)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", platform.ErrConnection, err)
		}
	}
	logger.Debug("connecting to accessibility bus", "address", address)

	conn, err := dbus.Connect(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", platform.ErrConnection, address, err)
	}
	return &DBusBus{conn: conn, logger: logger}, nil
}

func (b *DBusBus) object(ref model.ObjectRef) dbus.BusObject {
	return b.conn.Object(ref.Bus, dbus.ObjectPath(ref.Path))
}

// Applications lists the registry's children, most recently registered first.
func (b *DBusBus) Applications(ctx context.Context) ([]model.ObjectRef, error) {
	apps, err := b.Children(ctx, model.ObjectRef{Bus: platform.RegistryName, Path: platform.RootPath})
	if err != nil {
		return nil, fmt.Errorf("list registered applications: %w", err)
	}
	slices.Reverse(apps)
	return apps, nil
}

// Introspect returns the interfaces implemented at ref.
func (b *DBusBus) Introspect(ctx context.Context, ref model.ObjectRef) ([]string, error) {
	var data string
	if err := b.object(ref).CallWithContext(ctx, introspectMethod, 0).Store(&data); err != nil {
		return nil, remoteError(err)
	}
	var node introspect.Node
	if err := xml.Unmarshal([]byte(data), &node); err != nil {
		return nil, fmt.Errorf("decode introspection data for %s: %w", ref, err)
	}
	names := make([]string, 0, len(node.Interfaces))
	for _, iface := range node.Interfaces {
		names = append(names, iface.Name)
	}
	return names, nil
}

// Property reads one Accessible property at ref.
func (b *DBusBus) Property(ctx context.Context, ref model.ObjectRef, name string) (any, error) {
	var v dbus.Variant
	err := b.object(ref).CallWithContext(ctx, propertiesGet, 0, platform.AccessibleInterface, name).Store(&v)
	if err != nil {
		return nil, remoteError(err)
	}
	return decodeValue(v.Value())
}

// Children lists the accessible children of ref.
func (b *DBusBus) Children(ctx context.Context, ref model.ObjectRef) ([]model.ObjectRef, error) {
	var raw []wireRef
	if err := b.object(ref).CallWithContext(ctx, getChildren, 0).Store(&raw); err != nil {
		return nil, remoteError(err)
	}
	refs := make([]model.ObjectRef, len(raw))
	for i, r := range raw {
		refs[i] = r.ref()
	}
	return refs, nil
}

// RoleName returns the role name of ref.
func (b *DBusBus) RoleName(ctx context.Context, ref model.ObjectRef) (string, error) {
	var role string
	if err := b.object(ref).CallWithContext(ctx, getRoleName, 0).Store(&role); err != nil {
		return "", remoteError(err)
	}
	return role, nil
}

// Close closes the accessibility bus connection.
func (b *DBusBus) Close() error {
	return b.conn.Close()
}
