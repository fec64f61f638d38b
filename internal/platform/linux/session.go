//go:build linux

package linux

import (
	"fmt"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

const (
	a11yBusName      = "org.a11y.Bus"
	a11yBusPath      = dbus.ObjectPath("/org/a11y/bus")
	a11yBusInterface = "org.a11y.Bus"
	a11yStatusProp   = "org.a11y.Status.IsEnabled"
)

// discoverAddress asks the session bus for the accessibility bus address.
// Before asking, it switches session accessibility on so toolkits start
// publishing their trees; failing to do so is logged and otherwise ignored.
func discoverAddress(logger *slog.Logger) (string, error) {
	session, err := dbus.ConnectSessionBus()
	if err != nil {
		return "", fmt.Errorf("session bus: %w", err)
	}
	defer session.Close()

	obj := session.Object(a11yBusName, a11yBusPath)
	if err := obj.SetProperty(a11yStatusProp, dbus.MakeVariant(true)); err != nil {
		logger.Warn("could not enable session accessibility", "error", err)
	}

	var address string
	if err := obj.Call(a11yBusInterface+".GetAddress", 0).Store(&address); err != nil {
		return "", fmt.Errorf("get accessibility bus address: %w", remoteError(err))
	}
	if address == "" {
		return "", fmt.Errorf("get accessibility bus address: empty address")
	}
	return address, nil
}
