package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// Options configures how a Bus connection is established.
type Options struct {
	// Address is a D-Bus address for the accessibility bus. When empty the
	// address is discovered through the session bus.
	Address string

	// Logger receives connection diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// ErrUnsupported is returned on platforms without an accessibility bus backend.
var ErrUnsupported = fmt.Errorf("atspi-inspect is not supported on %s/%s; supported: linux", runtime.GOOS, runtime.GOARCH)

// ErrConnection marks a failure to reach the accessibility bus at all.
var ErrConnection = errors.New("cannot connect to the accessibility bus")

// NewBusFunc is set by platform-specific packages via init().
// See internal/platform/linux/init.go for the Linux registration.
var NewBusFunc func(opts Options) (Bus, error)

// Connect opens a Bus for the current OS. Connection failures wrap ErrConnection.
func Connect(opts Options) (Bus, error) {
	if NewBusFunc == nil {
		return nil, ErrUnsupported
	}
	bus, err := NewBusFunc(opts)
	if err != nil {
		if errors.Is(err, ErrConnection) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	return bus, nil
}
