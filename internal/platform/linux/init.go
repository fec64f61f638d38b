//go:build linux

package linux

import "github.com/mj1618/atspi-inspect/internal/platform"

func init() {
	platform.NewBusFunc = func(opts platform.Options) (platform.Bus, error) {
		return NewBus(opts)
	}
}
