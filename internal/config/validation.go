package config

import (
	"fmt"
	"strings"
)

func (c *Config) validate() error {
	switch c.Format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("invalid format %q: use text, yaml, or json", c.Format)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max depth %d: must be >= 0", c.MaxDepth)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: use debug, info, warn, or error", c.LogLevel)
	}
	return nil
}
