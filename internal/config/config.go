// Package config assembles CLI settings from flags, environment variables,
// an optional TOML file and built-in defaults, in that order of precedence.
package config

// Config holds the settings shared by all commands.
type Config struct {
	// BusAddress is a D-Bus address for the accessibility bus. Empty means
	// discover it through the session bus.
	// Env: AT_SPI_BUS_ADDRESS
	BusAddress string `toml:"bus_address" env:"AT_SPI_BUS_ADDRESS"`

	// Format is the output format: text, yaml or json.
	// Env: ATSPI_INSPECT_FORMAT
	Format string `toml:"format" env:"ATSPI_INSPECT_FORMAT"`

	// MaxDepth bounds tree walks (0 = unlimited).
	// Env: ATSPI_INSPECT_MAX_DEPTH
	MaxDepth int `toml:"max_depth" env:"ATSPI_INSPECT_MAX_DEPTH"`

	// LogLevel is one of debug, info, warn, error.
	// Env: ATSPI_INSPECT_LOG_LEVEL
	LogLevel string `toml:"log_level" env:"ATSPI_INSPECT_LOG_LEVEL"`

	// FilePath is the TOML file to read. Not read from the file itself.
	// Env: ATSPI_INSPECT_CONFIG
	FilePath string `toml:"-" env:"ATSPI_INSPECT_CONFIG"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Format:   "text",
		MaxDepth: 0,
		LogLevel: "warn",
	}
}

// Override sets a field after the layers are merged. It carries explicit
// values that mergo would treat as unset, such as a zero max depth.
type Override func(*Config)

// WithMaxDepth forces MaxDepth to n, including 0 (unlimited).
func WithMaxDepth(n int) Override {
	return func(c *Config) { c.MaxDepth = n }
}

// Load builds the effective configuration. Non-zero fields of flags win over
// the environment, which wins over the file, which wins over Default.
// Overrides are applied last.
func Load(flags Config, overrides ...Override) (*Config, error) {
	return newBuilder().
		with(&flags).
		withEnv().
		withFile().
		with(Default()).
		withOverrides(overrides...).
		build()
}
