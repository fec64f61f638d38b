package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// defaultFilePath returns $XDG_CONFIG_HOME/atspi-inspect/config.toml, or ""
// when no user config directory is known.
func defaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "atspi-inspect", "config.toml")
}

// parseFile decodes the TOML file at path. A missing file is an error only
// when required is set; otherwise it yields a nil config.
func parseFile(path string, required bool) (*Config, error) {
	cfg := &Config{}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config file %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
