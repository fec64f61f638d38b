package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs   []*Config
	overrides []Override
	err       error
}

func newBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 4),
	}
}

// build merges the collected layers; earlier layers take precedence.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	cfg := new(Config)
	for _, layer := range b.configs {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	for _, apply := range b.overrides {
		apply(cfg)
	}

	return cfg, cfg.validate()
}

func (b *configBuilder) withOverrides(overrides ...Override) *configBuilder {
	b.overrides = append(b.overrides, overrides...)
	return b
}

func (b *configBuilder) with(cfg *Config) *configBuilder {
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withFile reads the TOML file named by an earlier layer, or the default
// location when none names one. Only an explicitly named file must exist.
func (b *configBuilder) withFile() *configBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
			break
		}
	}

	explicit := path != ""
	if !explicit {
		path = defaultFilePath()
		if path == "" {
			return b
		}
	}

	fileCfg, err := parseFile(path, explicit)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if fileCfg != nil {
		b.configs = append(b.configs, fileCfg)
	}
	return b
}
