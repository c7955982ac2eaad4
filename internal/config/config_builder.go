// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	// base is merged before every other layer.
	base *StructuredConfig
	// file is the YAML layer; it sits between base and configs.
	file    *StructuredConfig
	configs []*StructuredConfig
	// flags is applied last, after the mergo fold.
	flags *Flags
	err   error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 2),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config, err := b.merged()
	if err != nil {
		return nil, err
	}

	return config, config.validate()
}

// merged folds all layers in priority order; later non-zero fields win.
// Flags set on the command line win even when they are zero.
func (b *configBuilder) merged() (*StructuredConfig, error) {
	layers := make([]*StructuredConfig, 0, len(b.configs)+2)
	if b.base != nil {
		layers = append(layers, b.base)
	}
	if b.file != nil {
		layers = append(layers, b.file)
	}
	layers = append(layers, b.configs...)

	config := new(StructuredConfig)
	for _, cfg := range layers {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	if b.flags != nil {
		b.flags.overlay(config)
	}
	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.base = defaults()
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *Flags) *configBuilder {
	if flags == nil {
		return b
	}

	b.flags = flags
	return b
}

// withYAML reads the config file whose path is resolved from the layers
// collected so far. A missing file is replaced by a placeholder unless the
// other layers already carry the platform credentials.
func (b *configBuilder) withYAML() *configBuilder {
	if b.err != nil {
		return b
	}

	current, err := b.merged()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	path := current.FilePath
	if path == "" {
		path = DefaultFilePath
	}

	fileCfg, err := parseYAML(path)
	switch {
	case err == nil:
		b.file = fileCfg
	case errors.Is(err, errFileNotFound):
		if len(current.missingKeys()) == 0 {
			return b
		}
		if err = writePlaceholder(path); err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.err = errors.Join(b.err, fmt.Errorf("%w: %s", ErrConfigCreated, path))
	default:
		b.err = errors.Join(b.err, err)
	}

	return b
}
