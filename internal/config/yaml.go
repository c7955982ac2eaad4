// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredYAMLConfig is the on-disk layout of the config file. The
// platform keys stay at the top level so that a minimal file is just
// host, user and password.
type StructuredYAMLConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	Transport struct {
		RetryCount         int           `yaml:"retry_count"`
		RetryWait          time.Duration `yaml:"retry_wait"`
		Timeout            time.Duration `yaml:"timeout"`
		InsecureSkipVerify bool          `yaml:"insecure_skip_verify"`
	} `yaml:"transport,omitempty"`

	Workers struct {
		Limit     int     `yaml:"limit"`
		RateLimit float64 `yaml:"rate_limit"`
	} `yaml:"workers,omitempty"`

	Upload struct {
		SkipExisting   bool   `yaml:"skip_existing"`
		AssessmentType string `yaml:"assessment_type"`
		Status         string `yaml:"status"`
	} `yaml:"upload,omitempty"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log,omitempty"`
}

// placeholder is written when the config file is missing.
type placeholder struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

var placeholderValues = placeholder{
	Host:     "https://dev.regscale.com",
	User:     "sam",
	Password: "hunter2",
}

func parseYAML(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", errFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}

	var yamlCfg StructuredYAMLConfig
	if err = yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	cfg := &StructuredConfig{
		Platform: Platform{
			Host:     yamlCfg.Host,
			User:     yamlCfg.User,
			Password: yamlCfg.Password,
		},
		Transport: Transport{
			RetryCount:         yamlCfg.Transport.RetryCount,
			RetryWait:          yamlCfg.Transport.RetryWait,
			Timeout:            yamlCfg.Transport.Timeout,
			InsecureSkipVerify: yamlCfg.Transport.InsecureSkipVerify,
		},
		Workers: Workers{
			Limit:     yamlCfg.Workers.Limit,
			RateLimit: yamlCfg.Workers.RateLimit,
		},
		Upload: Upload{
			SkipExisting:   yamlCfg.Upload.SkipExisting,
			AssessmentType: yamlCfg.Upload.AssessmentType,
			Status:         yamlCfg.Upload.Status,
		},
		Log: Log{
			Level: yamlCfg.Log.Level,
		},
	}

	return cfg, nil
}

// writePlaceholder creates path with placeholder credentials. It never
// overwrites an existing file.
func writePlaceholder(path string) error {
	data, err := yaml.Marshal(placeholderValues)
	if err != nil {
		return fmt.Errorf("error encoding placeholder config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer f.Close()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}
