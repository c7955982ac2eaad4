// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the command-line configuration layer. Only flags the user
// actually set are applied, on top of every other layer.
type Flags struct {
	fs *pflag.FlagSet

	filePath     string
	host         string
	user         string
	logLevel     string
	workers      int
	rateLimit    float64
	retryCount   int
	skipExisting bool
	insecure     bool
}

// BindFlags registers the configuration flags on fs.
//
// Flags:
//
//	-c/--config         YAML config file path
//	--host              platform base URL
//	-u/--user           platform login
//	--log-level         debug|info|warn|error
//	-w/--workers        concurrent assessment posts
//	--rate-limit        assessment posts per second (0 = unlimited)
//	--retries           retries on 500/502/503/504
//	--skip-existing     skip assessments whose title already exists
//	--insecure          skip TLS certificate verification
//
// The password is intentionally not a flag; use the config file or
// GRC_PASSWORD.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.filePath, "config", "c", "", "YAML config file path (default "+DefaultFilePath+")")
	fs.StringVar(&f.host, "host", "", "Platform base URL")
	fs.StringVarP(&f.user, "user", "u", "", "Platform login")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.IntVarP(&f.workers, "workers", "w", 0, "Concurrent assessment posts")
	fs.Float64Var(&f.rateLimit, "rate-limit", 0, "Assessment posts per second (0 = unlimited)")
	fs.IntVar(&f.retryCount, "retries", 0, "Retries on 500/502/503/504 responses")
	fs.BoolVar(&f.skipExisting, "skip-existing", false, "Skip assessments whose title already exists")
	fs.BoolVar(&f.insecure, "insecure", false, "Skip TLS certificate verification")

	return f
}

func (f *Flags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// toConfig returns the flag layer on its own. Unset flags leave zero values.
func (f *Flags) toConfig() *StructuredConfig {
	cfg := &StructuredConfig{}
	f.overlay(cfg)
	return cfg
}

// overlay writes every flag the user set onto cfg, zero and false values
// included. It runs after the other layers are merged because mergo never
// lets a zero value override.
func (f *Flags) overlay(cfg *StructuredConfig) {
	if f.changed("config") {
		cfg.FilePath = f.filePath
	}
	if f.changed("host") {
		cfg.Platform.Host = f.host
	}
	if f.changed("user") {
		cfg.Platform.User = f.user
	}
	if f.changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if f.changed("workers") {
		cfg.Workers.Limit = f.workers
	}
	if f.changed("rate-limit") {
		cfg.Workers.RateLimit = f.rateLimit
	}
	if f.changed("retries") {
		cfg.Transport.RetryCount = f.retryCount
	}
	if f.changed("skip-existing") {
		cfg.Upload.SkipExisting = f.skipExisting
	}
	if f.changed("insecure") {
		cfg.Transport.InsecureSkipVerify = f.insecure
	}
}
