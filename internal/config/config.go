// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/grc-uploader/internal/transport"
	"github.com/MKhiriev/grc-uploader/internal/workers"
	"github.com/MKhiriev/grc-uploader/models"
)

// DefaultFilePath is the YAML config file looked up in the working
// directory when no other path is given.
const DefaultFilePath = "init.yaml"

// StructuredConfig is the top-level configuration container for the
// uploader. It is populated by merging defaults, the YAML config file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: environment variable name, relative to the GRC_ prefix.
type StructuredConfig struct {
	// Platform holds the GRC host and the login credentials. All three
	// fields are required.
	Platform Platform

	// Transport tunes the HTTP session (retries, timeout, TLS).
	Transport Transport `envPrefix:"TRANSPORT_"`

	// Workers tunes the bulk submitter.
	Workers Workers `envPrefix:"WORKERS_"`

	// Upload controls how assessments are built and filtered.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the YAML config file. It is created with placeholder
	// values when missing.
	// Env: GRC_CONFIG
	FilePath string `env:"CONFIG"`
}

// Platform identifies the GRC instance and the account used to log in.
type Platform struct {
	// Host is the base URL of the platform, e.g. "https://grc.example.com".
	// Env: GRC_HOST
	Host string `env:"HOST"`

	// User is the login name.
	// Env: GRC_USER
	User string `env:"USER"`

	// Password is the login password.
	// Env: GRC_PASSWORD
	Password string `env:"PASSWORD"`
}

// Transport holds HTTP session settings.
type Transport struct {
	// RetryCount is the number of retries after the first attempt on a
	// 500/502/503/504 response.
	// Env: GRC_TRANSPORT_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// RetryWait is the backoff factor; waits double on every retry.
	// Env: GRC_TRANSPORT_RETRY_WAIT
	RetryWait time.Duration `env:"RETRY_WAIT"`

	// Timeout bounds a single attempt. Zero means no client-side timeout.
	// Env: GRC_TRANSPORT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// InsecureSkipVerify disables TLS certificate verification.
	// Env: GRC_TRANSPORT_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`
}

// Workers holds bulk submitter settings.
type Workers struct {
	// Limit is the maximum number of assessments posted concurrently.
	// Env: GRC_WORKERS_LIMIT
	Limit int `env:"LIMIT"`

	// RateLimit caps posts per second; zero disables the limiter.
	// Env: GRC_WORKERS_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`
}

// Upload holds settings for assessment construction.
type Upload struct {
	// SkipExisting drops assessments whose title already exists on the
	// platform.
	// Env: GRC_UPLOAD_SKIP_EXISTING
	SkipExisting bool `env:"SKIP_EXISTING"`

	// AssessmentType is written to every assessment.
	// Env: GRC_UPLOAD_ASSESSMENT_TYPE
	AssessmentType string `env:"ASSESSMENT_TYPE"`

	// Status is written to every assessment.
	// Env: GRC_UPLOAD_STATUS
	Status string `env:"STATUS"`
}

// Log holds logger settings.
type Log struct {
	// Level is one of debug, info, warn, error.
	// Env: GRC_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Transport: Transport{
			RetryCount: transport.DefaultRetryCount,
			RetryWait:  transport.DefaultRetryWaitTime,
		},
		Workers: Workers{
			Limit: workers.DefaultWorkers,
		},
		Upload: Upload{
			AssessmentType: models.DefaultAssessmentType,
			Status:         models.DefaultAssessmentStatus,
		},
		Log: Log{
			Level: "info",
		},
		FilePath: DefaultFilePath,
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in the following priority order (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. YAML config file (path resolved from the other sources)
//  3. Environment variables
//  4. Command-line flags
//
// When the YAML file does not exist and the other sources do not provide the
// platform credentials, a placeholder file is written and the returned error
// wraps [ErrConfigCreated].
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withYAML().
		build()
}
