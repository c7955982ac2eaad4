// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrConfigCreated is returned when the config file did not exist and a
	// placeholder was written in its place. The user is expected to edit it
	// and run again.
	ErrConfigCreated = errors.New("config file created with placeholder values")

	// ErrMissingKeys indicates that one or more of host, user and password
	// are not set by any source. The error message names the missing keys.
	ErrMissingKeys = errors.New("missing required config keys")

	// ErrInvalidHost indicates that the host is not a valid http(s) or
	// ftp(s) URL.
	ErrInvalidHost = errors.New("host URL is not valid")

	// ErrInvalidWorkers indicates a negative worker limit or rate limit.
	ErrInvalidWorkers = errors.New("invalid workers configuration")

	errFileNotFound = errors.New("config file not found")
)
