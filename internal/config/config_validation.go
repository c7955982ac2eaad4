// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// hostPattern accepts http(s) and ftp(s) URLs whose host is a domain name,
// localhost or a dotted IPv4 address, with an optional port and path.
var hostPattern = regexp.MustCompile(`(?i)^(?:http|ftp)s?://` +
	`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+(?:[A-Z]{2,6}\.?|[A-Z0-9-]{2,}\.?)|` +
	`localhost|` +
	`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
	`(?::\d+)?` +
	`(?:/?|[/?]\S+)$`)

// ValidateHost reports whether host is a usable platform URL.
func ValidateHost(host string) error {
	if !hostPattern.MatchString(host) {
		return fmt.Errorf("%w: %q", ErrInvalidHost, host)
	}
	return nil
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup: the platform keys are present,
// the host is a valid URL and the worker settings are not negative.
func (cfg *StructuredConfig) validate() error {
	if missing := cfg.missingKeys(); len(missing) > 0 {
		return fmt.Errorf("%w: %s (set them in %s)", ErrMissingKeys, strings.Join(missing, ", "), cfg.FilePath)
	}

	if err := ValidateHost(cfg.Platform.Host); err != nil {
		return err
	}

	if cfg.Workers.Limit < 0 || cfg.Workers.RateLimit < 0 {
		return errors.Join(ErrInvalidWorkers,
			fmt.Errorf("limit=%d rate_limit=%g", cfg.Workers.Limit, cfg.Workers.RateLimit))
	}

	return nil
}

// missingKeys lists the required platform keys that are empty, in the
// order host, user, password.
func (cfg *StructuredConfig) missingKeys() []string {
	var missing []string
	if strings.TrimSpace(cfg.Platform.Host) == "" {
		missing = append(missing, "host")
	}
	if strings.TrimSpace(cfg.Platform.User) == "" {
		missing = append(missing, "user")
	}
	if cfg.Platform.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}
