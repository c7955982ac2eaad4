// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHost(t *testing.T) {
	tests := []struct {
		name  string
		host  string
		valid bool
	}{
		{name: "https domain", host: "https://grc.example.com", valid: true},
		{name: "http with port", host: "http://grc.example.com:8080", valid: true},
		{name: "with path", host: "https://grc.example.com/api", valid: true},
		{name: "trailing slash", host: "https://grc.example.com/", valid: true},
		{name: "upper case", host: "HTTPS://GRC.EXAMPLE.COM", valid: true},
		{name: "localhost", host: "http://localhost:8080", valid: true},
		{name: "ipv4", host: "http://127.0.0.1:5000", valid: true},
		{name: "ftps", host: "ftps://files.example.com", valid: true},
		{name: "no scheme", host: "grc.example.com", valid: false},
		{name: "unsupported scheme", host: "ws://grc.example.com", valid: false},
		{name: "empty", host: "", valid: false},
		{name: "spaces", host: "https://grc example.com", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHost(tt.host)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidHost)
		})
	}
}

func TestMissingKeys(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		want     []string
	}{
		{name: "all set", platform: Platform{Host: "https://a.example.com", User: "u", Password: "p"}, want: nil},
		{name: "none set", platform: Platform{}, want: []string{"host", "user", "password"}},
		{name: "password only missing", platform: Platform{Host: "https://a.example.com", User: "u"}, want: []string{"password"}},
		{name: "blank user", platform: Platform{Host: "https://a.example.com", User: "  ", Password: "p"}, want: []string{"user"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{Platform: tt.platform}
			assert.Equal(t, tt.want, cfg.missingKeys())
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validConfig().validate())
	})

	t.Run("missing keys named in error", func(t *testing.T) {
		cfg := validConfig()
		cfg.Platform.User = ""
		cfg.Platform.Password = ""

		err := cfg.validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingKeys)
		assert.Contains(t, err.Error(), "user, password")
	})

	t.Run("negative workers", func(t *testing.T) {
		cfg := validConfig()
		cfg.Workers.Limit = -1
		assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkers)
	})

	t.Run("negative rate limit", func(t *testing.T) {
		cfg := validConfig()
		cfg.Workers.RateLimit = -0.5
		assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkers)
	})
}
