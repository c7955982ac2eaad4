// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempYAMLConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "init.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return flags
}

func clearPlatformEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GRC_HOST", "GRC_USER", "GRC_PASSWORD", "GRC_CONFIG"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Platform = Platform{Host: "https://grc.example.com", User: "sam", Password: "hunter2"}
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.base)
	assert.Nil(t, b.file)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersOverride verifies that the layer order is
// base < file < configs and that zero values never override.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.file = &StructuredConfig{
		Platform: Platform{Host: "https://file.example.com", User: "file-user", Password: "file-pass"},
		Workers:  Workers{Limit: 5},
	}
	b.configs = append(b.configs,
		&StructuredConfig{Platform: Platform{User: "env-user"}},
		&StructuredConfig{Platform: Platform{Host: "https://flag.example.com"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", cfg.Platform.Host)
	assert.Equal(t, "env-user", cfg.Platform.User)
	assert.Equal(t, "file-pass", cfg.Platform.Password)
	assert.Equal(t, 5, cfg.Workers.Limit)
	assert.Equal(t, defaults().Transport.RetryCount, cfg.Transport.RetryCount)
	assert.Equal(t, "info", cfg.Log.Level)
}

// ── withYAML ──────────────────────────────────────────────────────────────────

func TestWithYAML_ReadsFileFromResolvedPath(t *testing.T) {
	path := writeTempYAMLConfig(t, "host: https://grc.example.com\nuser: sam\npassword: hunter2\n")

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withYAML()

	require.NoError(t, b.err)
	require.NotNil(t, b.file)
	assert.Equal(t, "https://grc.example.com", b.file.Platform.Host)
}

func TestWithYAML_MissingFileWritesPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.yaml")

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withYAML()

	require.Error(t, b.err)
	assert.ErrorIs(t, b.err, ErrConfigCreated)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "host: https://dev.regscale.com\nuser: sam\npassword: hunter2\n", string(data))
}

func TestWithYAML_MissingFileWithCredentialsElsewhere(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.yaml")

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		FilePath: path,
		Platform: Platform{Host: "https://grc.example.com", User: "sam", Password: "hunter2"},
	})
	b.withYAML()

	require.NoError(t, b.err)
	assert.Nil(t, b.file)
	assert.NoFileExists(t, path)
}

func TestWithYAML_SkipsWhenBuilderAlreadyFailed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.yaml")

	b := newConfigBuilder().withDefaults()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withYAML()

	assert.ErrorIs(t, b.err, assert.AnError)
	assert.NoFileExists(t, path)
}

func TestWithYAML_MalformedFile(t *testing.T) {
	path := writeTempYAMLConfig(t, "host: [unterminated\n")

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withYAML()

	require.Error(t, b.err)
	assert.NotErrorIs(t, b.err, ErrConfigCreated)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_FileOnly(t *testing.T) {
	clearPlatformEnv(t)
	path := writeTempYAMLConfig(t, `host: https://grc.example.com
user: sam
password: hunter2
transport:
  retry_count: 2
  timeout: 30s
workers:
  limit: 8
upload:
  skip_existing: true
log:
  level: debug
`)

	cfg, err := GetStructuredConfig(parseFlags(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, "https://grc.example.com", cfg.Platform.Host)
	assert.Equal(t, "sam", cfg.Platform.User)
	assert.Equal(t, "hunter2", cfg.Platform.Password)
	assert.Equal(t, 2, cfg.Transport.RetryCount)
	assert.Equal(t, 30*time.Second, cfg.Transport.Timeout)
	assert.Equal(t, 8, cfg.Workers.Limit)
	assert.True(t, cfg.Upload.SkipExisting)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, path, cfg.FilePath)
}

func TestGetStructuredConfig_EnvOverridesFile(t *testing.T) {
	clearPlatformEnv(t)
	path := writeTempYAMLConfig(t, "host: https://grc.example.com\nuser: sam\npassword: hunter2\n")
	t.Setenv("GRC_PASSWORD", "from-env")
	t.Setenv("GRC_WORKERS_LIMIT", "3")

	cfg, err := GetStructuredConfig(parseFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Platform.Password)
	assert.Equal(t, 3, cfg.Workers.Limit)
}

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	clearPlatformEnv(t)
	path := writeTempYAMLConfig(t, "host: https://grc.example.com\nuser: sam\npassword: hunter2\n")
	t.Setenv("GRC_USER", "env-user")

	cfg, err := GetStructuredConfig(parseFlags(t, "--config", path, "--user", "flag-user", "--workers", "4"))
	require.NoError(t, err)
	assert.Equal(t, "flag-user", cfg.Platform.User)
	assert.Equal(t, 4, cfg.Workers.Limit)
}

func TestGetStructuredConfig_ExplicitZeroFlagsOverrideFile(t *testing.T) {
	clearPlatformEnv(t)
	path := writeTempYAMLConfig(t, `host: https://grc.example.com
user: sam
password: hunter2
transport:
  retry_count: 2
  insecure_skip_verify: true
upload:
  skip_existing: true
`)

	cfg, err := GetStructuredConfig(parseFlags(t, "--config", path, "--retries", "0", "--skip-existing=false", "--insecure=false"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Transport.RetryCount)
	assert.False(t, cfg.Upload.SkipExisting)
	assert.False(t, cfg.Transport.InsecureSkipVerify)
}

func TestGetStructuredConfig_UnsetFlagsKeepFileValues(t *testing.T) {
	clearPlatformEnv(t)
	path := writeTempYAMLConfig(t, "host: https://grc.example.com\nuser: sam\npassword: hunter2\nupload:\n  skip_existing: true\n")

	cfg, err := GetStructuredConfig(parseFlags(t, "--config", path))
	require.NoError(t, err)
	assert.True(t, cfg.Upload.SkipExisting)
	assert.Equal(t, defaults().Transport.RetryCount, cfg.Transport.RetryCount)
}

func TestGetStructuredConfig_EnvSelectsConfigPath(t *testing.T) {
	clearPlatformEnv(t)
	path := writeTempYAMLConfig(t, "host: https://grc.example.com\nuser: sam\npassword: hunter2\n")
	t.Setenv("GRC_CONFIG", path)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.FilePath)
	assert.Equal(t, "sam", cfg.Platform.User)
}

func TestGetStructuredConfig_CreatesPlaceholder(t *testing.T) {
	clearPlatformEnv(t)
	path := filepath.Join(t.TempDir(), "init.yaml")

	cfg, err := GetStructuredConfig(parseFlags(t, "--config", path))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigCreated)
	assert.FileExists(t, path)
}

func TestGetStructuredConfig_MissingKeys(t *testing.T) {
	clearPlatformEnv(t)
	path := writeTempYAMLConfig(t, "host: https://grc.example.com\n")

	_, err := GetStructuredConfig(parseFlags(t, "--config", path))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingKeys)
	assert.Contains(t, err.Error(), "user, password")
}

func TestGetStructuredConfig_InvalidHost(t *testing.T) {
	clearPlatformEnv(t)
	path := writeTempYAMLConfig(t, "host: grc.example.com\nuser: sam\npassword: hunter2\n")

	_, err := GetStructuredConfig(parseFlags(t, "--config", path))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHost)
}
