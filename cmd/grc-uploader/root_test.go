// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/grc-uploader/internal/app"
	"github.com/MKhiriev/grc-uploader/internal/config"
	"github.com/MKhiriev/grc-uploader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastLogEntry decodes the last JSON log line written to buf.
func lastLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines[len(lines)-1], "no log output")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestRootCommand_RequiresExactlyOneArgument(t *testing.T) {
	for _, args := range [][]string{{}, {"a.yaml", "b.yaml"}} {
		var out bytes.Buffer
		cmd := newRootCommand(models.NewAppBuildInfo("", "", ""))
		cmd.SetArgs(args)
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.execute(context.Background())
		require.Error(t, err)
		assert.Equal(t, app.ExitFailure, app.ExitCode(err))

		entry := lastLogEntry(t, &out)
		assert.Equal(t, "error", entry["level"])
		assert.Equal(t, msgUsage, entry["message"])
		assert.Contains(t, entry["error"], "arg(s)")
	}
}

func TestRootCommand_UnknownFlagIsLogged(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand(models.NewAppBuildInfo("", "", ""))
	cmd.SetArgs([]string{"--no-such-flag", "results.yaml"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	require.Error(t, cmd.execute(context.Background()))
	entry := lastLogEntry(t, &out)
	assert.Equal(t, "error", entry["level"])
	assert.Contains(t, entry["error"], "no-such-flag")
}

func TestRootCommand_Version(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand(models.NewAppBuildInfo("1.2.3", "", "abc"))
	cmd.SetArgs([]string{"--version"})
	cmd.SetOut(&out)

	require.NoError(t, cmd.execute(context.Background()))
	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "abc")
}

func TestRootCommand_CreatesPlaceholderConfigAndExitsZero(t *testing.T) {
	for _, key := range []string{"GRC_HOST", "GRC_USER", "GRC_PASSWORD", "GRC_CONFIG"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	path := filepath.Join(t.TempDir(), "init.yaml")

	var out bytes.Buffer
	cmd := newRootCommand(models.NewAppBuildInfo("", "", ""))
	cmd.SetArgs([]string{"--config", path, "results.yaml"})
	cmd.SetOut(&out)

	err := cmd.execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfigCreated)
	assert.Equal(t, "info", lastLogEntry(t, &out)["level"])
	assert.Equal(t, app.ExitOK, app.ExitCode(err))
	assert.FileExists(t, path)
}

func TestRootCommand_MissingKeysNeverLogsIn(t *testing.T) {
	for _, key := range []string{"GRC_HOST", "GRC_USER", "GRC_PASSWORD", "GRC_CONFIG"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	path := filepath.Join(t.TempDir(), "init.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: http://127.0.0.1:1\nuser: sam\n"), 0o600))

	var out bytes.Buffer
	cmd := newRootCommand(models.NewAppBuildInfo("", "", ""))
	cmd.SetArgs([]string{"--config", path, "results.yaml"})
	cmd.SetOut(&out)

	err := cmd.execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingKeys)

	entry := lastLogEntry(t, &out)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, app.MsgMissingKeys, entry["message"])
	assert.Contains(t, err.Error(), "password")
	assert.Equal(t, app.ExitFailure, app.ExitCode(err))
}
