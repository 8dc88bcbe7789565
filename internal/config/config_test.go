// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig materializes a config file, points RUNCTL_CFG_FILE at it,
// and resets the global Config so the next getter reloads.
func writeTestConfig(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "runctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("RUNCTL_CFG_FILE", path)

	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	writeTestConfig(t, `
color: true
manifests:
  - targets.yaml
run:
  staging:
    - ENV=staging
    - SERVICE=api
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Source)
	assert.Contains(t, cfg.Data, "manifests")
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("RUNCTL_CFG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()
	assert.Error(t, err)
}

func TestGetString(t *testing.T) {
	writeTestConfig(t, `
output: yaml
ls:
  output: json
`)

	_, err := Load()
	require.NoError(t, err)

	v, err := GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "yaml", v)

	// Dotted paths traverse nested maps.
	v, err = GetString("ls.output")
	require.NoError(t, err)
	assert.Equal(t, "json", v)

	// Missing key falls back to the provided default.
	v, err = GetString("missing", "text")
	require.NoError(t, err)
	assert.Equal(t, "text", v)

	// Missing key with no default errors.
	_, err = GetString("missing")
	assert.Error(t, err)
}

func TestGetBool(t *testing.T) {
	writeTestConfig(t, "color: true\n")

	_, err := Load()
	require.NoError(t, err)

	v, err := GetBool("color")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = GetBool("missing", false)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestGetStringSliceNamespaced(t *testing.T) {
	writeTestConfig(t, `
run:
  staging:
    - ENV=staging
    - SERVICE=api
`)

	_, err := Load("run")
	require.NoError(t, err)

	// The namespaced key "run.staging" is preferred for the bare "staging".
	v, err := GetStringSlice("staging")
	require.NoError(t, err)
	assert.Equal(t, []string{"ENV=staging", "SERVICE=api"}, v)
}
