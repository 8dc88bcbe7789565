// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runctl/runctl/internal/target"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const yamlManifest = `
targets:
  - name: db-migrate
    category: database
    usage: run pending schema migrations
    guards: [DB_URL]
    steps:
      - migrate -database ${DB_URL} up
  - name: smoke
    steps:
      - curl -fsS ${BASE_URL}/healthz
`

func TestLoadYAML(t *testing.T) {
	path := writeManifest(t, "targets.yaml", yamlManifest)

	targets, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, targets, 2)

	assert.Equal(t, "db-migrate", targets[0].Name)
	assert.Equal(t, "database", targets[0].Category)
	assert.Equal(t, []string{"DB_URL"}, targets[0].Guards)
	require.Len(t, targets[0].Steps, 1)
	assert.Equal(t, []string{"DB_URL"}, targets[0].Steps[0].Placeholders)

	assert.Equal(t, "smoke", targets[1].Name)
	assert.Empty(t, targets[1].Guards)
}

func TestLoadJSON(t *testing.T) {
	path := writeManifest(t, "targets.json", `{
  "targets": [
    {
      "name": "db-migrate",
      "category": "database",
      "usage": "run pending schema migrations",
      "guards": ["DB_URL"],
      "steps": ["migrate -database ${DB_URL} up"]
    }
  ]
}`)

	targets, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "db-migrate", targets[0].Name)
	assert.Equal(t, []string{"DB_URL"}, targets[0].Guards)
	assert.Equal(t, "migrate -database ${DB_URL} up", targets[0].Steps[0].Template)
}

func TestLoadJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid json", content: "{nope"},
		{name: "missing targets array", content: `{"target": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, "targets.json", tt.content)
			_, err := Load(context.Background(), path)
			assert.Error(t, err)
		})
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeManifest(t, "targets.toml", "")
	_, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported manifest format")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	path := writeManifest(t, "targets.yaml", yamlManifest)

	reg := target.NewRegistry()
	require.NoError(t, Apply(context.Background(), reg, []string{path}))
	assert.Equal(t, 2, reg.Len())

	// A second pass re-registers the same names and must fail loudly.
	err := Apply(context.Background(), reg, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")
}

func TestSplitS3URI(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{name: "valid", src: "s3://team-bucket/runctl/targets.yaml", wantBucket: "team-bucket", wantKey: "runctl/targets.yaml"},
		{name: "missing key", src: "s3://team-bucket", wantErr: true},
		{name: "missing bucket", src: "s3:///targets.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := splitS3URI(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
