// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runctl/runctl/internal/meta"
	"github.com/runctl/runctl/internal/vars"
)

func TestSplitTargetArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantName      string
		wantOverrides map[string]string
		wantErr       bool
	}{
		{
			name:          "target only",
			args:          []string{"terraform-plan"},
			wantName:      "terraform-plan",
			wantOverrides: map[string]string{},
		},
		{
			name:          "target with assignments",
			args:          []string{"terraform-plan", "SERVICE=foo", "ENV=staging"},
			wantName:      "terraform-plan",
			wantOverrides: map[string]string{"SERVICE": "foo", "ENV": "staging"},
		},
		{
			name:    "no args",
			args:    nil,
			wantErr: true,
		},
		{
			name:    "assignment before target",
			args:    []string{"ENV=staging", "terraform-plan"},
			wantErr: true,
		},
		{
			name:    "junk after target",
			args:    []string{"terraform-plan", "staging"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, overrides, err := SplitTargetArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantOverrides, overrides)
		})
	}
}

func TestBuildEnv(t *testing.T) {
	m := meta.Meta{Vars: vars.New(map[string]string{"ENV": "dev", "SERVICE": "api"})}

	env := BuildEnv(m, map[string]string{"ENV": "prod"})

	v, _ := env.Lookup("ENV")
	assert.Equal(t, "prod", v, "CLI assignments override inherited values")
	v, _ = env.Lookup("SERVICE")
	assert.Equal(t, "api", v)
}
