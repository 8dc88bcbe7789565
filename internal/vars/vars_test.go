// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	pairs := map[string]string{"ENV": "prod"}
	env := New(pairs)

	pairs["ENV"] = "mutated"

	v, ok := env.Lookup("ENV")
	require.True(t, ok)
	assert.Equal(t, "prod", v)
}

func TestMergeOverridesWin(t *testing.T) {
	base := New(map[string]string{"ENV": "dev", "SERVICE": "api"})
	merged := base.Merge(map[string]string{"ENV": "prod"})

	v, _ := merged.Lookup("ENV")
	assert.Equal(t, "prod", v)

	v, _ = merged.Lookup("SERVICE")
	assert.Equal(t, "api", v)

	// The receiver is untouched.
	v, _ = base.Lookup("ENV")
	assert.Equal(t, "dev", v)
}

func TestMissing(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		guards []string
		want   []string
	}{
		{
			name:   "all present",
			values: map[string]string{"SERVICE": "foo", "ENV": "staging"},
			guards: []string{"SERVICE", "ENV"},
			want:   nil,
		},
		{
			name:   "unset variable",
			values: map[string]string{"SERVICE": "foo"},
			guards: []string{"SERVICE", "ENV"},
			want:   []string{"ENV"},
		},
		{
			name:   "empty variable",
			values: map[string]string{"SERVICE": ""},
			guards: []string{"SERVICE"},
			want:   []string{"SERVICE"},
		},
		{
			name:   "whitespace only counts as empty",
			values: map[string]string{"SERVICE": "  \t"},
			guards: []string{"SERVICE"},
			want:   []string{"SERVICE"},
		},
		{
			name:   "multiple missing reported sorted",
			values: map[string]string{},
			guards: []string{"SERVICE", "AWS_REGION", "ENV"},
			want:   []string{"AWS_REGION", "ENV", "SERVICE"},
		},
		{
			name:   "no guards",
			values: map[string]string{},
			guards: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := New(tt.values)
			assert.Equal(t, tt.want, env.Missing(tt.guards))
		})
	}
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantK   string
		wantV   string
		wantErr bool
	}{
		{name: "simple", arg: "ENV=prod", wantK: "ENV", wantV: "prod"},
		{name: "empty value allowed", arg: "ENV=", wantK: "ENV", wantV: ""},
		{name: "value with equals", arg: "OPTS=-a=b", wantK: "OPTS", wantV: "-a=b"},
		{name: "no equals", arg: "ENV", wantErr: true},
		{name: "empty key", arg: "=prod", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, v, err := ParseAssignment(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantK, k)
			assert.Equal(t, tt.wantV, v)
		})
	}
}

func TestIsAssignment(t *testing.T) {
	assert.True(t, IsAssignment("ENV=prod"))
	assert.True(t, IsAssignment("ENV="))
	assert.False(t, IsAssignment("terraform-plan"))
	assert.False(t, IsAssignment("--manifest=x.yaml"))
	assert.False(t, IsAssignment("=prod"))
}

func TestSliceSortedPairs(t *testing.T) {
	env := New(map[string]string{"B": "2", "A": "1"})
	assert.Equal(t, []string{"A=1", "B=2"}, env.Slice())
}
