// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAdd(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		wantErr string
	}{
		{
			name: "valid target",
			target: Target{
				Name:  "deploy",
				Steps: []Step{NewStep("deploy ${ENV}")},
			},
		},
		{
			name:    "missing name",
			target:  Target{Steps: []Step{NewStep("true")}},
			wantErr: "no name",
		},
		{
			name:    "missing steps",
			target:  Target{Name: "empty"},
			wantErr: "no steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Add(tt.target)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			got, ok := r.Lookup(tt.target.Name)
			require.True(t, ok)
			assert.Equal(t, tt.target.Name, got.Name)
			// Uncategorized targets land in "general".
			assert.Equal(t, "general", got.Category)
		})
	}
}

func TestRegistryDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(Target{Name: "deploy", Steps: []Step{NewStep("true")}}))

	err := r.Add(Target{Name: "deploy", Steps: []Step{NewStep("false")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")
}

func TestRegistryGrouping(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(Target{Name: "b", Category: "two", Steps: []Step{NewStep("true")}}))
	require.NoError(t, r.Add(Target{Name: "a", Category: "one", Steps: []Step{NewStep("true")}}))
	require.NoError(t, r.Add(Target{Name: "c", Category: "one", Steps: []Step{NewStep("true")}}))

	assert.Equal(t, []string{"a", "b", "c"}, r.Names())
	assert.Equal(t, []string{"one", "two"}, r.Categories())

	one := r.ByCategory("one")
	require.Len(t, one, 2)
	assert.Equal(t, "a", one[0].Name)
	assert.Equal(t, "c", one[1].Name)
}

func TestNewStepDerivesPlaceholders(t *testing.T) {
	s := NewStep("terraform -chdir=${SERVICE}/terraform plan -var-file=${ENV}.tfvars")
	assert.Equal(t, []string{"SERVICE", "ENV"}, s.Placeholders)
}

func TestBuiltin(t *testing.T) {
	r := Builtin()

	plan, ok := r.Lookup("terraform-plan")
	require.True(t, ok)
	assert.Equal(t, []string{"SERVICE", "ENV"}, plan.Guards)
	require.Len(t, plan.Steps, 2)
	assert.Contains(t, plan.Steps[0].Template, "init")
	assert.Contains(t, plan.Steps[1].Template, "plan")

	assert.Contains(t, r.Categories(), "terraform")
	assert.Contains(t, r.Categories(), "aws")
	assert.Contains(t, r.Categories(), "quality")
}
