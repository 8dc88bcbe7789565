// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package target

import (
	"fmt"
	"sort"

	"github.com/runctl/runctl/internal/tmpl"
)

// Step is one external command template executed as part of a target. The
// placeholder list is derived at registration time so substitution problems
// surface before any process is invoked.
type Step struct {
	Template     string
	Placeholders []string
}

// Target is a named, invocable unit of work: guard variables checked up
// front, then steps executed strictly in declared order. Immutable once
// registered.
type Target struct {
	Name     string
	Category string
	Usage    string
	Guards   []string
	Steps    []Step
}

// Registry maps target names to their definitions. It is populated at
// process start (built-ins plus manifests) and read-only afterwards.
type Registry struct {
	targets map[string]Target
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{targets: map[string]Target{}}
}

// NewStep derives a Step from a raw command template.
func NewStep(template string) Step {
	return Step{
		Template:     template,
		Placeholders: tmpl.Placeholders(template),
	}
}

// Add registers a target. A target must have a name and at least one step,
// and names are unique; a manifest redefining a built-in is rejected rather
// than silently shadowing it.
func (r *Registry) Add(t Target) error {
	if t.Name == "" {
		return fmt.Errorf("target has no name")
	}
	if len(t.Steps) == 0 {
		return fmt.Errorf("target %q has no steps", t.Name)
	}
	if _, exists := r.targets[t.Name]; exists {
		return fmt.Errorf("target %q already defined", t.Name)
	}
	if t.Category == "" {
		t.Category = "general"
	}
	r.targets[t.Name] = t
	return nil
}

// Lookup returns the definition for name.
func (r *Registry) Lookup(name string) (Target, bool) {
	t, ok := r.targets[name]
	return t, ok
}

// Len returns the number of registered targets.
func (r *Registry) Len() int {
	return len(r.targets)
}

// Names returns all target names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.targets))
	for name := range r.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories returns the distinct category labels in sorted order.
func (r *Registry) Categories() []string {
	seen := map[string]bool{}
	var cats []string
	for _, t := range r.targets {
		if !seen[t.Category] {
			seen[t.Category] = true
			cats = append(cats, t.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// ByCategory returns the targets in the given category, sorted by name.
func (r *Registry) ByCategory(category string) []Target {
	var out []Target
	for _, t := range r.targets {
		if t.Category == category {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// All returns every target, sorted by name.
func (r *Registry) All() []Target {
	out := make([]Target, 0, len(r.targets))
	for _, name := range r.Names() {
		out = append(out, r.targets[name])
	}
	return out
}
