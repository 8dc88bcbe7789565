// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package vars

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Environment is a read-only snapshot of the key/value strings available for
// substitution into step templates. It is assembled once, before a target
// runs, and never mutated afterwards; Merge returns a new value rather than
// modifying the receiver.
type Environment struct {
	values map[string]string
}

// New builds an Environment from the given pairs. The input map is copied so
// later mutation by the caller has no effect on the Environment.
func New(pairs map[string]string) Environment {
	values := make(map[string]string, len(pairs))
	for k, v := range pairs {
		values[k] = v
	}
	return Environment{values: values}
}

// FromOS captures the current process environment.
func FromOS() Environment {
	values := make(map[string]string, len(os.Environ()))
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			values[k] = v
		}
	}
	return Environment{values: values}
}

// Merge returns a new Environment with overrides applied on top of the
// receiver. Overrides win on key conflicts.
func (e Environment) Merge(overrides map[string]string) Environment {
	values := make(map[string]string, len(e.values)+len(overrides))
	for k, v := range e.values {
		values[k] = v
	}
	for k, v := range overrides {
		values[k] = v
	}
	return Environment{values: values}
}

// Lookup returns the value for name and whether it is present.
func (e Environment) Lookup(name string) (string, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Names returns all variable names in sorted order.
func (e Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for k := range e.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Slice renders the Environment in os.Environ form, suitable for handing to
// a child process.
func (e Environment) Slice() []string {
	kvs := make([]string, 0, len(e.values))
	for _, k := range e.Names() {
		kvs = append(kvs, k+"="+e.values[k])
	}
	return kvs
}

// Missing returns the guard names whose values are absent or empty after
// trimming whitespace, in sorted order. An empty result means all guards
// pass.
func (e Environment) Missing(guards []string) []string {
	var missing []string
	for _, name := range guards {
		v, ok := e.values[name]
		if !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// IsAssignment reports whether arg looks like a KEY=VALUE variable
// assignment rather than a target name or flag.
func IsAssignment(arg string) bool {
	k, _, ok := strings.Cut(arg, "=")
	return ok && k != "" && !strings.HasPrefix(arg, "-")
}

// ParseAssignment splits a KEY=VALUE argument. The key must be non-empty;
// the value may be empty (which a guard will subsequently reject).
func ParseAssignment(arg string) (string, string, error) {
	k, v, ok := strings.Cut(arg, "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("not a KEY=VALUE assignment: %q", arg)
	}
	return k, v, nil
}
