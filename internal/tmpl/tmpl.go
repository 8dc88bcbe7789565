// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tmpl

import (
	"fmt"
	"regexp"

	"github.com/runctl/runctl/internal/vars"
)

// placeholderRe matches ${NAME} placeholders. Names follow shell identifier
// rules so templates stay copy-pasteable between runctl manifests and shell
// scripts.
var placeholderRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// UnresolvedError reports a placeholder with no value in the environment.
// Rendering is all-or-nothing, so this surfaces before any process runs.
type UnresolvedError struct {
	Name     string
	Template string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved placeholder ${%s} in %q", e.Name, e.Template)
}

// Placeholders returns the distinct placeholder names referenced by the
// template, in first-appearance order.
func Placeholders(template string) []string {
	var names []string
	seen := map[string]bool{}
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Render substitutes every ${NAME} placeholder with its value from env.
// A placeholder with no value (present-but-empty is fine) is a fatal
// UnresolvedError; nothing is partially rendered.
func Render(template string, env vars.Environment) (string, error) {
	for _, name := range Placeholders(template) {
		if _, ok := env.Lookup(name); !ok {
			return "", &UnresolvedError{Name: name, Template: template}
		}
	}
	rendered := placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		v, _ := env.Lookup(m[2 : len(m)-1])
		return v
	})
	return rendered, nil
}
