// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/runctl/runctl/internal/config"
	"github.com/runctl/runctl/internal/manifest"
	"github.com/runctl/runctl/internal/meta"
	"github.com/runctl/runctl/internal/target"
	"github.com/runctl/runctl/internal/vars"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// LoadRegistry builds the effective target registry: built-ins plus any
// manifests named by --manifest, or failing that the config file.
func LoadRegistry(ctx context.Context, cmd *cli.Command) (*target.Registry, error) {
	reg := target.Builtin()

	sources := cmd.StringSlice("manifest")
	if len(sources) == 0 {
		sources, _ = config.GetStringSlice("manifests", nil)
	}

	if err := manifest.Apply(ctx, reg, sources); err != nil {
		return nil, err
	}
	return reg, nil
}

// SplitTargetArgs separates the positional arguments of run/show into the
// target name and its KEY=VALUE assignments. Anything after the target that
// is not an assignment is a usage error.
func SplitTargetArgs(args []string) (string, map[string]string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("a target name is required")
	}

	name := args[0]
	if vars.IsAssignment(name) {
		return "", nil, fmt.Errorf("the target name must precede KEY=VALUE arguments")
	}

	overrides := map[string]string{}
	for _, arg := range args[1:] {
		k, v, err := vars.ParseAssignment(arg)
		if err != nil {
			return "", nil, err
		}
		overrides[k] = v
	}
	return name, overrides, nil
}

// BuildEnv merges KEY=VALUE overrides onto the startup environment snapshot.
func BuildEnv(m meta.Meta, overrides map[string]string) vars.Environment {
	return m.Vars.Merge(overrides)
}

// ColorEnabled reports whether colored output should be produced: --color,
// or the config default when stdout is a terminal.
func ColorEnabled(cmd *cli.Command) bool {
	if cmd.Bool("color") {
		return true
	}
	enabled, _ := config.GetBool("color", false)
	return enabled && term.IsTerminal(int(os.Stdout.Fd()))
}
