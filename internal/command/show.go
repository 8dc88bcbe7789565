// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/runctl/runctl/internal/dispatch"
	"github.com/runctl/runctl/internal/meta"
	"github.com/runctl/runctl/internal/output"
)

// showView is the serializable shape of a rendered target.
type showView struct {
	Target   string   `json:"target" yaml:"target"`
	Commands []string `json:"commands" yaml:"commands"`
}

// showCommandAction renders a target's steps against the current variable
// environment without executing anything. Guards and placeholder resolution
// still apply, so show fails exactly where run would.
func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	name, overrides, err := SplitTargetArgs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	reg, err := LoadRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	env := BuildEnv(GetMeta(cmd), overrides)
	_, commands, err := dispatch.New(reg, nil).Render(name, env)
	if err != nil {
		return err
	}

	switch cmd.String("output") {
	case "json":
		return output.EmitJSON(os.Stdout, showView{Target: name, Commands: commands})
	case "yaml":
		return output.EmitYAML(os.Stdout, showView{Target: name, Commands: commands})
	default:
		for _, command := range commands {
			fmt.Fprintln(os.Stdout, command)
		}
		return nil
	}
}

// showCommandBuilder constructs the cli.Command for "show".
func showCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "render a target's steps without executing them",
		UsageText: "runctl show <target> [KEY=VALUE ...] [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewManifestFlag(),
			NewOutputFlag("show"),
		},
		Action: showCommandAction,
	}
}
