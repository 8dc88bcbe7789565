// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/runctl/runctl/internal/dispatch"
	"github.com/runctl/runctl/internal/log"
	"github.com/runctl/runctl/internal/meta"
	"github.com/runctl/runctl/internal/runner"
)

// runCommandAction dispatches a target: guards first, then every step in
// declared order, halting at the first failure. With --dry-run the rendered
// commands are printed instead of executed.
func runCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("executing action for %v", m.Args[1:])

	name, overrides, err := SplitTargetArgs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	return DispatchTarget(ctx, cmd, name, overrides)
}

// DispatchTarget runs (or dry-runs) the named target with the given variable
// overrides. Shared by run and pick.
func DispatchTarget(ctx context.Context, cmd *cli.Command, name string, overrides map[string]string) error {
	reg, err := LoadRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	env := BuildEnv(GetMeta(cmd), overrides)
	d := dispatch.New(reg, runner.NewExec())

	if cmd.Bool("dry-run") {
		_, commands, err := d.Render(name, env)
		if err != nil {
			return err
		}
		for _, command := range commands {
			fmt.Fprintln(os.Stdout, command)
		}
		return nil
	}

	res, err := d.Dispatch(ctx, name, env)
	if err != nil {
		log.Debugf("dispatch failed: target=%s, exit=%d, stoppedAt=%d",
			res.Target, res.ExitCode, res.StoppedAt)
		return err
	}
	return nil
}

// runCommandBuilder constructs the cli.Command for "run", wiring metadata,
// flags, and the action handler.
func runCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run a target",
		UsageText: "runctl run <target> [KEY=VALUE ...] [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewManifestFlag(),
			dryRunFlag,
		},
		Action: runCommandAction,
	}
}
