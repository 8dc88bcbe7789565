// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/runctl/runctl/internal/log"
	"github.com/runctl/runctl/internal/meta"
	"github.com/runctl/runctl/internal/picker"
	"github.com/runctl/runctl/internal/vars"
)

// pickCommandAction opens an interactive target selector, then dispatches
// the chosen target with any KEY=VALUE arguments supplied on the command
// line.
func pickCommandAction(ctx context.Context, cmd *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("pick requires an interactive terminal")
	}

	reg, err := LoadRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	name, err := picker.Select(reg.All())
	if err != nil {
		return err
	}
	if name == "" {
		log.Debug("selection cancelled")
		return nil
	}

	overrides := map[string]string{}
	for _, arg := range cmd.Args().Slice() {
		k, v, err := vars.ParseAssignment(arg)
		if err != nil {
			return err
		}
		overrides[k] = v
	}

	return DispatchTarget(ctx, cmd, name, overrides)
}

// pickCommandBuilder constructs the cli.Command for "pick".
func pickCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "pick",
		Usage:     "interactively select and run a target",
		UsageText: "runctl pick [KEY=VALUE ...] [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewManifestFlag(),
			dryRunFlag,
		},
		Action: pickCommandAction,
	}
}
