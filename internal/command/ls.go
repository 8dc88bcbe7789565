// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/runctl/runctl/internal/meta"
	"github.com/runctl/runctl/internal/output"
)

// lsCommandAction lists every registered target with its one-line usage,
// grouped by category label.
func lsCommandAction(ctx context.Context, cmd *cli.Command) error {
	reg, err := LoadRegistry(ctx, cmd)
	if err != nil {
		return err
	}

	switch cmd.String("output") {
	case "json":
		return output.EmitJSON(os.Stdout, output.Views(reg.All()))
	case "yaml":
		return output.EmitYAML(os.Stdout, output.Views(reg.All()))
	default:
		output.Listing(os.Stdout, reg, ColorEnabled(cmd))
		return nil
	}
}

// lsCommandBuilder constructs the cli.Command for "ls". "help" is kept as an
// alias since that is what the listing replaces.
func lsCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Aliases:   []string{"help"},
		Usage:     "list targets grouped by category",
		UsageText: "runctl ls [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			NewManifestFlag(),
			NewOutputFlag("ls"),
			colorFlag,
		},
		Action: lsCommandAction,
	}
}
