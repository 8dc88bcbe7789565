// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/runctl/runctl/internal/config"
)

var (
	colorFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "color",
		Aliases:     []string{"c"},
		Usage:       "enable colored text output",
		HideDefault: true,
	}

	dryRunFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "dry-run",
		Aliases:     []string{"n"},
		Usage:       "render steps without executing them",
		HideDefault: true,
	}
)

// NewManifestFlag constructs the repeatable --manifest flag. Sources fall
// back to RUNCTL_MANIFEST, then the "manifests" key of the config file
// (namespaced first).
func NewManifestFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    "manifest",
		Aliases: []string{"m"},
		Usage:   "extra target manifest (path or s3:// URI); may be repeated",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("RUNCTL_MANIFEST"),
		),
	}
}

// NewOutputFlag constructs the namespaced --output flag for a command.
func NewOutputFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("RUNCTL_OUTPUT"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
	return NameSpacedValueChainFlagFromConfigFile(ns, config.Config.Source, flag)
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain. A flag with no config file
// behind it is returned unchanged.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
