// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"context"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runctl/runctl/internal/log"
	"github.com/runctl/runctl/internal/target"
	"github.com/runctl/runctl/internal/vars"
)

// Definition is one target as declared in a manifest file, before it is
// compiled into a registry entry.
type Definition struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Usage    string   `yaml:"usage"`
	Guards   []string `yaml:"guards"`
	Steps    []string `yaml:"steps"`
}

// file is the top-level shape of a YAML manifest.
type file struct {
	Targets []Definition `yaml:"targets"`
}

// Load fetches a manifest from src (local path or s3:// URI), decodes it by
// extension (.yaml/.yml, .hcl, .json), and returns the compiled targets.
func Load(ctx context.Context, src string) ([]target.Target, error) {
	data, err := Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	var defs []Definition
	switch strings.ToLower(path.Ext(src)) {
	case ".yaml", ".yml":
		defs, err = decodeYAML(data)
	case ".hcl":
		defs, err = decodeHCL(data, src, vars.FromOS())
	case ".json":
		defs, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", src)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", src, err)
	}

	log.Debugf("manifest decoded: src=%s, targets=%d", src, len(defs))
	return compile(defs)
}

// Apply loads each manifest source in order and registers its targets.
// The first conflicting or malformed definition aborts the load.
func Apply(ctx context.Context, reg *target.Registry, sources []string) error {
	for _, src := range sources {
		targets, err := Load(ctx, src)
		if err != nil {
			return err
		}
		for _, t := range targets {
			if err := reg.Add(t); err != nil {
				return fmt.Errorf("manifest %s: %w", src, err)
			}
		}
	}
	return nil
}

func decodeYAML(data []byte) ([]Definition, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Targets, nil
}

func compile(defs []Definition) ([]target.Target, error) {
	targets := make([]target.Target, 0, len(defs))
	for _, d := range defs {
		steps := make([]target.Step, 0, len(d.Steps))
		for _, s := range d.Steps {
			steps = append(steps, target.NewStep(s))
		}
		targets = append(targets, target.Target{
			Name:     d.Name,
			Category: d.Category,
			Usage:    d.Usage,
			Guards:   d.Guards,
			Steps:    steps,
		})
	}
	return targets, nil
}
