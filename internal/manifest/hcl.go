// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/runctl/runctl/internal/vars"
)

// hclTarget mirrors a `target "name" { ... }` block. HCL performs its own
// ${...} interpolation at decode time against the env.* variables, so
// runtime step placeholders are escaped as $${NAME} in manifest files and
// arrive here as literal ${NAME}.
type hclTarget struct {
	Name     string   `hcl:"name,label"`
	Category *string  `hcl:"category"`
	Usage    *string  `hcl:"usage"`
	Guards   []string `hcl:"guards,optional"`
	Steps    []string `hcl:"steps"`
}

// hclFile is the top-level shape of an HCL manifest.
type hclFile struct {
	Targets []hclTarget `hcl:"target,block"`
}

func decodeHCL(data []byte, filename string, env vars.Environment) ([]Definition, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, evalContext(env), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defs := make([]Definition, 0, len(parsed.Targets))
	for _, t := range parsed.Targets {
		d := Definition{
			Name:   t.Name,
			Guards: t.Guards,
			Steps:  t.Steps,
		}
		if t.Category != nil {
			d.Category = *t.Category
		}
		if t.Usage != nil {
			d.Usage = *t.Usage
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// evalContext exposes the environment as env.* for decode-time interpolation
// (e.g. usage = "deploy from ${env.HOME}").
func evalContext(env vars.Environment) *hcl.EvalContext {
	values := map[string]cty.Value{}
	for _, name := range env.Names() {
		v, _ := env.Lookup(name)
		values[name] = cty.StringVal(v)
	}

	envVal := cty.MapValEmpty(cty.String)
	if len(values) > 0 {
		envVal = cty.MapVal(values)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envVal,
		},
	}
}
