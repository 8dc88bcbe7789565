// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"context"
	"time"

	"github.com/runctl/runctl/internal/log"
	"github.com/runctl/runctl/internal/runner"
	"github.com/runctl/runctl/internal/target"
	"github.com/runctl/runctl/internal/tmpl"
	"github.com/runctl/runctl/internal/vars"
)

// NoStep is the StoppedAt value when no step failed.
const NoStep = -1

// Result summarizes one dispatch. StoppedAt is the index of the failing
// step, or NoStep when the run succeeded or aborted before execution.
type Result struct {
	Target    string
	ExitCode  int
	StoppedAt int
}

// Dispatcher resolves a target name against the registry, runs its guards,
// renders every step, and executes the rendered commands in order through
// the injected runner, halting at the first non-zero exit.
type Dispatcher struct {
	registry *target.Registry
	runner   runner.Runner
}

// New returns a Dispatcher over the given registry and runner.
func New(reg *target.Registry, run runner.Runner) *Dispatcher {
	return &Dispatcher{registry: reg, runner: run}
}

// Render resolves the target and returns its fully rendered step commands
// without executing anything. Guards are checked first; any unresolved
// placeholder is fatal. This is the shared front half of Dispatch and what
// `runctl show` prints.
func (d *Dispatcher) Render(name string, env vars.Environment) (target.Target, []string, error) {
	tgt, ok := d.registry.Lookup(name)
	if !ok {
		return target.Target{}, nil, &UnknownTargetError{Name: name}
	}

	if missing := env.Missing(tgt.Guards); len(missing) > 0 {
		return tgt, nil, &MissingVariablesError{Target: name, Names: missing}
	}

	// Render all steps before running any, so a substitution failure in a
	// later step cannot leave earlier side effects behind.
	commands := make([]string, len(tgt.Steps))
	for i, step := range tgt.Steps {
		rendered, err := tmpl.Render(step.Template, env)
		if err != nil {
			return tgt, nil, err
		}
		commands[i] = rendered
	}
	return tgt, commands, nil
}

// Dispatch runs the named target against the given environment. The
// returned Result always carries the overall exit code; the error describes
// why it is non-zero. Cancelling the context stops the current step and no
// further step runs.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, env vars.Environment) (Result, error) {
	res := Result{Target: name, StoppedAt: NoStep}

	tgt, commands, err := d.Render(name, env)
	if err != nil {
		res.ExitCode = 1
		return res, err
	}

	start := time.Now()
	for i, command := range commands {
		if err := ctx.Err(); err != nil {
			res.ExitCode = 1
			res.StoppedAt = i
			return res, err
		}

		log.Infof("target %s: step %d/%d: %s", name, i+1, len(commands), command)

		code, err := d.runner.Run(ctx, command, env)
		if err != nil {
			res.ExitCode = 1
			res.StoppedAt = i
			return res, err
		}
		if code != 0 {
			res.ExitCode = code
			res.StoppedAt = i
			return res, &StepError{
				Target:   name,
				Index:    i,
				Command:  command,
				ExitCode: code,
			}
		}
	}

	log.Infof("target %s: %d step(s) completed in %s", name, len(tgt.Steps),
		time.Since(start).Round(time.Millisecond))
	return res, nil
}
