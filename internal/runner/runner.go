// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/runctl/runctl/internal/log"
	"github.com/runctl/runctl/internal/vars"
)

// Runner executes one rendered step command and reports its exit code. A
// non-nil error means the command could not be run at all; a non-zero exit
// code means it ran and failed.
type Runner interface {
	Run(ctx context.Context, command string, env vars.Environment) (int, error)
}

// Exec runs commands through the shell with pass-through stdio. Cancelling
// the context kills the child process.
type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Dir    string
}

// NewExec returns an Exec wired to the process's own stdio.
func NewExec() *Exec {
	return &Exec{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the command via `sh -c` so templates can use pipes and
// redirection, the same forms they had as shell shortcuts.
func (e *Exec) Run(ctx context.Context, command string, env vars.Environment) (int, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	cmd.Dir = e.Dir
	cmd.Env = env.Slice()

	log.Debugf("exec: command=%q", command)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
