// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// UnknownTargetError reports a target name with no registry entry. It is
// raised before any guard check or process invocation.
type UnknownTargetError struct {
	Name string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target %q (try 'runctl ls')", e.Name)
}

// MissingVariablesError reports every guarded variable that is unset or
// empty. No step runs when this is raised.
type MissingVariablesError struct {
	Target string
	Names  []string
}

func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("target %q requires %s to be set and non-empty",
		e.Target, strings.Join(e.Names, ", "))
}

// StepError reports the first failing step. Dispatch halts immediately and
// the step's exit code becomes the overall result.
type StepError struct {
	Target   string
	Index    int
	Command  string
	ExitCode int
}

func (e *StepError) Error() string {
	return fmt.Sprintf("target %q: %s step (%q) exited with code %d",
		e.Target, humanize.Ordinal(e.Index+1), e.Command, e.ExitCode)
}
