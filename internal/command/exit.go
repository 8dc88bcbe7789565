// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"

	"github.com/runctl/runctl/internal/dispatch"
	"github.com/runctl/runctl/internal/tmpl"
)

// Process exit codes. A failing step propagates its own exit code instead,
// so callers can distinguish "the wrapped tool failed" from runctl's own
// dispatch errors.
const (
	ExitOK                    = 0
	ExitAppError              = 1
	ExitUsage                 = 2
	ExitUnknownTarget         = 3
	ExitMissingVariable       = 4
	ExitUnresolvedPlaceholder = 5
)

// ExitCodeFor maps a dispatch error to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}

	var step *dispatch.StepError
	if errors.As(err, &step) {
		return step.ExitCode
	}

	var unknown *dispatch.UnknownTargetError
	if errors.As(err, &unknown) {
		return ExitUnknownTarget
	}

	var missing *dispatch.MissingVariablesError
	if errors.As(err, &missing) {
		return ExitMissingVariable
	}

	var unresolved *tmpl.UnresolvedError
	if errors.As(err, &unresolved) {
		return ExitUnresolvedPlaceholder
	}

	return ExitAppError
}
