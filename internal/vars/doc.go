// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package vars models the variable environment a target is dispatched
// against: the process environment merged with KEY=VALUE arguments from the
// command line. The dispatcher receives an explicit Environment value instead
// of reading ambient process state, which keeps runs deterministic and
// testable.
package vars
